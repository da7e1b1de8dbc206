package caissier

import "context"

// Repository est l'interface de persistance des comptes caissiers
type Repository interface {
	// Create enregistre un nouveau caissier
	Create(ctx context.Context, c *Caissier) error

	// FindByCode recherche un caissier par son code
	FindByCode(ctx context.Context, code string) (*Caissier, error)

	// Update met à jour un caissier existant
	Update(ctx context.Context, c *Caissier) error
}
