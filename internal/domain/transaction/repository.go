package transaction

import "context"

// Repository est l'interface de persistance du journal des transactions
type Repository interface {
	// Create enregistre une transaction dans le journal
	Create(ctx context.Context, t *Transaction) error

	// FindByID recherche une transaction par son identifiant
	FindByID(ctx context.Context, id string) (*Transaction, error)

	// List retourne les transactions les plus récentes en premier
	List(ctx context.Context, limit, offset int) ([]*Transaction, error)

	// UpdateStatut met à jour le statut d'une transaction
	UpdateStatut(ctx context.Context, id string, statut Statut) error
}
