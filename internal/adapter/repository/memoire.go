package repository

import (
	"context"
	"sync"

	"github.com/malicksy/pos-sagex3/internal/domain/caissier"
	"github.com/malicksy/pos-sagex3/internal/domain/panier"
	"github.com/malicksy/pos-sagex3/internal/domain/transaction"
)

// Dépôts en mémoire : utilisés par les tests et par la caisse en mode
// hors ligne, quand aucune base n'est joignable. Le journal ne survit
// alors pas au redémarrage, au même titre que le reste du mode dégradé.

// MemoireTransactionRepository implémente transaction.Repository en mémoire
type MemoireTransactionRepository struct {
	mu           sync.RWMutex
	transactions []*transaction.Transaction
	parID        map[string]*transaction.Transaction
}

// NewMemoireTransactionRepository crée un journal de transactions en mémoire
func NewMemoireTransactionRepository() *MemoireTransactionRepository {
	return &MemoireTransactionRepository{
		parID: make(map[string]*transaction.Transaction),
	}
}

// Create implémente transaction.Repository.Create
func (r *MemoireTransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, existe := r.parID[t.ID]; existe {
		return ErrTransactionDupliquee
	}

	copie := *t
	copie.Lignes = append([]panier.Ligne(nil), t.Lignes...)
	r.transactions = append(r.transactions, &copie)
	r.parID[t.ID] = &copie
	return nil
}

// FindByID implémente transaction.Repository.FindByID
func (r *MemoireTransactionRepository) FindByID(ctx context.Context, id string) (*transaction.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.parID[id]
	if !ok {
		return nil, ErrTransactionIntrouvable
	}
	copie := *t
	return &copie, nil
}

// List implémente transaction.Repository.List
func (r *MemoireTransactionRepository) List(ctx context.Context, limit, offset int) ([]*transaction.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Plus récentes en premier
	var resultat []*transaction.Transaction
	for i := len(r.transactions) - 1 - offset; i >= 0 && len(resultat) < limit; i-- {
		copie := *r.transactions[i]
		resultat = append(resultat, &copie)
	}
	return resultat, nil
}

// UpdateStatut implémente transaction.Repository.UpdateStatut
func (r *MemoireTransactionRepository) UpdateStatut(ctx context.Context, id string, statut transaction.Statut) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.parID[id]
	if !ok {
		return ErrTransactionIntrouvable
	}
	t.Statut = statut
	return nil
}

// AmorcerGerantSecours crée le compte gérant ADMIN dans un dépôt de
// caissiers. Utilisé au démarrage en mode hors ligne, quand le dépôt
// mémoire part vide et qu'aucune connexion ne serait possible sans lui.
func AmorcerGerantSecours(repo caissier.Repository, pin string) error {
	admin, err := caissier.NewCaissier("ADMIN", "Gérant de secours", caissier.RoleGerant)
	if err != nil {
		return err
	}
	if err := admin.DefinirPin(pin); err != nil {
		return err
	}
	return repo.Create(context.Background(), admin)
}

// MemoireCaissierRepository implémente caissier.Repository en mémoire
type MemoireCaissierRepository struct {
	mu      sync.RWMutex
	parCode map[string]*caissier.Caissier
}

// NewMemoireCaissierRepository crée un dépôt de caissiers en mémoire
func NewMemoireCaissierRepository() *MemoireCaissierRepository {
	return &MemoireCaissierRepository{
		parCode: make(map[string]*caissier.Caissier),
	}
}

// Create implémente caissier.Repository.Create
func (r *MemoireCaissierRepository) Create(ctx context.Context, c *caissier.Caissier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, existe := r.parCode[c.Code]; existe {
		return ErrCaissierDuplique
	}
	copie := *c
	r.parCode[c.Code] = &copie
	return nil
}

// FindByCode implémente caissier.Repository.FindByCode
func (r *MemoireCaissierRepository) FindByCode(ctx context.Context, code string) (*caissier.Caissier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.parCode[code]
	if !ok {
		return nil, ErrCaissierIntrouvable
	}
	copie := *c
	return &copie, nil
}

// Update implémente caissier.Repository.Update
func (r *MemoireCaissierRepository) Update(ctx context.Context, c *caissier.Caissier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.parCode[c.Code]; !ok {
		return ErrCaissierIntrouvable
	}
	copie := *c
	r.parCode[c.Code] = &copie
	return nil
}
