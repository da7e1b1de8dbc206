package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/malicksy/pos-sagex3/internal/domain/transaction"
)

// Erreurs spécifiques du dépôt
var (
	ErrTransactionIntrouvable = errors.New("transaction introuvable")
	ErrTransactionDupliquee   = errors.New("transaction déjà enregistrée")
)

// TransactionRepository implémente transaction.Repository sur PostgreSQL
type TransactionRepository struct {
	db *pgxpool.Pool
}

// NewTransactionRepository crée une nouvelle instance de TransactionRepository
func NewTransactionRepository(db *pgxpool.Pool) transaction.Repository {
	return &TransactionRepository{
		db: db,
	}
}

// Create implémente transaction.Repository.Create
func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	lignes, err := json.Marshal(t.Lignes)
	if err != nil {
		return fmt.Errorf("sérialisation des lignes: %w", err)
	}
	totaux, err := json.Marshal(t.Totaux)
	if err != nil {
		return fmt.Errorf("sérialisation des totaux: %w", err)
	}
	recu, err := json.Marshal(t.Recu)
	if err != nil {
		return fmt.Errorf("sérialisation du reçu: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO transactions (
			id, lignes, totaux, mode_paiement, statut, horodatage, code_client, recu
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		t.ID, lignes, totaux, t.ModePaiement, t.Statut, t.Horodatage, t.CodeClient, recu)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrTransactionDupliquee
		}
		return fmt.Errorf("enregistrement de la transaction: %w", err)
	}

	return nil
}

// FindByID implémente transaction.Repository.FindByID
func (r *TransactionRepository) FindByID(ctx context.Context, id string) (*transaction.Transaction, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, lignes, totaux, mode_paiement, statut, horodatage, code_client, recu
		FROM transactions WHERE id = $1`, id)

	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTransactionIntrouvable
		}
		return nil, fmt.Errorf("lecture de la transaction: %w", err)
	}
	return t, nil
}

// List implémente transaction.Repository.List
func (r *TransactionRepository) List(ctx context.Context, limit, offset int) ([]*transaction.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, lignes, totaux, mode_paiement, statut, horodatage, code_client, recu
		FROM transactions ORDER BY horodatage DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("lecture du journal: %w", err)
	}
	defer rows.Close()

	var transactions []*transaction.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("lecture du journal: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// UpdateStatut implémente transaction.Repository.UpdateStatut
func (r *TransactionRepository) UpdateStatut(ctx context.Context, id string, statut transaction.Statut) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE transactions SET statut = $2 WHERE id = $1`, id, statut)
	if err != nil {
		return fmt.Errorf("mise à jour du statut: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTransactionIntrouvable
	}
	return nil
}

func scanTransaction(row pgx.Row) (*transaction.Transaction, error) {
	var t transaction.Transaction
	var lignesJSON, totauxJSON, recuJSON []byte

	err := row.Scan(&t.ID, &lignesJSON, &totauxJSON, &t.ModePaiement, &t.Statut,
		&t.Horodatage, &t.CodeClient, &recuJSON)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(lignesJSON, &t.Lignes); err != nil {
		return nil, fmt.Errorf("désérialisation des lignes: %w", err)
	}
	if err := json.Unmarshal(totauxJSON, &t.Totaux); err != nil {
		return nil, fmt.Errorf("désérialisation des totaux: %w", err)
	}
	if err := json.Unmarshal(recuJSON, &t.Recu); err != nil {
		return nil, fmt.Errorf("désérialisation du reçu: %w", err)
	}
	return &t, nil
}
