package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/malicksy/pos-sagex3/internal/domain/caissier"
)

// Erreurs spécifiques du dépôt
var (
	ErrCaissierIntrouvable = errors.New("caissier introuvable")
	ErrCaissierDuplique    = errors.New("caissier avec le même code déjà enregistré")
)

// CaissierRepository implémente caissier.Repository sur PostgreSQL
type CaissierRepository struct {
	db *pgxpool.Pool
}

// NewCaissierRepository crée une nouvelle instance de CaissierRepository
func NewCaissierRepository(db *pgxpool.Pool) caissier.Repository {
	return &CaissierRepository{
		db: db,
	}
}

// Create implémente caissier.Repository.Create
func (r *CaissierRepository) Create(ctx context.Context, c *caissier.Caissier) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO caissiers (
			code, nom, pin, role, statut, derniere_connexion, cree_le, modifie_le
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.Code, c.Nom, c.Pin, c.Role, c.Statut, c.DerniereConnexion, c.CreeLe, c.ModifieLe)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrCaissierDuplique
		}
		return fmt.Errorf("enregistrement du caissier: %w", err)
	}
	return nil
}

// FindByCode implémente caissier.Repository.FindByCode
func (r *CaissierRepository) FindByCode(ctx context.Context, code string) (*caissier.Caissier, error) {
	var c caissier.Caissier

	err := r.db.QueryRow(ctx,
		`SELECT code, nom, pin, role, statut, derniere_connexion, cree_le, modifie_le
		FROM caissiers WHERE code = $1`, code).Scan(
		&c.Code, &c.Nom, &c.Pin, &c.Role, &c.Statut,
		&c.DerniereConnexion, &c.CreeLe, &c.ModifieLe)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCaissierIntrouvable
		}
		return nil, fmt.Errorf("lecture du caissier: %w", err)
	}
	return &c, nil
}

// Update implémente caissier.Repository.Update
func (r *CaissierRepository) Update(ctx context.Context, c *caissier.Caissier) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE caissiers SET nom = $2, pin = $3, role = $4, statut = $5,
			derniere_connexion = $6, modifie_le = $7
		WHERE code = $1`,
		c.Code, c.Nom, c.Pin, c.Role, c.Statut, c.DerniereConnexion, c.ModifieLe)
	if err != nil {
		return fmt.Errorf("mise à jour du caissier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCaissierIntrouvable
	}
	return nil
}
