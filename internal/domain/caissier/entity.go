package caissier

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrCodeVide    = errors.New("code caissier ne peut pas être vide")
	ErrNomVide     = errors.New("nom ne peut pas être vide")
	ErrPinInvalide = errors.New("code PIN invalide")
)

// Role représente la fonction du caissier
type Role string

const (
	RoleCaissier Role = "caissier" // Caisse uniquement
	RoleGerant   Role = "gerant"   // Caisse + journal + synchronisation
)

// Statut représente l'état du compte
type Statut string

const (
	StatutActif   Statut = "actif"
	StatutInactif Statut = "inactif"
)

// Caissier représente un opérateur de caisse
type Caissier struct {
	Code             string    `json:"code"`
	Nom              string    `json:"nom"`
	Pin              string    `json:"-"` // Empreinte bcrypt, jamais sérialisée
	Role             Role      `json:"role"`
	Statut           Statut    `json:"statut"`
	DerniereConnexion time.Time `json:"derniere_connexion"`
	CreeLe           time.Time `json:"cree_le"`
	ModifieLe        time.Time `json:"modifie_le"`
}

// NewCaissier crée un compte caissier actif
func NewCaissier(code, nom string, role Role) (*Caissier, error) {
	if code == "" {
		return nil, ErrCodeVide
	}
	if nom == "" {
		return nil, ErrNomVide
	}

	now := time.Now()
	return &Caissier{
		Code:      code,
		Nom:       nom,
		Role:      role,
		Statut:    StatutActif,
		CreeLe:    now,
		ModifieLe: now,
	}, nil
}

// DefinirPin enregistre l'empreinte bcrypt du code PIN
func (c *Caissier) DefinirPin(pin string) error {
	if len(pin) < 4 {
		return ErrPinInvalide
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.Pin = string(hash)
	c.ModifieLe = time.Now()
	return nil
}

// VerifierPin compare un code PIN à l'empreinte enregistrée
func (c *Caissier) VerifierPin(pin string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Pin), []byte(pin)) == nil
}

// EstActif vérifie que le compte peut ouvrir une session
func (c *Caissier) EstActif() bool {
	return c.Statut == StatutActif
}

// EnregistrerConnexion note l'heure de la dernière ouverture de session
func (c *Caissier) EnregistrerConnexion() {
	c.DerniereConnexion = time.Now()
}
