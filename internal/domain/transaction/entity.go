package transaction

import (
	"errors"
	"time"

	"github.com/malicksy/pos-sagex3/internal/domain/panier"
)

var (
	ErrModePaiementInvalide = errors.New("mode de paiement invalide")
	ErrStatutFinal          = errors.New("la transaction a déjà un statut final")
)

// ModePaiement est le mode de règlement d'une vente
type ModePaiement string

const (
	ModeEspeces ModePaiement = "especes" // Espèces
	ModeCarte   ModePaiement = "carte"   // Carte bancaire
	ModeMobile  ModePaiement = "mobile"  // Paiement mobile
)

// Statut représente l'état d'une transaction
type Statut string

const (
	StatutEnAttente Statut = "en_attente" // Créée, paiement non confirmé
	StatutValidee   Statut = "validee"    // Paiement confirmé
	StatutEchouee   Statut = "echouee"    // Paiement refusé
)

// ModePaiementValide vérifie qu'un mode de paiement est connu
func ModePaiementValide(mode ModePaiement) bool {
	switch mode {
	case ModeEspeces, ModeCarte, ModeMobile:
		return true
	}
	return false
}

// StatutValide vérifie qu'un statut de transaction est connu
func StatutValide(statut Statut) bool {
	switch statut {
	case StatutEnAttente, StatutValidee, StatutEchouee:
		return true
	}
	return false
}

// Recu regroupe les métadonnées de ticket d'une transaction
type Recu struct {
	Magasin  string `json:"magasin"`
	Caissier string `json:"caissier"`
	Terminal string `json:"terminal"`
	Devise   string `json:"devise"`
}

// Transaction est une vente figée à l'encaissement. Les lignes sont une
// copie indépendante du panier d'origine : les mutations ultérieures du
// panier ne peuvent pas altérer l'historique. Une correction passe par une
// transaction compensatoire, jamais par une modification.
type Transaction struct {
	ID           string         `json:"id"`
	Lignes       []panier.Ligne `json:"lignes"`
	Totaux       panier.Totaux  `json:"totaux"`
	ModePaiement ModePaiement   `json:"mode_paiement"`
	Statut       Statut         `json:"statut"`
	Horodatage   time.Time      `json:"horodatage"`
	CodeClient   string         `json:"code_client,omitempty"`
	Recu         Recu           `json:"recu"`
}

// Confirmer marque le paiement comme confirmé. Si horodatageAuPaiement est
// vrai, l'horodatage de la transaction est repris au moment de la
// confirmation plutôt qu'à celui de l'assemblage.
func (t *Transaction) Confirmer(horodatageAuPaiement bool) error {
	if t.Statut != StatutEnAttente {
		return ErrStatutFinal
	}
	t.Statut = StatutValidee
	if horodatageAuPaiement {
		t.Horodatage = time.Now()
	}
	return nil
}

// Echouer marque le paiement comme refusé
func (t *Transaction) Echouer() error {
	if t.Statut != StatutEnAttente {
		return ErrStatutFinal
	}
	t.Statut = StatutEchouee
	return nil
}
