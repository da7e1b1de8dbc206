package transaction

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/malicksy/pos-sagex3/internal/domain/panier"
)

// Assembleur construit des transactions à partir d'un panier.
// HorodatageAuPaiement contrôle le moment où l'heure de vente est figée :
// à l'assemblage (comportement historique de la caisse) ou à la
// confirmation du paiement.
type Assembleur struct {
	HorodatageAuPaiement bool
}

// Assembler fige un panier en transaction en attente de paiement.
// Un panier vide n'est pas une erreur : l'encaissement est simplement
// refusé, le booléen retourné vaut alors false.
func (a *Assembleur) Assembler(p *panier.Panier, mode ModePaiement, codeClient string, recu Recu) (*Transaction, bool) {
	if p == nil || p.EstVide() {
		return nil, false
	}
	if !ModePaiementValide(mode) {
		return nil, false
	}

	lignes := p.Instantane()
	return &Transaction{
		ID:           genererID(),
		Lignes:       lignes,
		Totaux:       panier.CalculerTotaux(lignes),
		ModePaiement: mode,
		Statut:       StatutEnAttente,
		Horodatage:   time.Now(),
		CodeClient:   codeClient,
		Recu:         recu,
	}, true
}

// genererID combine l'horloge et un suffixe aléatoire pour éviter toute
// collision en cas de double validation dans la même milliseconde
func genererID() string {
	return fmt.Sprintf("TX-%d-%04d", time.Now().UnixMilli(), rand.Intn(10000))
}
