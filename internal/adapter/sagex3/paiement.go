package sagex3

import (
	"context"
	"fmt"
	"time"
)

// TraiterPaiement transmet une demande d'encaissement au backend. Si le
// processeur est injoignable, un règlement approuvé est synthétisé
// localement et marqué comme tel : la vente aboutit en mode dégradé et
// sera réconciliée à la prochaine synchronisation.
func (c *Client) TraiterPaiement(ctx context.Context, demande DemandePaiement) Resultat[ResultatPaiement] {
	var resultat ResultatPaiement
	err := c.post(ctx, "/payments/process", demande, TimeoutCommande, &resultat)
	if err == nil {
		return distant(resultat)
	}

	c.log.Warn("processeur de paiement injoignable, approbation locale", "reference", demande.Reference, "erreur", err)

	return local(ResultatPaiement{
		Autorise:   true,
		Reference:  fmt.Sprintf("LOCAL-%s", demande.Reference),
		Horodatage: time.Now(),
	}, err)
}
