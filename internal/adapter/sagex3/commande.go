package sagex3

import (
	"context"

	"github.com/malicksy/pos-sagex3/internal/domain/livraison"
)

// SoumettreCommande soumet une commande de vente au backend. Contrairement
// aux lectures, une commande ne peut pas être synthétisée localement : un
// échec est retourné tel quel et la saisie reste à l'écran.
func (c *Client) SoumettreCommande(ctx context.Context, payload livraison.Payload) Resultat[ReponseCommande] {
	var reponse ReponseCommande
	if err := c.post(ctx, "/command/add", payload, TimeoutCommande, &reponse); err != nil {
		c.log.Error("échec de soumission de commande", "client", payload.ClientLivre, "erreur", err)
		return echec[ReponseCommande](err)
	}
	return distant(reponse)
}

// Synchroniser déclenche une synchronisation des données côté backend
func (c *Client) Synchroniser(ctx context.Context) Resultat[struct{}] {
	if err := c.post(ctx, "/synchronize", struct{}{}, TimeoutCommande, nil); err != nil {
		return echec[struct{}](err)
	}
	return distant(struct{}{})
}

// Sante interroge la sonde de vie du backend
func (c *Client) Sante(ctx context.Context) Resultat[EtatSante] {
	var etat EtatSante
	if err := c.get(ctx, "/health", nil, TimeoutSante, &etat); err != nil {
		return local(EtatSante{Statut: "hors_ligne"}, err)
	}
	return distant(etat)
}
