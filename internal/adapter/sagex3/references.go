package sagex3

import "context"

// listeReference factorise les lectures de listes code/libellé
func (c *Client) listeReference(ctx context.Context, cle, chemin string, secours func() []Reference) Resultat[[]Reference] {
	return lireAvecSecours(c, cle,
		func() ([]Reference, error) {
			var bruts []referenceBrute
			if err := c.get(ctx, chemin, nil, TimeoutReferences, &bruts); err != nil {
				return nil, err
			}
			return normaliserReferences(bruts), nil
		},
		secours,
	)
}

// TypesCommande retourne la liste des types de commande
func (c *Client) TypesCommande(ctx context.Context) Resultat[[]Reference] {
	return c.listeReference(ctx, "types-commande", "/command/type", typesCommandeSecours)
}

// ModesLivraison retourne la liste des modes de livraison
func (c *Client) ModesLivraison(ctx context.Context) Resultat[[]Reference] {
	return c.listeReference(ctx, "modes-livraison", "/livraison/modelivraison", modesLivraisonSecours)
}

// Transporteurs retourne la liste des transporteurs
func (c *Client) Transporteurs(ctx context.Context) Resultat[[]Reference] {
	return c.listeReference(ctx, "transporteurs", "/livraison/transporteur", transporteursSecours)
}
