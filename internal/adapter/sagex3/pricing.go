package sagex3

import "context"

// CalculerPrix soumet une demande de tarification par lot. En mode
// dégradé, chaque ligne est tarifée à partir du prix de base connu
// localement : HT = TTC, taxe nulle, et la caisse signale l'avertissement.
func (c *Client) CalculerPrix(ctx context.Context, demandes []DemandePrix, prixBase map[string]float64) Resultat[[]PrixArticle] {
	var bruts []prixBrut
	err := c.post(ctx, "/pricing/", demandes, TimeoutTarifs, &bruts)
	if err == nil {
		prix := make([]PrixArticle, 0, len(bruts))
		for _, b := range bruts {
			p := b.normaliser()
			if p.CodeArticle == "" {
				continue
			}
			prix = append(prix, p)
		}
		return distant(prix)
	}

	c.log.Warn("tarification indisponible, prix de base locaux", "erreur", err)

	prix := make([]PrixArticle, 0, len(demandes))
	for _, d := range demandes {
		base := prixBase[d.CodeArticle]
		prix = append(prix, PrixArticle{
			CodeArticle: d.CodeArticle,
			PrixHT:      base,
			PrixTTC:     base,
		})
	}
	return local(prix, err)
}

// TaxesAppliquees soumet une demande de résolution de taxes par lot.
// En mode dégradé, aucune taxe n'est appliquée.
func (c *Client) TaxesAppliquees(ctx context.Context, demandes []DemandeTaxe) Resultat[[]TaxeAppliquee] {
	var taxes []TaxeAppliquee
	err := c.post(ctx, "/taxe/applied/", demandes, TimeoutTarifs, &taxes)
	if err == nil {
		return distant(taxes)
	}

	c.log.Warn("résolution de taxes indisponible", "erreur", err)
	return local([]TaxeAppliquee{}, err)
}
