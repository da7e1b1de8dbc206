package sagex3

import (
	"context"
	"net/url"
)

// SitesVente retourne les sites de vente du dossier
func (c *Client) SitesVente(ctx context.Context) Resultat[[]Adresse] {
	return lireAvecSecours(c, "sites-vente",
		func() ([]Adresse, error) {
			var bruts []adresseBrute
			if err := c.get(ctx, "/adresse/vente", nil, TimeoutCatalogue, &bruts); err != nil {
				return nil, err
			}
			return normaliserAdresses(bruts), nil
		},
		sitesVenteSecours,
	)
}

// AdressesLivraison retourne les adresses de livraison valides d'un client
func (c *Client) AdressesLivraison(ctx context.Context, codeClient string) Resultat[[]Adresse] {
	return lireAvecSecours(c, "adr-livraison:"+codeClient,
		func() ([]Adresse, error) {
			var bruts []adresseBrute
			query := url.Values{"code_client": {codeClient}}
			if err := c.get(ctx, "/adresse/livraison", query, TimeoutCatalogue, &bruts); err != nil {
				return nil, err
			}
			return normaliserAdresses(bruts), nil
		},
		func() []Adresse { return nil },
	)
}

// AdressesExpedition retourne les adresses d'expédition d'une société
func (c *Client) AdressesExpedition(ctx context.Context, legacyComp string) Resultat[[]Adresse] {
	return lireAvecSecours(c, "adr-expedition:"+legacyComp,
		func() ([]Adresse, error) {
			var bruts []adresseBrute
			query := url.Values{"legacy_comp": {legacyComp}}
			if err := c.get(ctx, "/adresse/expedition", query, TimeoutCatalogue, &bruts); err != nil {
				return nil, err
			}
			return normaliserAdresses(bruts), nil
		},
		sitesVenteSecours,
	)
}
