package sagex3

import (
	"context"
	"errors"
	"net/url"
)

// Clients retourne la liste des clients du dossier
func (c *Client) Clients(ctx context.Context) Resultat[[]Tiers] {
	return lireAvecSecours(c, "clients",
		func() ([]Tiers, error) {
			var bruts []tiersBrut
			if err := c.get(ctx, "/clients", nil, TimeoutCatalogue, &bruts); err != nil {
				return nil, err
			}
			return normaliserTiers(bruts), nil
		},
		clientsSecours,
	)
}

// ClientFacture résout le tiers facturé d'un client livré
func (c *Client) ClientFacture(ctx context.Context, codeClient string) Resultat[Tiers] {
	return lireAvecSecours(c, "tiers:"+codeClient,
		func() (Tiers, error) {
			var brut tiersBrut
			query := url.Values{"customer_code": {codeClient}}
			if err := c.get(ctx, "/clients/tiers/", query, TimeoutCatalogue, &brut); err != nil {
				return Tiers{}, err
			}
			t := brut.normaliser()
			if t.Code == "" {
				return Tiers{}, errors.New("réponse tiers sans code client")
			}
			return t, nil
		},
		func() Tiers {
			// À défaut, le client livré est son propre tiers facturé
			return Tiers{Code: codeClient}
		},
	)
}

// RegimeTaxe retourne le régime de taxe d'un client
func (c *Client) RegimeTaxe(ctx context.Context, codeClient string) Resultat[Reference] {
	return lireAvecSecours(c, "regime:"+codeClient,
		func() (Reference, error) {
			var brut referenceBrute
			query := url.Values{"customer_code": {codeClient}}
			if err := c.get(ctx, "/taxe/regime", query, TimeoutReferences, &brut); err != nil {
				return Reference{}, err
			}
			return brut.normaliser(), nil
		},
		regimeTaxeSecours,
	)
}

// DeviseClient retourne le code devise applicable à un client
func (c *Client) DeviseClient(ctx context.Context, codeClient string) Resultat[string] {
	return lireAvecSecours(c, "devise:"+codeClient,
		func() (string, error) {
			var brut struct {
				Code     string `json:"code"`
				Currency string `json:"currency"`
				Devise   string `json:"devise"`
			}
			query := url.Values{"customer_code": {codeClient}}
			if err := c.get(ctx, "/currency/code", query, TimeoutReferences, &brut); err != nil {
				return "", err
			}
			code := premier(brut.Code, brut.Currency, brut.Devise)
			if code == "" {
				return "", errors.New("réponse devise vide")
			}
			return code, nil
		},
		func() string { return deviseSecours },
	)
}

// ConditionsFacturation retourne les conditions de facturation d'un client
func (c *Client) ConditionsFacturation(ctx context.Context, codeClient string) Resultat[ConditionsFacturation] {
	return lireAvecSecours(c, "condfac:"+codeClient,
		func() (ConditionsFacturation, error) {
			query := url.Values{"customer_code": {codeClient}}

			var conditions ConditionsFacturation
			var brut referenceBrute
			if err := c.get(ctx, "/facture/payment-condition", query, TimeoutReferences, &brut); err != nil {
				return conditions, err
			}
			conditions.ConditionPaiement = brut.normaliser().Code

			// Endpoints secondaires : une absence n'invalide pas le tout
			brut = referenceBrute{}
			if err := c.get(ctx, "/facture/escomte", query, TimeoutReferences, &brut); err == nil {
				conditions.Escompte = brut.normaliser().Code
			}
			brut = referenceBrute{}
			if err := c.get(ctx, "/facture/condfac", query, TimeoutReferences, &brut); err == nil {
				conditions.CondFac = brut.normaliser().Code
			}
			var elements []referenceBrute
			if err := c.get(ctx, "/facture/element", query, TimeoutReferences, &elements); err == nil {
				conditions.Elements = normaliserReferences(elements)
			}
			return conditions, nil
		},
		conditionsFacturationSecours,
	)
}
