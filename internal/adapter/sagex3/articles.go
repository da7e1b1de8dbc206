package sagex3

import (
	"context"
	"net/url"
	"strings"

	"github.com/malicksy/pos-sagex3/internal/domain/catalogue"
)

// Articles retourne le catalogue d'articles d'un site
func (c *Client) Articles(ctx context.Context, siteID string) Resultat[[]catalogue.Article] {
	return lireAvecSecours(c, "articles:"+siteID,
		func() ([]catalogue.Article, error) {
			var bruts []articleBrut
			query := url.Values{"site_id": {siteID}}
			if err := c.get(ctx, "/articles/", query, TimeoutCatalogue, &bruts); err != nil {
				return nil, err
			}
			return normaliserArticles(bruts), nil
		},
		articlesSecours,
	)
}

// RechercherArticles recherche dans le catalogue d'un site. En mode
// dégradé, la recherche est faite localement sur les données de secours.
func (c *Client) RechercherArticles(ctx context.Context, siteID, q string) Resultat[[]catalogue.Article] {
	var bruts []articleBrut
	query := url.Values{"site_id": {siteID}, "q": {q}}
	err := c.get(ctx, "/articles/search", query, TimeoutCatalogue, &bruts)
	if err == nil {
		return distant(normaliserArticles(bruts))
	}

	c.log.Warn("recherche catalogue indisponible, filtrage local", "q", q, "erreur", err)

	base := c.Articles(ctx, siteID)
	filtre := strings.ToLower(strings.TrimSpace(q))
	var trouves []catalogue.Article
	for _, a := range base.Donnees {
		if filtre == "" ||
			strings.Contains(strings.ToLower(a.Designation), filtre) ||
			strings.Contains(strings.ToLower(a.Code), filtre) ||
			a.CodeBarre == strings.TrimSpace(q) {
			trouves = append(trouves, a)
		}
	}
	return local(trouves, err)
}
