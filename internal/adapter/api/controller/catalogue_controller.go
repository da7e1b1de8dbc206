package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malicksy/pos-sagex3/internal/adapter/api/dto"
	"github.com/malicksy/pos-sagex3/internal/adapter/sagex3"
	"github.com/malicksy/pos-sagex3/internal/session"
	"github.com/malicksy/pos-sagex3/pkg/auth"
	"github.com/malicksy/pos-sagex3/pkg/logger"
)

// CatalogueController relaie le catalogue d'articles du backend
type CatalogueController struct {
	x3       *sagex3.Client
	sessions *session.Registre
	logger   logger.Logger
}

// NewCatalogueController crée une nouvelle instance de CatalogueController
func NewCatalogueController(x3 *sagex3.Client, sessions *session.Registre, logger logger.Logger) *CatalogueController {
	return &CatalogueController{
		x3:       x3,
		sessions: sessions,
		logger:   logger,
	}
}

// Lister retourne le catalogue du site
// @Summary Catalogue du site
// @Description Retourne les articles du site, avec repli local si le backend est indisponible
// @Tags catalogue
// @Produce json
// @Param site_id query string false "Site de vente (dossier par défaut sinon)"
// @Success 200 {object} dto.ProxyResponse
// @Router /catalogue [get]
func (c *CatalogueController) Lister(ctx *gin.Context) {
	siteID := ctx.DefaultQuery("site_id", c.x3.Dossier())

	r := c.x3.Articles(ctx.Request.Context(), siteID)
	ctx.JSON(http.StatusOK, dto.NewProxyResponse(r.Donnees, r.Local, r.Erreur))
}

// Rechercher recherche dans le catalogue. Une nouvelle recherche du même
// terminal supplante la précédente : la réponse d'une saisie périmée est
// jetée plutôt que renvoyée dans le désordre.
// @Summary Recherche catalogue
// @Tags catalogue
// @Produce json
// @Param q query string true "Terme de recherche"
// @Param site_id query string false "Site de vente"
// @Success 200 {object} dto.ProxyResponse
// @Router /catalogue/recherche [get]
func (c *CatalogueController) Rechercher(ctx *gin.Context) {
	siteID := ctx.DefaultQuery("site_id", c.x3.Dossier())
	q := ctx.Query("q")

	s := c.sessions.Obtenir(auth.TerminalID(ctx))
	generation := s.NouvelleRecherche()

	r := c.x3.RechercherArticles(ctx.Request.Context(), siteID, q)

	if !s.RechercheCourante(generation) {
		// Une saisie plus récente est déjà partie
		ctx.JSON(http.StatusOK, dto.NewProxyResponse(nil, false, ""))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewProxyResponse(r.Donnees, r.Local, r.Erreur))
}
