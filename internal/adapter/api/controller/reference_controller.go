package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malicksy/pos-sagex3/internal/adapter/api/dto"
	"github.com/malicksy/pos-sagex3/internal/adapter/sagex3"
	"github.com/malicksy/pos-sagex3/pkg/logger"
)

// ReferenceController relaie les listes de référence du dossier X3
type ReferenceController struct {
	x3     *sagex3.Client
	logger logger.Logger
}

// NewReferenceController crée une nouvelle instance de ReferenceController
func NewReferenceController(x3 *sagex3.Client, logger logger.Logger) *ReferenceController {
	return &ReferenceController{
		x3:     x3,
		logger: logger,
	}
}

// Clients retourne la liste des clients du dossier
// @Summary Liste des clients
// @Tags references
// @Produce json
// @Success 200 {object} dto.ProxyResponse
// @Router /references/clients [get]
func (c *ReferenceController) Clients(ctx *gin.Context) {
	r := c.x3.Clients(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.NewProxyResponse(r.Donnees, r.Local, r.Erreur))
}

// SitesVente retourne les sites de vente
// @Summary Sites de vente
// @Tags references
// @Produce json
// @Success 200 {object} dto.ProxyResponse
// @Router /references/sites [get]
func (c *ReferenceController) SitesVente(ctx *gin.Context) {
	r := c.x3.SitesVente(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.NewProxyResponse(r.Donnees, r.Local, r.Erreur))
}

// AdressesExpedition retourne les adresses d'expédition d'une société
// @Summary Adresses d'expédition
// @Tags references
// @Produce json
// @Param legacy_comp query string true "Code société"
// @Success 200 {object} dto.ProxyResponse
// @Router /references/expeditions [get]
func (c *ReferenceController) AdressesExpedition(ctx *gin.Context) {
	r := c.x3.AdressesExpedition(ctx.Request.Context(), ctx.Query("legacy_comp"))
	ctx.JSON(http.StatusOK, dto.NewProxyResponse(r.Donnees, r.Local, r.Erreur))
}

// TypesCommande retourne les types de commande
// @Summary Types de commande
// @Tags references
// @Produce json
// @Success 200 {object} dto.ProxyResponse
// @Router /references/types-commande [get]
func (c *ReferenceController) TypesCommande(ctx *gin.Context) {
	r := c.x3.TypesCommande(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.NewProxyResponse(r.Donnees, r.Local, r.Erreur))
}

// ModesLivraison retourne les modes de livraison
// @Summary Modes de livraison
// @Tags references
// @Produce json
// @Success 200 {object} dto.ProxyResponse
// @Router /references/modes-livraison [get]
func (c *ReferenceController) ModesLivraison(ctx *gin.Context) {
	r := c.x3.ModesLivraison(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.NewProxyResponse(r.Donnees, r.Local, r.Erreur))
}

// Transporteurs retourne les transporteurs
// @Summary Transporteurs
// @Tags references
// @Produce json
// @Success 200 {object} dto.ProxyResponse
// @Router /references/transporteurs [get]
func (c *ReferenceController) Transporteurs(ctx *gin.Context) {
	r := c.x3.Transporteurs(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.NewProxyResponse(r.Donnees, r.Local, r.Erreur))
}

// RegimeTaxe retourne le régime de taxe d'un client
// @Summary Régime de taxe
// @Tags references
// @Produce json
// @Param customer_code query string true "Code client"
// @Success 200 {object} dto.ProxyResponse
// @Router /references/regime-taxe [get]
func (c *ReferenceController) RegimeTaxe(ctx *gin.Context) {
	r := c.x3.RegimeTaxe(ctx.Request.Context(), ctx.Query("customer_code"))
	ctx.JSON(http.StatusOK, dto.NewProxyResponse(r.Donnees, r.Local, r.Erreur))
}

// ConditionsFacturation retourne les conditions de facturation d'un client
// @Summary Conditions de facturation
// @Tags references
// @Produce json
// @Param customer_code query string true "Code client"
// @Success 200 {object} dto.ProxyResponse
// @Router /references/conditions-facturation [get]
func (c *ReferenceController) ConditionsFacturation(ctx *gin.Context) {
	r := c.x3.ConditionsFacturation(ctx.Request.Context(), ctx.Query("customer_code"))
	ctx.JSON(http.StatusOK, dto.NewProxyResponse(r.Donnees, r.Local, r.Erreur))
}

// TaxesAppliquees résout la taxe applicable à un article pour un client.
// En mode dégradé aucune taxe n'est résolue et la caisse reste en double
// base prix HT/TTC.
// @Summary Taxes appliquées
// @Tags references
// @Produce json
// @Param item_code query string true "Code article"
// @Param customer_code query string true "Code client"
// @Success 200 {object} dto.ProxyResponse
// @Router /references/taxes-appliquees [get]
func (c *ReferenceController) TaxesAppliquees(ctx *gin.Context) {
	r := c.x3.TaxesAppliquees(ctx.Request.Context(), []sagex3.DemandeTaxe{{
		CodeArticle: ctx.Query("item_code"),
		CodeClient:  ctx.Query("customer_code"),
	}})
	ctx.JSON(http.StatusOK, dto.NewProxyResponse(r.Donnees, r.Local, r.Erreur))
}

// Synchroniser déclenche une synchronisation des données côté backend
// @Summary Synchronisation backend
// @Tags references
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /synchronize [post]
func (c *ReferenceController) Synchroniser(ctx *gin.Context) {
	r := c.x3.Synchroniser(ctx.Request.Context())
	if !r.Succes {
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "synchronisation impossible", r.Erreur))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("synchronisation déclenchée", nil))
}
