package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malicksy/pos-sagex3/internal/adapter/api/dto"
	"github.com/malicksy/pos-sagex3/internal/adapter/sagex3"
	"github.com/malicksy/pos-sagex3/internal/domain/livraison"
	"github.com/malicksy/pos-sagex3/internal/session"
	"github.com/malicksy/pos-sagex3/pkg/auth"
	"github.com/malicksy/pos-sagex3/pkg/logger"
)

// LivraisonController gère la saisie et la soumission des bons de livraison
type LivraisonController struct {
	x3       *sagex3.Client
	sessions *session.Registre
	logger   logger.Logger
}

// NewLivraisonController crée une nouvelle instance de LivraisonController
func NewLivraisonController(x3 *sagex3.Client, sessions *session.Registre, logger logger.Logger) *LivraisonController {
	return &LivraisonController{
		x3:       x3,
		sessions: sessions,
		logger:   logger,
	}
}

func (c *LivraisonController) etatBrouillon(ctx *gin.Context, s *session.Session) {
	var reponse dto.BrouillonResponse
	err := s.AvecBrouillon(func(b *livraison.Brouillon) error {
		reponse = dto.BrouillonResponse{
			Brouillon:       b,
			Articles:        b.Articles(),
			PeutSoumettre:   b.PeutSoumettre(),
			ChampsManquants: b.ChampsManquants(),
		}
		return nil
	})
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "aucun brouillon ouvert", err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, reponse)
}

// Ouvrir ouvre un brouillon de livraison pour le terminal
// @Summary Ouvrir un brouillon de livraison
// @Tags livraison
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param brouillon body dto.BrouillonRequest true "Site d'expédition"
// @Success 200 {object} dto.BrouillonResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /livraison/brouillon [post]
func (c *LivraisonController) Ouvrir(ctx *gin.Context) {
	var req dto.BrouillonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "données invalides", err.Error()))
		return
	}

	s := c.sessions.Obtenir(auth.TerminalID(ctx))
	s.OuvrirBrouillon(req.SiteExpedition)
	c.etatBrouillon(ctx, s)
}

// Etat retourne l'état courant du brouillon
// @Summary État du brouillon
// @Tags livraison
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.BrouillonResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /livraison/brouillon [get]
func (c *LivraisonController) Etat(ctx *gin.Context) {
	c.etatBrouillon(ctx, c.sessions.Obtenir(auth.TerminalID(ctx)))
}

// DefinirChamps met à jour les champs simples du brouillon
// @Summary Mettre à jour le brouillon
// @Tags livraison
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param champs body dto.ChampsBrouillonRequest true "Champs à modifier"
// @Success 200 {object} dto.BrouillonResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /livraison/brouillon [patch]
func (c *LivraisonController) DefinirChamps(ctx *gin.Context) {
	var req dto.ChampsBrouillonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "données invalides", err.Error()))
		return
	}

	s := c.sessions.Obtenir(auth.TerminalID(ctx))
	err := s.AvecBrouillon(func(b *livraison.Brouillon) error {
		if req.TypeLivraison != nil {
			b.TypeLivraison = *req.TypeLivraison
		}
		if req.ClientPayeur != nil {
			b.ClientPayeur = *req.ClientPayeur
		}
		if req.DateExpedition != nil {
			b.DateExpedition = *req.DateExpedition
		}
		if req.DateLivraison != nil {
			b.DateLivraison = *req.DateLivraison
		}
		if req.ModeLivraison != nil {
			b.ModeLivraison = *req.ModeLivraison
		}
		if req.Transporteur != nil {
			b.Transporteur = *req.Transporteur
		}
		return nil
	})
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "aucun brouillon ouvert", err.Error()))
		return
	}
	c.etatBrouillon(ctx, s)
}

// Selectionner ajoute un article au brouillon, servi à sa pleine quantité
// @Summary Sélectionner un article
// @Tags livraison
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param selection body dto.SelectionRequest true "Article à sélectionner"
// @Success 200 {object} dto.BrouillonResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /livraison/brouillon/articles [post]
func (c *LivraisonController) Selectionner(ctx *gin.Context) {
	var req dto.SelectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "données invalides", err.Error()))
		return
	}

	s := c.sessions.Obtenir(auth.TerminalID(ctx))
	err := s.AvecBrouillon(func(b *livraison.Brouillon) error {
		b.Selectionner(req.CodeArticle, req.Designation, req.QuantiteMax)
		return nil
	})
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "aucun brouillon ouvert", err.Error()))
		return
	}
	c.etatBrouillon(ctx, s)
}

// ToutAjouter sélectionne tous les articles du site à leur pleine quantité
// @Summary Tout ajouter
// @Description Sélectionne tous les articles disponibles du site, chacun à sa quantité maximale
// @Tags livraison
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.BrouillonResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /livraison/brouillon/articles/tout [post]
func (c *LivraisonController) ToutAjouter(ctx *gin.Context) {
	s := c.sessions.Obtenir(auth.TerminalID(ctx))

	articles := c.x3.Articles(ctx.Request.Context(), c.x3.Dossier())
	disponibles := make([]livraison.SelectionArticle, 0, len(articles.Donnees))
	for _, a := range articles.Donnees {
		disponibles = append(disponibles, livraison.SelectionArticle{
			Code:        a.Code,
			Designation: a.Designation,
			QuantiteMax: a.Stock,
		})
	}

	err := s.AvecBrouillon(func(b *livraison.Brouillon) error {
		b.ToutAjouter(disponibles)
		return nil
	})
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "aucun brouillon ouvert", err.Error()))
		return
	}
	c.etatBrouillon(ctx, s)
}

// DefinirQuantite fixe la quantité demandée d'un article sélectionné,
// ramenée silencieusement dans [0, max]
// @Summary Quantité d'un article sélectionné
// @Tags livraison
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param code path string true "Code article"
// @Param quantite body dto.QuantiteBrouillonRequest true "Quantité demandée"
// @Success 200 {object} dto.BrouillonResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /livraison/brouillon/articles/{code} [patch]
func (c *LivraisonController) DefinirQuantite(ctx *gin.Context) {
	var req dto.QuantiteBrouillonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "données invalides", err.Error()))
		return
	}

	s := c.sessions.Obtenir(auth.TerminalID(ctx))
	err := s.AvecBrouillon(func(b *livraison.Brouillon) error {
		return b.DefinirQuantite(ctx.Param("code"), req.Quantite)
	})
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "article non sélectionné", err.Error()))
		return
	}
	c.etatBrouillon(ctx, s)
}

// Deselectionner retire un article du brouillon
// @Summary Retirer un article du brouillon
// @Tags livraison
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param code path string true "Code article"
// @Success 200 {object} dto.BrouillonResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /livraison/brouillon/articles/{code} [delete]
func (c *LivraisonController) Deselectionner(ctx *gin.Context) {
	s := c.sessions.Obtenir(auth.TerminalID(ctx))
	err := s.AvecBrouillon(func(b *livraison.Brouillon) error {
		b.Deselectionner(ctx.Param("code"))
		return nil
	})
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "aucun brouillon ouvert", err.Error()))
		return
	}
	c.etatBrouillon(ctx, s)
}

// Soumettre valide le brouillon et le soumet au backend. Un brouillon
// incomplet bloque la soumission sans erreur levée ; un échec backend
// laisse le brouillon ouvert pour une nouvelle tentative.
// @Summary Soumettre le brouillon
// @Tags livraison
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 201 {object} dto.SoumissionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.BrouillonResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /livraison/brouillon/soumission [post]
func (c *LivraisonController) Soumettre(ctx *gin.Context) {
	s := c.sessions.Obtenir(auth.TerminalID(ctx))

	var payload livraison.Payload
	var incomplet dto.BrouillonResponse
	err := s.AvecBrouillon(func(b *livraison.Brouillon) error {
		if !b.PeutSoumettre() {
			incomplet = dto.BrouillonResponse{
				Brouillon:       b,
				Articles:        b.Articles(),
				PeutSoumettre:   false,
				ChampsManquants: b.ChampsManquants(),
			}
			return nil
		}
		payload = b.Payload()
		return nil
	})
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "aucun brouillon ouvert", err.Error()))
		return
	}
	if incomplet.Brouillon != nil {
		ctx.JSON(http.StatusUnprocessableEntity, incomplet)
		return
	}

	r := c.x3.SoumettreCommande(ctx.Request.Context(), payload)
	if !r.Succes {
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "soumission impossible", r.Erreur))
		return
	}

	// Brouillon consommé : abandonné après soumission réussie
	s.FermerBrouillon()
	ctx.JSON(http.StatusCreated, dto.SoumissionResponse{Numero: r.Donnees.Numero})
}

// Annuler abandonne le brouillon en cours
// @Summary Annuler le brouillon
// @Tags livraison
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SuccessResponse
// @Router /livraison/brouillon [delete]
func (c *LivraisonController) Annuler(ctx *gin.Context) {
	s := c.sessions.Obtenir(auth.TerminalID(ctx))
	s.FermerBrouillon()
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("brouillon abandonné", nil))
}
