package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/malicksy/pos-sagex3/internal/adapter/api/dto"
	"github.com/malicksy/pos-sagex3/internal/adapter/repository"
	"github.com/malicksy/pos-sagex3/internal/domain/transaction"
	"github.com/malicksy/pos-sagex3/pkg/logger"
)

// TransactionController expose le journal des transactions encaissées
type TransactionController struct {
	repo   transaction.Repository
	logger logger.Logger
}

// NewTransactionController crée une nouvelle instance de TransactionController
func NewTransactionController(repo transaction.Repository, logger logger.Logger) *TransactionController {
	return &TransactionController{
		repo:   repo,
		logger: logger,
	}
}

// List liste les transactions les plus récentes en premier
// @Summary Journal des transactions
// @Tags transactions
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Page (défaut: 1)"
// @Param page_size query int false "Taille de page (défaut: 20, max: 100)"
// @Success 200 {array} transaction.Transaction
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions [get]
func (c *TransactionController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))
	pagination := dto.GetPagination(page, pageSize)

	transactions, err := c.repo.List(ctx.Request.Context(), pagination.PageSize, (pagination.Page-1)*pagination.PageSize)
	if err != nil {
		c.logger.Error("erreur lors de la lecture du journal", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erreur interne", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, transactions)
}

// GetByID retourne une transaction par son identifiant
// @Summary Détail d'une transaction
// @Tags transactions
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Identifiant de la transaction"
// @Success 200 {object} transaction.Transaction
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions/{id} [get]
func (c *TransactionController) GetByID(ctx *gin.Context) {
	t, err := c.repo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTransactionIntrouvable) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "transaction introuvable", err.Error()))
			return
		}
		c.logger.Error("erreur lors de la lecture de la transaction", "id", ctx.Param("id"), "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erreur interne", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, t)
}

// UpdateStatut change le statut d'une transaction. Utilisé lors du
// rapprochement avec le backend : une transaction encaissée hors ligne
// reste en attente jusqu'à confirmation ou refus différé du paiement.
// @Summary Changer le statut d'une transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Identifiant de la transaction"
// @Param statut body dto.StatutRequest true "Nouveau statut"
// @Success 200 {object} transaction.Transaction
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /transactions/{id}/statut [patch]
func (c *TransactionController) UpdateStatut(ctx *gin.Context) {
	var req dto.StatutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "données invalides", err.Error()))
		return
	}

	statut := transaction.Statut(req.Statut)
	if !transaction.StatutValide(statut) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "statut invalide", req.Statut))
		return
	}

	id := ctx.Param("id")
	if err := c.repo.UpdateStatut(ctx.Request.Context(), id, statut); err != nil {
		if errors.Is(err, repository.ErrTransactionIntrouvable) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "transaction introuvable", err.Error()))
			return
		}
		c.logger.Error("erreur lors du changement de statut", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erreur interne", err.Error()))
		return
	}

	t, err := c.repo.FindByID(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erreur interne", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, t)
}

// Ticket réimprime le ticket de caisse d'une transaction
// @Summary Ticket de caisse
// @Tags transactions
// @Produce plain
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Identifiant de la transaction"
// @Success 200 {string} string "Ticket en texte brut"
// @Failure 404 {object} dto.ErrorResponse
// @Router /transactions/{id}/ticket [get]
func (c *TransactionController) Ticket(ctx *gin.Context) {
	t, err := c.repo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTransactionIntrouvable) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "transaction introuvable", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erreur interne", err.Error()))
		return
	}

	ctx.String(http.StatusOK, transaction.Ticket(t))
}
