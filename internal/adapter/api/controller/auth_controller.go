package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/malicksy/pos-sagex3/internal/adapter/api/dto"
	"github.com/malicksy/pos-sagex3/internal/adapter/repository"
	caissierdomain "github.com/malicksy/pos-sagex3/internal/domain/caissier"
	"github.com/malicksy/pos-sagex3/pkg/jwt"
	"github.com/malicksy/pos-sagex3/pkg/logger"
)

// AuthController gère l'ouverture des sessions caissier
type AuthController struct {
	caissierRepo caissierdomain.Repository
	logger       logger.Logger
}

// NewAuthController crée une nouvelle instance de AuthController
func NewAuthController(caissierRepo caissierdomain.Repository, logger logger.Logger) *AuthController {
	return &AuthController{
		caissierRepo: caissierRepo,
		logger:       logger,
	}
}

// Login ouvre une session caissier
// @Summary Ouvrir une session caissier
// @Description Vérifie le code PIN et délivre un token JWT lié au terminal
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Identifiants du caissier"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "données invalides", err.Error()))
		return
	}

	caissier, err := c.caissierRepo.FindByCode(ctx, req.Code)
	if err != nil {
		if err == repository.ErrCaissierIntrouvable {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "identifiants invalides", ""))
			return
		}
		c.logger.Error("erreur lors de la lecture du caissier", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erreur interne", err.Error()))
		return
	}

	if !caissier.EstActif() || !caissier.VerifierPin(req.Pin) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "identifiants invalides", ""))
		return
	}

	token, err := jwt.GenerateToken(caissier.Code, caissier.Nom, string(caissier.Role), req.Terminal, 12*time.Hour)
	if err != nil {
		c.logger.Error("erreur lors de la génération du token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erreur interne", err.Error()))
		return
	}

	caissier.EnregistrerConnexion()
	if err := c.caissierRepo.Update(ctx, caissier); err != nil {
		c.logger.Warn("impossible d'enregistrer la connexion", "caissier", caissier.Code, "error", err)
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token:    token,
		Nom:      caissier.Nom,
		Role:     string(caissier.Role),
		Terminal: req.Terminal,
	})
}

// Refresh renouvelle un token JWT encore valide
// @Summary Renouveler un token JWT
// @Description Délivre un nouveau token de 12h à partir d'un token valide
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshRequest true "Token à renouveler"
// @Success 200 {object} dto.RefreshResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "données invalides", err.Error()))
		return
	}

	token, err := jwt.RefreshToken(req.Token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token invalide", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.RefreshResponse{Token: token})
}
