package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malicksy/pos-sagex3/internal/adapter/api/dto"
	"github.com/malicksy/pos-sagex3/internal/adapter/repository"
	"github.com/malicksy/pos-sagex3/pkg/logger"
)

// newRouteurAuth monte les routes d'authentification sur un dépôt de
// caissiers mémoire amorcé avec le gérant de secours, comme au démarrage
// hors ligne
func newRouteurAuth(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "secret-de-test")

	repo := repository.NewMemoireCaissierRepository()
	require.NoError(t, repository.AmorcerGerantSecours(repo, "0000"))

	authController := NewAuthController(repo, logger.NewLogger())

	router := gin.New()
	router.POST("/auth/login", authController.Login)
	router.POST("/auth/refresh", authController.Refresh)
	return router
}

func TestLoginGerantSecours(t *testing.T) {
	router := newRouteurAuth(t)

	w := requeteJSON(t, router, http.MethodPost, "/auth/login",
		dto.LoginRequest{Code: "ADMIN", Pin: "0000", Terminal: "CAISSE-01"})
	require.Equal(t, http.StatusOK, w.Code)

	var reponse dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reponse))
	assert.NotEmpty(t, reponse.Token)
	assert.Equal(t, "Gérant de secours", reponse.Nom)
	assert.Equal(t, "gerant", reponse.Role)
	assert.Equal(t, "CAISSE-01", reponse.Terminal)
}

func TestLoginPinInvalide(t *testing.T) {
	router := newRouteurAuth(t)

	w := requeteJSON(t, router, http.MethodPost, "/auth/login",
		dto.LoginRequest{Code: "ADMIN", Pin: "9999", Terminal: "CAISSE-01"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = requeteJSON(t, router, http.MethodPost, "/auth/login",
		dto.LoginRequest{Code: "INCONNU", Pin: "0000", Terminal: "CAISSE-01"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshRenouvelleUnTokenValide(t *testing.T) {
	router := newRouteurAuth(t)

	w := requeteJSON(t, router, http.MethodPost, "/auth/login",
		dto.LoginRequest{Code: "ADMIN", Pin: "0000", Terminal: "CAISSE-01"})
	require.Equal(t, http.StatusOK, w.Code)

	var session dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))

	w = requeteJSON(t, router, http.MethodPost, "/auth/refresh",
		dto.RefreshRequest{Token: session.Token})
	require.Equal(t, http.StatusOK, w.Code)

	var renouvele dto.RefreshResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &renouvele))
	assert.NotEmpty(t, renouvele.Token)
}

func TestRefreshTokenInvalide(t *testing.T) {
	router := newRouteurAuth(t)

	w := requeteJSON(t, router, http.MethodPost, "/auth/refresh",
		dto.RefreshRequest{Token: "pas-un-token"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
