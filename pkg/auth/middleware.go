package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/malicksy/pos-sagex3/internal/adapter/api/dto"
	"github.com/malicksy/pos-sagex3/pkg/jwt"
)

// HeaderTerminal est l'en-tête HTTP identifiant le terminal de caisse
const HeaderTerminal = "X-Terminal-ID"

// Middleware crée un middleware gin d'authentification JWT pour les routes de caisse
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"authentification requise",
				"l'en-tête Authorization n'a pas été fourni",
			))
			return
		}

		// Vérifier le format "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"format de token invalide",
				"utilisez le format 'Bearer <token>'",
			))
			return
		}

		claims, err := jwt.ValidateToken(tokenParts[1])
		if err != nil {
			message := "token invalide"
			if err == jwt.ErrExpiredToken {
				message = "token expiré"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				message,
				err.Error(),
			))
			return
		}

		// Stocker les claims dans le contexte gin
		c.Set("caissier_code", claims.CaissierCode)
		c.Set("caissier_nom", claims.CaissierNom)
		c.Set("caissier_role", claims.Role)
		c.Set("terminal", claims.Terminal)

		c.Next()
	}
}

// TerminalID retourne l'identifiant du terminal pour la requête courante.
// L'en-tête X-Terminal-ID prime sur la valeur portée par le token, ce qui
// permet à un gérant authentifié d'agir sur la session d'un autre poste.
func TerminalID(c *gin.Context) string {
	if terminal := c.GetHeader(HeaderTerminal); terminal != "" {
		return terminal
	}
	return c.GetString("terminal")
}
