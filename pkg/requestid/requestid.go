package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID est l'en-tête portant l'identifiant de corrélation
const HeaderRequestID = "X-Request-ID"

// Middleware attache un identifiant de corrélation à chaque requête.
// L'identifiant fourni par le client est conservé, sinon un nouveau est
// généré. Il est propagé dans le contexte Gin et dans la réponse.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set("request_id", id)
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}

// FromContext retourne l'identifiant de corrélation de la requête
func FromContext(c *gin.Context) string {
	return c.GetString("request_id")
}
