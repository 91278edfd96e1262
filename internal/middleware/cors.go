package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nova-assistant/internal/model"
)

// CORS allows cross-origin requests outside production. The browser UI is
// served from a different origin during development.
func (mw Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.environment != string(model.EnvironmentProduction) {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
