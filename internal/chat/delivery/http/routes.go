package http

import (
	"github.com/gin-gonic/gin"

	"nova-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/sessions", mw.RateLimit())
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.DetailSession)
		sessions.POST("/:id/messages", h.SubmitMessage)
		sessions.POST("/:id/voice", h.StartVoice)
		sessions.DELETE("/:id/voice", h.StopVoice)
		sessions.GET("/:id/speech/:messageID", h.Speech)
	}
}
