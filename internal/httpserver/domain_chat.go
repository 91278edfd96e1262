package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "nova-assistant/internal/chat/delivery/http"
	"nova-assistant/internal/middleware"
)

// setupChatDomain initializes the chat domain and registers its routes.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := chatHTTP.New(srv.l, srv.store, srv.voice)

	// Registers /api/v1/chat/sessions
	chatHTTP.RegisterRoutes(api.Group("/chat"), h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
