package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"nextact/internal/middleware"
	nextactHTTP "nextact/internal/nextact/delivery/http"
)

// setupNextActDomain registers /api/v1/nextact/{classify,chat,models}.
func (srv HTTPServer) setupNextActDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := nextactHTTP.New(srv.l, srv.nextactUC)
	nextactHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "NextAct domain registered")
	return nil
}
