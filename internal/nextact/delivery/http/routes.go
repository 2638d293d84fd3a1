package http

import (
	"github.com/gin-gonic/gin"

	"nextact/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route goes through the per-client rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	nextact := rg.Group("/nextact", mw.RateLimit())
	{
		nextact.POST("/classify", h.Classify)
		nextact.POST("/chat", h.Chat)
		nextact.GET("/models", h.Models)
	}
}
