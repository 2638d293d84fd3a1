package http

import (
	"github.com/gin-gonic/gin"

	"nextact/internal/nextact"
	"nextact/pkg/log"
)

// Handler is the public interface for the nextact HTTP delivery layer.
type Handler interface {
	Classify(c *gin.Context)
	Chat(c *gin.Context)
	Models(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc nextact.UseCase
}

// New creates a new HTTP handler for the nextact domain.
func New(l log.Logger, uc nextact.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
