package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "nextact/pkg/errors"
	"nextact/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "nextact"
)

var errNotReady = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "classification model is not loaded")

func probe(status string) gin.H {
	return gin.H{
		"status":  status,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, probe("healthy"))
}

// readyCheck succeeds only once a model artifact is loaded.
// @Summary Readiness Check
// @Description Check if the API is ready to classify tasks
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Model not loaded"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	info, err := srv.nextactUC.ModelInfo(c.Request.Context())
	if err != nil {
		response.Error(c, errNotReady)
		return
	}

	body := probe("ready")
	body["labels"] = info.Labels
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, probe("alive"))
}
