package httpserver

import (
	"taskflow/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	HealthMessage = "TaskFlow API v1"
	HealthVersion = "1.0.0"
	ServiceName   = "taskflow"
)

type probeResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
	Service string `json:"service"`
	Tasks   *int   `json:"tasks,omitempty"`
}

func newProbe(status string) probeResp {
	return probeResp{
		Status:  status,
		Message: HealthMessage,
		Version: HealthVersion,
		Service: ServiceName,
	}
}

// healthCheck
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newProbe("healthy"))
}

// readyCheck reports the number of stored tasks. The store is hydrated before
// the server is built, so answering at all means it is ready.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	p := newProbe("ready")
	total := srv.taskUC.Stats(c.Request.Context()).Total
	p.Tasks = &total
	response.OK(c, p)
}

// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newProbe("alive"))
}
