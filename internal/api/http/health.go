package http

import (
	"context"
	"net/http"
	"time"

	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/service"
	"github.com/gin-gonic/gin"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status    string         `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Service   string         `json:"service"`
	Version   string         `json:"version"`
	Workspace *service.Stats `json:"workspace,omitempty"`

	// Dependencies maps each configured store to "up" or "down".
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	diagrams    *service.DiagramService
	deps        map[string]Pinger
}

// NewHealthHandler creates a health handler. diagrams and deps may be nil.
func NewHealthHandler(serviceName, version string, diagrams *service.DiagramService, deps map[string]Pinger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		diagrams:    diagrams,
		deps:        deps,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
	}

	if len(h.deps) > 0 {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		resp.Dependencies = make(map[string]string, len(h.deps))
		for name, p := range h.deps {
			if err := p.Ping(pingCtx); err != nil {
				resp.Dependencies[name] = "down"
				resp.Status = "degraded"
			} else {
				resp.Dependencies[name] = "up"
			}
		}
	}
	if h.diagrams != nil {
		stats := h.diagrams.Stats()
		resp.Workspace = &stats
	}

	c.JSON(http.StatusOK, resp)
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
