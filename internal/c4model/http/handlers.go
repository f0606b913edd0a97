package http

import (
	"errors"
	"net/http"

	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/domain"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/graph/export"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc *service.DiagramService
	log *zap.SugaredLogger
}

func New(svc *service.DiagramService, log *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, log: log}
}

// ListViews returns every static view grouped by kind
func (h *Handler) ListViews(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Views())
}

func (h *Handler) listKind(kind domain.ViewKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		views, err := h.svc.List(kind)
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, views)
	}
}

func (h *Handler) getDiagram(kind domain.ViewKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "view key is required"})
			return
		}

		d, err := h.svc.Diagram(kind, key)
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, d)
	}
}

func (h *Handler) getDOT(kind domain.ViewKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := h.svc.Diagram(kind, c.Param("key"))
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/vnd.graphviz; charset=utf-8", []byte(export.ToDOT(d)))
	}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrViewNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnknownViewKind), errors.Is(err, domain.ErrDanglingReference):
		h.log.Errorw("projection failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		h.log.Errorw("request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
