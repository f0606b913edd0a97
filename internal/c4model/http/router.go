package http

import (
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/domain"
	"github.com/gin-gonic/gin"
)

// Register registers the view catalog and diagram routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/views", h.ListViews)

	for _, kind := range domain.StaticViewKinds {
		base := "/" + kind.Plural()
		rg.GET(base, h.listKind(kind))
		rg.GET(base+"/:key", h.getDiagram(kind))
		rg.GET(base+"/:key/dot", h.getDOT(kind))
	}
}
