package service

import "github.com/GoSim-25-26J-441/c4model-api/internal/c4model/domain"

// Summaries lists the views of one static kind in workspace order.
func Summaries(ws *domain.Workspace, kind domain.ViewKind) []domain.ViewSummary {
	views := ws.StaticViews(kind)
	out := make([]domain.ViewSummary, 0, len(views))
	for _, v := range views {
		out = append(out, domain.ViewSummary{
			ID:          v.Key,
			Name:        v.Name,
			Description: v.Description,
		})
	}
	return out
}

func Catalog(ws *domain.Workspace) domain.ViewSet {
	return domain.ViewSet{
		Landscapes: Summaries(ws, domain.ViewLandscape),
		Contexts:   Summaries(ws, domain.ViewContext),
		Containers: Summaries(ws, domain.ViewContainer),
		Components: Summaries(ws, domain.ViewComponent),
	}
}
