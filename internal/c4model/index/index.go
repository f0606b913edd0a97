// Package index builds the cross-reference lookups used to link views at
// different zoom levels. An Index is built once after the workspace is
// loaded and is read-only afterwards.
package index

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/domain"
)

// Links maps an element id to the path of the view documenting it one
// zoom level down.
type Links map[string]string

func (l Links) Lookup(elementID string) (string, bool) {
	url, ok := l[elementID]
	return url, ok
}

type Index struct {
	contextViews   Links
	containerViews Links
	componentViews Links
	// element id -> dynamic view key -> summary
	dynamicViews map[string]map[string]domain.DynamicViewSummary
}

// Build walks each view collection once. When two views of the same kind
// share an anchor, the later one wins.
func Build(ws *domain.Workspace, urlPrefix string) *Index {
	urlPrefix = strings.TrimRight(urlPrefix, "/")

	ix := &Index{
		contextViews:   Links{},
		containerViews: Links{},
		componentViews: Links{},
		dynamicViews:   map[string]map[string]domain.DynamicViewSummary{},
	}

	for _, v := range ws.Views.Contexts {
		ix.contextViews[v.SoftwareSystemID] = viewPath(urlPrefix, domain.ViewContext, v.Key)
	}
	for _, v := range ws.Views.Containers {
		ix.containerViews[v.SoftwareSystemID] = viewPath(urlPrefix, domain.ViewContainer, v.Key)
	}
	for _, v := range ws.Views.Components {
		ix.componentViews[v.ContainerID] = viewPath(urlPrefix, domain.ViewComponent, v.Key)
	}

	for _, v := range ws.Views.Dynamics {
		group, ok := ix.dynamicViews[v.ElementID]
		if !ok {
			group = map[string]domain.DynamicViewSummary{}
			ix.dynamicViews[v.ElementID] = group
		}
		steps := make(map[string]string, len(v.Steps))
		for _, s := range v.Steps {
			steps[s.Order] = s.RelationshipID
		}
		group[v.Key] = domain.DynamicViewSummary{
			ID:    v.Key,
			Name:  v.Name,
			Title: v.Title,
			Steps: steps,
		}
	}

	return ix
}

func viewPath(prefix string, kind domain.ViewKind, key string) string {
	return fmt.Sprintf("%s/%s/%s", prefix, kind, key)
}

// LinksFor returns the child-view links used when projecting a view of the
// given kind: landscape elements link to context views, context elements to
// container views, container elements to component views. Component views
// have nothing deeper to link to.
func (ix *Index) LinksFor(kind domain.ViewKind) Links {
	switch kind {
	case domain.ViewLandscape:
		return ix.contextViews
	case domain.ViewContext:
		return ix.containerViews
	case domain.ViewContainer:
		return ix.componentViews
	}
	return Links{}
}

// DynamicViews returns the dynamic views scoped to anchorID, or nil.
func (ix *Index) DynamicViews(anchorID string) map[string]domain.DynamicViewSummary {
	group, ok := ix.dynamicViews[anchorID]
	if !ok || len(group) == 0 {
		return nil
	}
	return group
}

type Stats struct {
	ContextLinks   int `json:"contextLinks"`
	ContainerLinks int `json:"containerLinks"`
	ComponentLinks int `json:"componentLinks"`
	DynamicAnchors int `json:"dynamicAnchors"`
}

func (ix *Index) Stats() Stats {
	return Stats{
		ContextLinks:   len(ix.contextViews),
		ContainerLinks: len(ix.containerViews),
		ComponentLinks: len(ix.componentViews),
		DynamicAnchors: len(ix.dynamicViews),
	}
}
