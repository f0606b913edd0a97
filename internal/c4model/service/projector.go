package service

import (
	"maps"
	"slices"

	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/domain"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/index"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/technology"
)

func findView(ws *domain.Workspace, kind domain.ViewKind, key string) (*domain.StaticView, error) {
	if !kind.IsStatic() {
		return nil, &domain.UnknownViewKindError{Kind: kind}
	}
	for _, v := range ws.StaticViews(kind) {
		if v.Key == key {
			return v, nil
		}
	}
	return nil, &domain.ViewNotFoundError{Kind: kind, Key: key}
}

// DynamicViewLookup returns the dynamic views scoped to an anchor element.
type DynamicViewLookup interface {
	DynamicViews(anchorID string) map[string]domain.DynamicViewSummary
}

// Project turns the view of the given kind and key into a Diagram. links
// supplies child-view URLs for the elements. Project only reads its inputs
// and the returned diagram shares no memory with the workspace or index.
func Project(ws *domain.Workspace, dynamics DynamicViewLookup, kind domain.ViewKind, links index.Links, key string) (*domain.Diagram, error) {
	view, err := findView(ws, kind, key)
	if err != nil {
		return nil, err
	}

	anchor, hasAnchor, err := ResolveAnchor(ws, view)
	if err != nil {
		return nil, err
	}

	d := &domain.Diagram{
		ID:            view.Key,
		Name:          view.Name,
		Title:         view.Title,
		Elements:      make([]domain.ElementSummary, 0, len(view.Elements)),
		Relationships: make([]domain.RelationshipSummary, 0, len(view.Relationships)),
	}

	for _, ref := range view.Relationships {
		r, ok := ws.Relationship(ref.RelationshipID)
		if !ok {
			return nil, &domain.DanglingReferenceError{View: view.Key, Field: "relationship", Target: ref.RelationshipID}
		}
		d.Relationships = append(d.Relationships, domain.RelationshipSummary{
			ID:            r.ID,
			SourceID:      r.SourceID,
			DestinationID: r.DestinationID,
			Description:   r.Description,
			Technologies:  technology.Parse(r.Technology),
			Tags:          slices.Clone(r.Tags),
		})
	}

	for _, ref := range view.Elements {
		e, ok := ws.Element(ref.ElementID)
		if !ok {
			return nil, &domain.DanglingReferenceError{View: view.Key, Field: "element", Target: ref.ElementID}
		}
		url, _ := links.Lookup(e.ID)
		d.Elements = append(d.Elements, domain.ElementSummary{
			ID:           e.ID,
			Name:         e.Name,
			Description:  e.Description,
			ViewURL:      url,
			IsChild:      hasAnchor && e.HasParent() && e.ParentID == anchor.ID,
			Technologies: technology.Parse(e.Technology),
			Tags:         slices.Clone(e.Tags),
		})
	}

	if al := view.AutoLayout; al != nil {
		d.Layout = &domain.Layout{
			Direction:      al.Direction,
			RankSeparation: al.RankSeparation,
			NodeSeparation: al.NodeSeparation,
		}
	}

	if hasAnchor && dynamics != nil {
		d.DynamicViews = cloneDynamicViews(dynamics.DynamicViews(anchor.ID))
	}

	return d, nil
}

func cloneDynamicViews(group map[string]domain.DynamicViewSummary) map[string]domain.DynamicViewSummary {
	if group == nil {
		return nil
	}
	out := make(map[string]domain.DynamicViewSummary, len(group))
	for key, dv := range group {
		dv.Steps = maps.Clone(dv.Steps)
		out[key] = dv
	}
	return out
}
