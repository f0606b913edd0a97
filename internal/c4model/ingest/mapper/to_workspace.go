package mapper

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/domain"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/ingest/parser"
)

var defaultTags = map[domain.ElementKind][]string{
	domain.ElementPerson:         {"Element", "Person"},
	domain.ElementSoftwareSystem: {"Element", "Software System"},
	domain.ElementContainer:      {"Element", "Container"},
	domain.ElementComponent:      {"Element", "Component"},
}

func splitTags(defaults []string, tags string) domain.TagSet {
	all := append([]string{}, defaults...)
	for _, t := range strings.Split(tags, ",") {
		all = append(all, strings.TrimSpace(t))
	}
	return domain.NewTagSet(all...)
}

type pendingRel struct {
	owner string
	rel   parser.YRelationship
}

// ToWorkspace builds the in-memory model. Element ids must be unique, parent
// references come from nesting, and relationship endpoints must exist.
// View contents are not checked here: a view pointing at a missing element
// fails when it is requested.
func ToWorkspace(s *parser.YWorkspace) (*domain.Workspace, error) {
	ws := domain.NewWorkspace(s.Name, s.Description)
	var rels []pendingRel

	add := func(y parser.YElement, kind domain.ElementKind, parentID string) error {
		if strings.TrimSpace(y.ID) == "" {
			return fmt.Errorf("%w: %s %q has no id", domain.ErrInvalidWorkspace, kind, y.Name)
		}
		e := &domain.Element{
			ID:          y.ID,
			Name:        y.Name,
			Description: y.Description,
			Kind:        kind,
			ParentID:    parentID,
			Tags:        splitTags(defaultTags[kind], y.Tags),
		}
		// people and software systems never carry a technology
		if kind == domain.ElementContainer || kind == domain.ElementComponent {
			e.Technology = y.Technology
		}
		if !ws.AddElement(e) {
			return fmt.Errorf("%w: duplicate element id %q", domain.ErrInvalidWorkspace, y.ID)
		}
		for _, r := range y.Relationships {
			rels = append(rels, pendingRel{owner: y.ID, rel: r})
		}
		return nil
	}

	for _, p := range s.Model.People {
		if err := add(p, domain.ElementPerson, ""); err != nil {
			return nil, err
		}
	}
	for _, sys := range s.Model.SoftwareSystems {
		if err := add(sys.YElement, domain.ElementSoftwareSystem, ""); err != nil {
			return nil, err
		}
		for _, c := range sys.Containers {
			if err := add(c.YElement, domain.ElementContainer, sys.ID); err != nil {
				return nil, err
			}
			for _, comp := range c.Components {
				if err := add(comp, domain.ElementComponent, c.ID); err != nil {
					return nil, err
				}
			}
		}
	}

	for _, p := range rels {
		if err := addRelationship(ws, p); err != nil {
			return nil, err
		}
	}

	if err := mapViews(ws, s.Views); err != nil {
		return nil, err
	}
	return ws, nil
}

func addRelationship(ws *domain.Workspace, p pendingRel) error {
	r := p.rel
	src := r.SourceID
	if src == "" {
		src = p.owner
	}
	if _, ok := ws.Element(src); !ok {
		return fmt.Errorf("%w: relationship %q: unknown source %q", domain.ErrInvalidWorkspace, r.ID, src)
	}
	if _, ok := ws.Element(r.DestinationID); !ok {
		return fmt.Errorf("%w: relationship %q: unknown destination %q", domain.ErrInvalidWorkspace, r.ID, r.DestinationID)
	}
	ok := ws.AddRelationship(&domain.Relationship{
		ID:            r.ID,
		SourceID:      src,
		DestinationID: r.DestinationID,
		Description:   r.Description,
		Technology:    r.Technology,
		Tags:          splitTags([]string{"Relationship"}, r.Tags),
	})
	if !ok {
		return fmt.Errorf("%w: duplicate relationship id %q", domain.ErrInvalidWorkspace, r.ID)
	}
	return nil
}

func mapViews(ws *domain.Workspace, v parser.YViews) error {
	groups := []struct {
		kind  domain.ViewKind
		views []parser.YStaticView
	}{
		{domain.ViewLandscape, v.SystemLandscapeViews},
		{domain.ViewContext, v.SystemContextViews},
		{domain.ViewContainer, v.ContainerViews},
		{domain.ViewComponent, v.ComponentViews},
	}

	for _, g := range groups {
		for _, y := range g.views {
			if y.Key == "" {
				return fmt.Errorf("%w: %s view without key", domain.ErrInvalidWorkspace, g.kind)
			}
			sv := toStaticView(g.kind, y)
			if sv.Name == "" {
				sv.Name = defaultViewName(ws, sv)
			}
			if err := ws.AddStaticView(sv); err != nil {
				return err
			}
		}
	}

	for _, y := range v.DynamicViews {
		if y.Key == "" {
			return fmt.Errorf("%w: dynamic view without key", domain.ErrInvalidWorkspace)
		}
		dv := &domain.DynamicView{
			Key:         y.Key,
			Name:        y.Name,
			Title:       y.Title,
			Description: y.Description,
			ElementID:   y.ElementID,
		}
		for _, r := range y.Relationships {
			dv.Steps = append(dv.Steps, domain.Step{Order: r.Order, RelationshipID: r.ID})
		}
		if dv.Name == "" {
			dv.Name = elementName(ws, y.ElementID) + " - Dynamic"
		}
		ws.Views.Dynamics = append(ws.Views.Dynamics, dv)
	}
	return nil
}

func toStaticView(kind domain.ViewKind, y parser.YStaticView) *domain.StaticView {
	sv := &domain.StaticView{
		Kind:        kind,
		Key:         y.Key,
		Name:        y.Name,
		Description: y.Description,
		Title:       y.Title,
	}
	switch kind {
	case domain.ViewContext, domain.ViewContainer:
		sv.SoftwareSystemID = y.SoftwareSystemID
	case domain.ViewComponent:
		sv.ContainerID = y.ContainerID
	}
	for _, e := range y.Elements {
		sv.Elements = append(sv.Elements, domain.ElementRef{ElementID: e.ID})
	}
	for _, r := range y.Relationships {
		sv.Relationships = append(sv.Relationships, domain.RelationshipRef{RelationshipID: r.ID})
	}
	if al := y.AutomaticLayout; al != nil {
		sv.AutoLayout = &domain.AutoLayout{
			Direction:      al.RankDirection,
			RankSeparation: al.RankSeparation,
			NodeSeparation: al.NodeSeparation,
		}
	}
	return sv
}

func elementName(ws *domain.Workspace, id string) string {
	if e, ok := ws.Element(id); ok {
		return e.Name
	}
	return id
}

func defaultViewName(ws *domain.Workspace, v *domain.StaticView) string {
	switch v.Kind {
	case domain.ViewContext:
		return elementName(ws, v.SoftwareSystemID) + " - System Context"
	case domain.ViewContainer:
		return elementName(ws, v.SoftwareSystemID) + " - Containers"
	case domain.ViewComponent:
		c, ok := ws.Element(v.ContainerID)
		if !ok {
			return v.ContainerID + " - Components"
		}
		return fmt.Sprintf("%s - %s - Components", elementName(ws, c.ParentID), c.Name)
	}
	return "System Landscape"
}
