package validator

import (
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/domain"
)

// CheckReferences reports every view reference that does not resolve in ws.
// The workspace stays loadable; the affected views fail when projected.
func CheckReferences(ws *domain.Workspace) []error {
	var errs []error
	dangling := func(view, field, target string) {
		errs = append(errs, &domain.DanglingReferenceError{View: view, Field: field, Target: target})
	}

	for _, kind := range domain.StaticViewKinds {
		for _, v := range ws.StaticViews(kind) {
			switch kind {
			case domain.ViewContext, domain.ViewContainer:
				if _, ok := ws.Element(v.SoftwareSystemID); !ok {
					dangling(v.Key, "softwareSystemId", v.SoftwareSystemID)
				}
			case domain.ViewComponent:
				if _, ok := ws.Element(v.ContainerID); !ok {
					dangling(v.Key, "containerId", v.ContainerID)
				}
			}
			for _, ref := range v.Elements {
				if _, ok := ws.Element(ref.ElementID); !ok {
					dangling(v.Key, "element", ref.ElementID)
				}
			}
			for _, ref := range v.Relationships {
				if _, ok := ws.Relationship(ref.RelationshipID); !ok {
					dangling(v.Key, "relationship", ref.RelationshipID)
				}
			}
		}
	}

	for _, dv := range ws.Views.Dynamics {
		if _, ok := ws.Element(dv.ElementID); !ok {
			dangling(dv.Key, "elementId", dv.ElementID)
		}
		for _, s := range dv.Steps {
			if _, ok := ws.Relationship(s.RelationshipID); !ok {
				dangling(dv.Key, "relationship", s.RelationshipID)
			}
		}
	}
	return errs
}
