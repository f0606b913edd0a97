package service

import "github.com/GoSim-25-26J-441/c4model-api/internal/c4model/domain"

// ResolveAnchor returns the element whose children the view depicts.
// Landscape views have no anchor and report ok == false without an error.
func ResolveAnchor(ws *domain.Workspace, v *domain.StaticView) (anchor *domain.Element, ok bool, err error) {
	var id, field string
	switch v.Kind {
	case domain.ViewLandscape:
		return nil, false, nil
	case domain.ViewContext, domain.ViewContainer:
		id, field = v.SoftwareSystemID, "software system"
	case domain.ViewComponent:
		id, field = v.ContainerID, "container"
	default:
		return nil, false, &domain.UnknownViewKindError{Kind: v.Kind}
	}

	anchor, found := ws.Element(id)
	if !found {
		return nil, false, &domain.DanglingReferenceError{View: v.Key, Field: field, Target: id}
	}
	return anchor, true, nil
}
