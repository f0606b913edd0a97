package domain

type ElementKind string

const (
	ElementPerson         ElementKind = "Person"
	ElementSoftwareSystem ElementKind = "SoftwareSystem"
	ElementContainer      ElementKind = "Container"
	ElementComponent      ElementKind = "Component"
)

type ViewKind string

const (
	ViewLandscape ViewKind = "landscape"
	ViewContext   ViewKind = "context"
	ViewContainer ViewKind = "container"
	ViewComponent ViewKind = "component"
	ViewDynamic   ViewKind = "dynamic"
)

// StaticViewKinds lists the zoom levels in landscape → component order.
var StaticViewKinds = []ViewKind{ViewLandscape, ViewContext, ViewContainer, ViewComponent}

// ParseViewKind accepts both the singular kind and its plural route segment
// ("context", "contexts").
func ParseViewKind(s string) (ViewKind, bool) {
	switch s {
	case "landscape", "landscapes":
		return ViewLandscape, true
	case "context", "contexts":
		return ViewContext, true
	case "container", "containers":
		return ViewContainer, true
	case "component", "components":
		return ViewComponent, true
	}
	return "", false
}

func (k ViewKind) IsStatic() bool {
	for _, s := range StaticViewKinds {
		if k == s {
			return true
		}
	}
	return false
}

// Plural is the collection name used in routes and in the view set.
func (k ViewKind) Plural() string {
	return string(k) + "s"
}
