package domain

// TagSet is an ordered, duplicate-free set of tags.
type TagSet []string

func NewTagSet(tags ...string) TagSet {
	set := make(TagSet, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		set = append(set, t)
	}
	return set
}

func (s TagSet) Contains(tag string) bool {
	for _, t := range s {
		if t == tag {
			return true
		}
	}
	return false
}

type Element struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Kind        ElementKind `json:"kind"`
	// empty for kinds that never declare one (Person, SoftwareSystem)
	Technology string `json:"technology,omitempty"`
	// weak reference into Workspace.Element
	ParentID string `json:"parentId,omitempty"`
	Tags     TagSet `json:"tags"`
}

func (e *Element) HasParent() bool {
	return e.ParentID != ""
}

type Relationship struct {
	ID            string `json:"id"`
	SourceID      string `json:"sourceId"`
	DestinationID string `json:"destinationId"`
	Description   string `json:"description"`
	Technology    string `json:"technology,omitempty"`
	Tags          TagSet `json:"tags"`
}

type Views struct {
	Landscapes []*StaticView
	Contexts   []*StaticView
	Containers []*StaticView
	Components []*StaticView
	Dynamics   []*DynamicView
}

// Workspace is the loaded model. It is built once by the ingest mapper and
// must not be mutated afterwards.
type Workspace struct {
	Name        string
	Description string

	elements      []*Element
	elementByID   map[string]*Element
	relationships []*Relationship
	relByID       map[string]*Relationship

	Views Views
}

func NewWorkspace(name, description string) *Workspace {
	return &Workspace{
		Name:        name,
		Description: description,
		elementByID: map[string]*Element{},
		relByID:     map[string]*Relationship{},
	}
}

// AddElement registers e and reports false if its id is already taken.
func (w *Workspace) AddElement(e *Element) bool {
	if _, ok := w.elementByID[e.ID]; ok {
		return false
	}
	w.elementByID[e.ID] = e
	w.elements = append(w.elements, e)
	return true
}

// AddRelationship registers r and reports false if its id is already taken.
func (w *Workspace) AddRelationship(r *Relationship) bool {
	if _, ok := w.relByID[r.ID]; ok {
		return false
	}
	w.relByID[r.ID] = r
	w.relationships = append(w.relationships, r)
	return true
}

func (w *Workspace) Element(id string) (*Element, bool) {
	e, ok := w.elementByID[id]
	return e, ok
}

func (w *Workspace) Relationship(id string) (*Relationship, bool) {
	r, ok := w.relByID[id]
	return r, ok
}

// Parent resolves the element's parent reference.
func (w *Workspace) Parent(e *Element) (*Element, bool) {
	if e == nil || !e.HasParent() {
		return nil, false
	}
	return w.Element(e.ParentID)
}

func (w *Workspace) Elements() []*Element {
	return w.elements
}

func (w *Workspace) Relationships() []*Relationship {
	return w.relationships
}

// StaticViews returns the collection for kind, or nil for dynamic and
// unknown kinds.
func (w *Workspace) StaticViews(kind ViewKind) []*StaticView {
	switch kind {
	case ViewLandscape:
		return w.Views.Landscapes
	case ViewContext:
		return w.Views.Contexts
	case ViewContainer:
		return w.Views.Containers
	case ViewComponent:
		return w.Views.Components
	}
	return nil
}

// AddStaticView appends v to the collection matching its kind.
func (w *Workspace) AddStaticView(v *StaticView) error {
	switch v.Kind {
	case ViewLandscape:
		w.Views.Landscapes = append(w.Views.Landscapes, v)
	case ViewContext:
		w.Views.Contexts = append(w.Views.Contexts, v)
	case ViewContainer:
		w.Views.Containers = append(w.Views.Containers, v)
	case ViewComponent:
		w.Views.Components = append(w.Views.Components, v)
	default:
		return &UnknownViewKindError{Kind: v.Kind}
	}
	return nil
}
