package domain

type AutoLayout struct {
	Direction      string
	RankSeparation int
	NodeSeparation int
}

type ElementRef struct {
	ElementID string
}

type RelationshipRef struct {
	RelationshipID string
}

// StaticView is one of the four C4 zoom levels. SoftwareSystemID is set for
// context and container views, ContainerID for component views.
type StaticView struct {
	Kind        ViewKind
	Key         string
	Name        string
	Description string
	Title       string

	SoftwareSystemID string
	ContainerID      string

	Elements      []ElementRef
	Relationships []RelationshipRef
	AutoLayout    *AutoLayout
}

type Step struct {
	Order          string
	RelationshipID string
}

// DynamicView documents an ordered interaction scoped to ElementID.
type DynamicView struct {
	Key         string
	Name        string
	Title       string
	Description string
	ElementID   string
	Steps       []Step
}
