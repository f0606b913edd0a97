package domain

type ViewSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ViewSet struct {
	Landscapes []ViewSummary `json:"landscapes"`
	Contexts   []ViewSummary `json:"contexts"`
	Containers []ViewSummary `json:"containers"`
	Components []ViewSummary `json:"components"`
}

type Layout struct {
	Direction      string `json:"direction"`
	RankSeparation int    `json:"rankSeparation"`
	NodeSeparation int    `json:"nodeSeparation"`
}

type ElementSummary struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	ViewURL      string   `json:"viewUrl,omitempty"`
	IsChild      bool     `json:"isChild"`
	Technologies []string `json:"technologies,omitempty"`
	Tags         TagSet   `json:"tags"`
}

type RelationshipSummary struct {
	ID            string   `json:"id"`
	SourceID      string   `json:"sourceId"`
	DestinationID string   `json:"destinationId"`
	Description   string   `json:"description"`
	Technologies  []string `json:"technologies,omitempty"`
	Tags          TagSet   `json:"tags"`
}

type DynamicViewSummary struct {
	ID    string            `json:"id"`
	Name  string            `json:"name"`
	Title string            `json:"title"`
	Steps map[string]string `json:"steps"`
}

// Diagram is the self-contained projection of one static view.
type Diagram struct {
	ID            string                        `json:"id"`
	Name          string                        `json:"name"`
	Title         string                        `json:"title"`
	Layout        *Layout                       `json:"layout,omitempty"`
	Elements      []ElementSummary              `json:"elements"`
	Relationships []RelationshipSummary         `json:"relationships"`
	DynamicViews  map[string]DynamicViewSummary `json:"dynamicViews,omitempty"`
}
