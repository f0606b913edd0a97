package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// YWorkspace mirrors the workspace export format: elements nested by
// ownership, relationships declared on their source element, and views
// grouped per kind.
type YWorkspace struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Model       YModel `yaml:"model" json:"model"`
	Views       YViews `yaml:"views" json:"views"`
}

type YModel struct {
	People          []YElement        `yaml:"people,omitempty" json:"people,omitempty"`
	SoftwareSystems []YSoftwareSystem `yaml:"softwareSystems,omitempty" json:"softwareSystems,omitempty"`
}

type YElement struct {
	ID            string          `yaml:"id" json:"id"`
	Name          string          `yaml:"name" json:"name"`
	Description   string          `yaml:"description,omitempty" json:"description,omitempty"`
	Technology    string          `yaml:"technology,omitempty" json:"technology,omitempty"`
	Tags          string          `yaml:"tags,omitempty" json:"tags,omitempty"`
	Relationships []YRelationship `yaml:"relationships,omitempty" json:"relationships,omitempty"`
}

type YSoftwareSystem struct {
	YElement   `yaml:",inline"`
	Containers []YContainer `yaml:"containers,omitempty" json:"containers,omitempty"`
}

type YContainer struct {
	YElement   `yaml:",inline"`
	Components []YElement `yaml:"components,omitempty" json:"components,omitempty"`
}

type YRelationship struct {
	ID            string `yaml:"id" json:"id"`
	SourceID      string `yaml:"sourceId,omitempty" json:"sourceId,omitempty"`
	DestinationID string `yaml:"destinationId" json:"destinationId"`
	Description   string `yaml:"description,omitempty" json:"description,omitempty"`
	Technology    string `yaml:"technology,omitempty" json:"technology,omitempty"`
	Tags          string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

type YViews struct {
	SystemLandscapeViews []YStaticView  `yaml:"systemLandscapeViews,omitempty" json:"systemLandscapeViews,omitempty"`
	SystemContextViews   []YStaticView  `yaml:"systemContextViews,omitempty" json:"systemContextViews,omitempty"`
	ContainerViews       []YStaticView  `yaml:"containerViews,omitempty" json:"containerViews,omitempty"`
	ComponentViews       []YStaticView  `yaml:"componentViews,omitempty" json:"componentViews,omitempty"`
	DynamicViews         []YDynamicView `yaml:"dynamicViews,omitempty" json:"dynamicViews,omitempty"`
}

type YStaticView struct {
	Key              string              `yaml:"key" json:"key"`
	Name             string              `yaml:"name,omitempty" json:"name,omitempty"`
	Description      string              `yaml:"description,omitempty" json:"description,omitempty"`
	Title            string              `yaml:"title,omitempty" json:"title,omitempty"`
	SoftwareSystemID string              `yaml:"softwareSystemId,omitempty" json:"softwareSystemId,omitempty"`
	ContainerID      string              `yaml:"containerId,omitempty" json:"containerId,omitempty"`
	Elements         []YElementView      `yaml:"elements,omitempty" json:"elements,omitempty"`
	Relationships    []YRelationshipView `yaml:"relationships,omitempty" json:"relationships,omitempty"`
	AutomaticLayout  *YAutomaticLayout   `yaml:"automaticLayout,omitempty" json:"automaticLayout,omitempty"`
}

type YElementView struct {
	ID string `yaml:"id" json:"id"`
}

type YRelationshipView struct {
	ID    string `yaml:"id" json:"id"`
	Order string `yaml:"order,omitempty" json:"order,omitempty"`
}

type YAutomaticLayout struct {
	RankDirection  string `yaml:"rankDirection" json:"rankDirection"`
	RankSeparation int    `yaml:"rankSeparation" json:"rankSeparation"`
	NodeSeparation int    `yaml:"nodeSeparation" json:"nodeSeparation"`
}

type YDynamicView struct {
	Key           string              `yaml:"key" json:"key"`
	Name          string              `yaml:"name,omitempty" json:"name,omitempty"`
	Title         string              `yaml:"title,omitempty" json:"title,omitempty"`
	Description   string              `yaml:"description,omitempty" json:"description,omitempty"`
	ElementID     string              `yaml:"elementId" json:"elementId"`
	Relationships []YRelationshipView `yaml:"relationships,omitempty" json:"relationships,omitempty"`
}

func ParseYAML(path string) (*YWorkspace, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseYAMLBytes(b)
}

func ParseYAMLBytes(b []byte) (*YWorkspace, error) {
	var w YWorkspace
	if err := yaml.Unmarshal(b, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func ParseYAMLString(s string) (*YWorkspace, error) {
	return ParseYAMLBytes([]byte(s))
}

// ParseFile picks the decoder from the file extension.
func ParseFile(path string) (*YWorkspace, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(path)
	case ".json":
		return ParseJSON(path)
	}
	return nil, fmt.Errorf("unsupported workspace file %q (want .yaml, .yml or .json)", path)
}
