package export

import (
	"strings"
	"testing"

	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/domain"
	"github.com/stretchr/testify/assert"
)

func sampleDiagram() *domain.Diagram {
	return &domain.Diagram{
		ID:    "Containers",
		Name:  "Internet Banking System - Containers",
		Title: `Containers of the "Internet Banking" System`,
		Layout: &domain.Layout{
			Direction:      "LeftRight",
			RankSeparation: 200,
			NodeSeparation: 100,
		},
		Elements: []domain.ElementSummary{
			{ID: "10", Name: "Customer", Tags: domain.TagSet{"Element", "Person"}},
			{ID: "3", Name: "API Application", IsChild: true, ViewURL: "/component/Components",
				Technologies: []string{"Java", "Spring MVC"}, Tags: domain.TagSet{"Element", "Container"}},
			{ID: "4", Name: "Database", IsChild: true, Tags: domain.TagSet{"Element", "Container", "Database"}},
			{ID: "7", Name: "Mainframe", Tags: domain.TagSet{"Element", "Existing System"}},
		},
		Relationships: []domain.RelationshipSummary{
			{ID: "25", SourceID: "3", DestinationID: "4", Description: "Reads from", Technologies: []string{"JDBC"}},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sampleDiagram())

	assert.True(t, strings.HasPrefix(dot, "digraph G {\n"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, "rankdir=LR;")
	assert.Contains(t, dot, "ranksep=2.00; nodesep=1.00;")
	assert.Contains(t, dot, `label="Containers of the \"Internet Banking\" System";`)

	assert.Contains(t, dot, `"10" [label="Customer", shape=ellipse`)
	assert.Contains(t, dot, `shape=cylinder`)
	assert.Contains(t, dot, `fillcolor="#999999"`)
	assert.Contains(t, dot, `label="API Application\n[Java, Spring MVC]"`)
	assert.Contains(t, dot, `URL="/component/Components"`)
	assert.Contains(t, dot, `"3" -> "4" [label="Reads from\n[JDBC]", tooltip="25"];`)
}

func TestToDOT_ChildrenClustered(t *testing.T) {
	dot := ToDOT(sampleDiagram())

	start := strings.Index(dot, "subgraph cluster_anchor {")
	end := strings.Index(dot[start:], "  }\n") + start
	cluster := dot[start:end]

	assert.Contains(t, cluster, `"3" [`)
	assert.Contains(t, cluster, `"4" [`)
	assert.NotContains(t, cluster, `"10" [`)
	assert.NotContains(t, cluster, `"7" [`)
}

func TestToDOT_Defaults(t *testing.T) {
	dot := ToDOT(&domain.Diagram{
		ID:   "L",
		Name: "System Landscape",
		Elements: []domain.ElementSummary{
			{ID: "1", Name: "S"},
		},
	})

	assert.Contains(t, dot, "rankdir=TB;")
	assert.NotContains(t, dot, "ranksep")
	assert.NotContains(t, dot, "cluster_anchor")
	assert.Contains(t, dot, `label="System Landscape";`)
	assert.Contains(t, dot, `"1" [label="S", shape=box`)
}
