package export

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/domain"
)

var rankDirs = map[string]string{
	"TopBottom": "TB",
	"BottomTop": "BT",
	"LeftRight": "LR",
	"RightLeft": "RL",
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func label(name string, technologies []string) string {
	if len(technologies) == 0 {
		return quote(name)
	}
	return quote(name) + `\n[` + quote(strings.Join(technologies, ", ")) + `]`
}

func nodeStyle(e domain.ElementSummary) string {
	switch {
	case e.Tags.Contains("Person"):
		return `shape=ellipse,style="filled",fillcolor="#08427b",fontcolor="#ffffff"`
	case e.Tags.Contains("Database"):
		return `shape=cylinder,style="filled",fillcolor="#fff3cd"`
	case e.Tags.Contains("Existing System"):
		return `shape=box,style="rounded,filled",fillcolor="#999999",fontcolor="#ffffff"`
	}
	return `shape=box,style="rounded,filled",fillcolor="#eef6ff"`
}

// ToDOT renders a projected diagram as Graphviz. Elements flagged as
// children of the view's anchor are drawn inside one cluster.
func ToDOT(d *domain.Diagram) string {
	var b strings.Builder

	rankdir := "TB"
	if d.Layout != nil {
		if rd, ok := rankDirs[d.Layout.Direction]; ok {
			rankdir = rd
		}
	}
	b.WriteString("digraph G {\n")
	b.WriteString(fmt.Sprintf("  rankdir=%s;\n  node [fontname=\"Helvetica\"];\n", rankdir))
	if d.Layout != nil {
		b.WriteString(fmt.Sprintf("  ranksep=%.2f; nodesep=%.2f;\n",
			float64(d.Layout.RankSeparation)/100, float64(d.Layout.NodeSeparation)/100))
	}

	title := d.Title
	if title == "" {
		title = d.Name
	}
	if title != "" {
		b.WriteString(fmt.Sprintf(`  labelloc="t"; label="%s";`, quote(title)))
		b.WriteString("\n")
	}

	var children, others []domain.ElementSummary
	for _, e := range d.Elements {
		if e.IsChild {
			children = append(children, e)
		} else {
			others = append(others, e)
		}
	}

	writeNode := func(indent string, e domain.ElementSummary) {
		b.WriteString(fmt.Sprintf(`%s"%s" [label="%s", %s`, indent, quote(e.ID), label(e.Name, e.Technologies), nodeStyle(e)))
		if e.ViewURL != "" {
			b.WriteString(fmt.Sprintf(`, URL="%s"`, quote(e.ViewURL)))
		}
		b.WriteString("];\n")
	}

	if len(children) > 0 {
		b.WriteString("  subgraph cluster_anchor {\n    style=dashed;\n")
		for _, e := range children {
			writeNode("    ", e)
		}
		b.WriteString("  }\n")
	}
	for _, e := range others {
		writeNode("  ", e)
	}

	for _, r := range d.Relationships {
		b.WriteString(fmt.Sprintf(`  "%s" -> "%s" [label="%s", tooltip="%s"];`+"\n",
			quote(r.SourceID), quote(r.DestinationID), label(r.Description, r.Technologies), quote(r.ID)))
	}

	b.WriteString("}\n")
	return b.String()
}
