package service

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/c4test"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/domain"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func project(t *testing.T, ws *domain.Workspace, kind domain.ViewKind, key string) *domain.Diagram {
	t.Helper()
	ix := index.Build(ws, "")
	d, err := Project(ws, ix, kind, ix.LinksFor(kind), key)
	require.NoError(t, err)
	return d
}

func TestProject_MinimalContext(t *testing.T) {
	d := project(t, c4test.Minimal(t), domain.ViewContext, "ctx1")

	assert.Equal(t, "ctx1", d.ID)
	assert.Equal(t, "S - System Context", d.Name)
	assert.Nil(t, d.Layout)
	assert.Nil(t, d.DynamicViews)

	assert.Equal(t, []domain.ElementSummary{
		{ID: "2", Name: "A", IsChild: true, Technologies: []string{"Java", "Spring"}, Tags: domain.TagSet{"Element", "Container"}},
		{ID: "3", Name: "B", IsChild: true, Technologies: []string{"Go"}, Tags: domain.TagSet{"Element", "Container"}},
	}, d.Elements)

	assert.Equal(t, []domain.RelationshipSummary{
		{ID: "4", SourceID: "2", DestinationID: "3", Description: "calls", Technologies: []string{"HTTP"}, Tags: domain.TagSet{"Relationship"}},
	}, d.Relationships)
}

func TestProject_Landscape(t *testing.T) {
	d := project(t, c4test.BigBank(t), domain.ViewLandscape, "SystemLandscape")

	require.Len(t, d.Elements, 4)
	for _, e := range d.Elements {
		assert.False(t, e.IsChild, e.ID)
	}
	assert.Nil(t, d.DynamicViews)

	require.NotNil(t, d.Layout)
	assert.Equal(t, domain.Layout{Direction: "TopBottom", RankSeparation: 300, NodeSeparation: 300}, *d.Layout)

	// landscape elements link to their context views
	assert.Equal(t, "/context/SystemContext", d.Elements[1].ViewURL)
	assert.Empty(t, d.Elements[2].ViewURL)

	// persons and software systems declare no technology
	assert.Nil(t, d.Elements[0].Technologies)
	assert.Nil(t, d.Elements[1].Technologies)
}

func TestProject_Context(t *testing.T) {
	d := project(t, c4test.BigBank(t), domain.ViewContext, "SystemContext")

	assert.Equal(t, "Internet Banking System - System Context", d.Name)
	for _, e := range d.Elements {
		assert.False(t, e.IsChild, e.ID)
	}
	assert.Equal(t, "/container/Containers", d.Elements[1].ViewURL)
	assert.Contains(t, d.DynamicViews, "Payments")
}

func TestProject_Container(t *testing.T) {
	d := project(t, c4test.BigBank(t), domain.ViewContainer, "Containers")

	children := map[string]bool{}
	for _, e := range d.Elements {
		children[e.ID] = e.IsChild
	}
	assert.Equal(t, map[string]bool{"10": false, "2": true, "3": true, "4": true, "7": false}, children)

	api := d.Elements[2]
	assert.Equal(t, "3", api.ID)
	assert.Equal(t, []string{"Java", "Spring MVC"}, api.Technologies)
	assert.Equal(t, "/component/Components", api.ViewURL)

	assert.Equal(t, "24", d.Relationships[1].ID)
	assert.Equal(t, []string{"JSON", "HTTPS"}, d.Relationships[1].Technologies)

	require.Contains(t, d.DynamicViews, "Payments")
	assert.Equal(t, map[string]string{"1": "24", "2": "26"}, d.DynamicViews["Payments"].Steps)
	assert.Equal(t, "Containers of the Internet Banking System", d.Title)
}

func TestProject_Component(t *testing.T) {
	d := project(t, c4test.BigBank(t), domain.ViewComponent, "Components")

	children := map[string]bool{}
	for _, e := range d.Elements {
		children[e.ID] = e.IsChild
		assert.Empty(t, e.ViewURL)
	}
	assert.Equal(t, map[string]bool{"2": false, "5": true, "6": true, "4": false}, children)
	assert.Contains(t, d.DynamicViews, "SignIn")
	assert.NotContains(t, d.DynamicViews, "Payments")
}

func TestProject_Errors(t *testing.T) {
	ws := c4test.BigBank(t)
	ix := index.Build(ws, "")

	t.Run("unknown key", func(t *testing.T) {
		for _, kind := range domain.StaticViewKinds {
			d, err := Project(ws, ix, kind, ix.LinksFor(kind), "nope")
			assert.Nil(t, d)
			assert.ErrorIs(t, err, domain.ErrViewNotFound)

			var nf *domain.ViewNotFoundError
			require.ErrorAs(t, err, &nf)
			assert.Equal(t, kind, nf.Kind)
			assert.Equal(t, "nope", nf.Key)
		}
	})

	t.Run("key of another kind", func(t *testing.T) {
		_, err := Project(ws, ix, domain.ViewContext, ix.LinksFor(domain.ViewContext), "Containers")
		assert.ErrorIs(t, err, domain.ErrViewNotFound)
	})

	t.Run("non-static kind", func(t *testing.T) {
		_, err := Project(ws, ix, domain.ViewDynamic, nil, "SignIn")
		assert.ErrorIs(t, err, domain.ErrUnknownViewKind)
	})
}

func TestProject_DanglingReferences(t *testing.T) {
	ws := c4test.Load(t, `
model:
  softwareSystems:
    - id: "1"
      name: S
views:
  systemLandscapeViews:
    - key: missingElement
      elements:
        - id: "1"
        - id: "99"
    - key: missingRelationship
      relationships:
        - id: "98"
  systemContextViews:
    - key: missingAnchor
      softwareSystemId: "97"
`)
	ix := index.Build(ws, "")

	for _, tc := range []struct {
		kind domain.ViewKind
		key  string
	}{
		{domain.ViewLandscape, "missingElement"},
		{domain.ViewLandscape, "missingRelationship"},
		{domain.ViewContext, "missingAnchor"},
	} {
		t.Run(tc.key, func(t *testing.T) {
			d, err := Project(ws, ix, tc.kind, ix.LinksFor(tc.kind), tc.key)
			assert.Nil(t, d)
			assert.ErrorIs(t, err, domain.ErrDanglingReference)
		})
	}
}

// Following any viewUrl of any diagram must land on an existing view.
func TestProject_ViewURLsRoundTrip(t *testing.T) {
	ws := c4test.BigBank(t)
	ix := index.Build(ws, "")

	for _, kind := range domain.StaticViewKinds {
		for _, summary := range Summaries(ws, kind) {
			d, err := Project(ws, ix, kind, ix.LinksFor(kind), summary.ID)
			require.NoError(t, err)

			for _, e := range d.Elements {
				if e.ViewURL == "" {
					continue
				}
				parts := strings.Split(strings.TrimPrefix(e.ViewURL, "/"), "/")
				require.Len(t, parts, 2)
				target, ok := domain.ParseViewKind(parts[0])
				require.True(t, ok)

				_, err := Project(ws, ix, target, ix.LinksFor(target), parts[1])
				assert.NoError(t, err, "following %s from %s/%s", e.ViewURL, kind, summary.ID)
			}
		}
	}
}

func TestProject_StableJSON(t *testing.T) {
	ws := c4test.BigBank(t)

	first, err := json.Marshal(project(t, ws, domain.ViewContainer, "Containers"))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := json.Marshal(project(t, ws, domain.ViewContainer, "Containers"))
		require.NoError(t, err)
		assert.JSONEq(t, string(first), string(again))
		assert.Equal(t, string(first), string(again))
	}

	assert.Contains(t, string(first), `"isChild":true`)
	assert.NotContains(t, string(first), `"viewUrl":""`)
}

func TestProject_ResultDoesNotAliasWorkspace(t *testing.T) {
	ws := c4test.BigBank(t)
	ix := index.Build(ws, "")

	d, err := Project(ws, ix, domain.ViewContainer, ix.LinksFor(domain.ViewContainer), "Containers")
	require.NoError(t, err)

	d.DynamicViews["Injected"] = domain.DynamicViewSummary{ID: "Injected"}
	d.DynamicViews["Payments"].Steps["1"] = "999"
	d.Elements[2].Tags[0] = "MUTATED"
	d.Relationships[0].Tags[0] = "MUTATED"

	assert.NotContains(t, ix.DynamicViews("1"), "Injected")
	assert.Equal(t, "24", ix.DynamicViews("1")["Payments"].Steps["1"])

	api, ok := ws.Element("3")
	require.True(t, ok)
	assert.Equal(t, domain.TagSet{"Element", "Container"}, api.Tags)

	again, err := Project(ws, ix, domain.ViewContainer, ix.LinksFor(domain.ViewContainer), "Containers")
	require.NoError(t, err)
	assert.Equal(t, "Element", again.Elements[2].Tags[0])
	assert.Equal(t, "Relationship", again.Relationships[0].Tags[0])
	assert.NotContains(t, again.DynamicViews, "Injected")
}
