package validator

import (
	"testing"

	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/c4test"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckReferences_Clean(t *testing.T) {
	assert.Empty(t, CheckReferences(c4test.BigBank(t)))
	assert.Empty(t, CheckReferences(c4test.Minimal(t)))
}

func TestCheckReferences_Dangling(t *testing.T) {
	ws := c4test.Load(t, `
model:
  softwareSystems:
    - id: "1"
      name: S
views:
  systemLandscapeViews:
    - key: L
      elements:
        - id: "1"
        - id: "2"
  containerViews:
    - key: C
      softwareSystemId: "9"
      relationships:
        - id: "5"
  componentViews:
    - key: K
      containerId: "1"
  dynamicViews:
    - key: D
      elementId: "8"
      relationships:
        - id: "6"
          order: "1"
`)

	errs := CheckReferences(ws)
	require.Len(t, errs, 5)
	for _, err := range errs {
		assert.ErrorIs(t, err, domain.ErrDanglingReference)
	}

	var first *domain.DanglingReferenceError
	require.ErrorAs(t, errs[0], &first)
	assert.Equal(t, domain.DanglingReferenceError{View: "L", Field: "element", Target: "2"}, *first)
	assert.EqualError(t, errs[4], `view "D": relationship "6" does not exist`)
}
