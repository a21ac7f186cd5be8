package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/lina-design/storefront/internal/catalog/domain"
)

var (
	sofa = catalog.Product{ID: "103", Name: "Sofá Retrátil", Price: 2599}
	vase = catalog.Product{ID: "105", Name: "Vaso Cerâmica", Price: 89.90}
)

func TestToggleAdds(t *testing.T) {
	list := Toggle(nil, sofa)

	require.Len(t, list, 1)
	assert.True(t, Contains(list, "103"))
}

func TestToggleRemoves(t *testing.T) {
	list := Toggle(nil, sofa)
	list = Toggle(list, vase)

	list = Toggle(list, sofa)

	require.Len(t, list, 1)
	assert.False(t, Contains(list, "103"))
	assert.True(t, Contains(list, "105"))
}

func TestTogglePairIsIdentity(t *testing.T) {
	original := Toggle(nil, vase)

	list := Toggle(original, sofa)
	list = Toggle(list, sofa)

	assert.Equal(t, original, list)
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	original := Toggle(nil, sofa)

	Toggle(original, sofa)

	require.Len(t, original, 1)
	assert.Equal(t, "103", original[0].ID)
}
