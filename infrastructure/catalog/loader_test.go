package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"layerit/domain/compat"
	"layerit/domain/product"
	"layerit/domain/skin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedDataset(t *testing.T) {
	products, err := Load("")
	require.NoError(t, err)
	require.Len(t, products, 10)

	first := products[0]
	assert.Equal(t, 1, first.ID())
	assert.Equal(t, "Retinol Renewal Serum", first.Name())
	assert.True(t, first.HasIngredient("retinol"))
	assert.True(t, first.SuitsSkinType(skin.Dry))

	for i, p := range products {
		assert.Equal(t, i+1, p.ID(), "dataset order is preserved")
	}
}

func TestEmbeddedDatasetCoversEveryVerdict(t *testing.T) {
	products, err := Load("")
	require.NoError(t, err)
	byID := make(map[int]product.Product)
	for _, p := range products {
		byID[p.ID()] = p
	}

	assert.Equal(t, compat.Danger, compat.Check(byID[1], byID[5]).Verdict)
	assert.Equal(t, compat.Caution, compat.Check(byID[1], byID[2]).Verdict)
	assert.Equal(t, compat.Safe, compat.Check(byID[7], byID[9]).Verdict)
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
products:
  - id: 7
    name: Only One
    brand: Solo
    ingredients: [niacinamide]
    skin_types: [oily]
`), 0o644))

	products, err := Load(path)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "", products[0].Description())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidCatalog))
}

func TestParseRejectsMalformedDatasets(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing products", "items: []\n"},
		{"zero id", "products:\n  - {id: 0, name: A, brand: B, ingredients: [], skin_types: []}\n"},
		{"missing name", "products:\n  - {id: 1, brand: B, ingredients: [], skin_types: []}\n"},
		{"ingredients not list", "products:\n  - {id: 1, name: A, brand: B, ingredients: retinol, skin_types: []}\n"},
		{"unknown skin type", "products:\n  - {id: 1, name: A, brand: B, ingredients: [], skin_types: [greasy]}\n"},
		{"string id", "products:\n  - {id: one, name: A, brand: B, ingredients: [], skin_types: []}\n"},
		{"unknown field", "products:\n  - {id: 1, name: A, brand: B, ingredients: [], skin_types: [], price: 3}\n"},
		{"not yaml", "products: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCatalog), "got %v", err)
		})
	}
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	_, err := Parse([]byte(`
products:
  - {id: 1, name: A, brand: B, ingredients: [], skin_types: []}
  - {id: 1, name: C, brand: D, ingredients: [], skin_types: []}
`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCatalog))
	assert.True(t, errors.Is(err, product.ErrDuplicateID))
}

func TestDefaultDatasetIsCopied(t *testing.T) {
	data := DefaultDataset()
	data[0] = 'X'
	assert.NotEqual(t, data[0], DefaultDataset()[0])
}
