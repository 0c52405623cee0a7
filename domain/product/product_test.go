package product

import (
	"context"
	"errors"
	"testing"

	"layerit/domain/shared"
	"layerit/domain/skin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T, id int, name string, ingredients []string, types ...skin.Type) Product {
	t.Helper()
	p, err := NewProduct(id, name, "Brand", "", ingredients, types)
	require.NoError(t, err)
	return p
}

func TestNewProductValidation(t *testing.T) {
	_, err := NewProduct(0, "x", "", "", nil, nil)
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))

	_, err = NewProduct(1, "  ", "", "", nil, nil)
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))

	_, err = NewProduct(1, "x", "", "", nil, []skin.Type{"greasy"})
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))
}

func TestProductIsImmutable(t *testing.T) {
	ingredients := []string{"retinol", "squalane"}
	p := mustProduct(t, 1, "Night Serum", ingredients, skin.Normal)

	ingredients[0] = "changed"
	assert.Equal(t, "retinol", p.Ingredients()[0])

	got := p.Ingredients()
	got[0] = "changed"
	assert.Equal(t, "retinol", p.Ingredients()[0])
}

func TestKeyIngredients(t *testing.T) {
	short := mustProduct(t, 1, "a", []string{"a", "b"})
	keys, more := short.KeyIngredients()
	assert.Equal(t, []string{"a", "b"}, keys)
	assert.False(t, more)

	long := mustProduct(t, 2, "b", []string{"a", "b", "c", "d", "e"})
	keys, more = long.KeyIngredients()
	assert.Equal(t, []string{"a", "b", "c", "d"}, keys)
	assert.True(t, more)
}

func TestSpecifications(t *testing.T) {
	ctx := context.Background()
	p := mustProduct(t, 1, "Serum", []string{"Vitamin C", "ferulic acid"}, skin.Dry, skin.Normal)

	assert.True(t, NewContainsIngredientSpecification("vitamin c").IsSatisfiedBy(ctx, p))
	assert.True(t, NewBySkinTypeSpecification(skin.Dry).IsSatisfiedBy(ctx, p))
	assert.False(t, NewBySkinTypeSpecification(skin.Oily).IsSatisfiedBy(ctx, p))
	assert.True(t, NewByBrandSpecification("brand").IsSatisfiedBy(ctx, p))

	spec := shared.And(NewBySkinTypeSpecification(skin.Dry), shared.Not(NewContainsIngredientSpecification("retinol")))
	assert.True(t, spec.IsSatisfiedBy(ctx, p))

	either := shared.Or(NewBySkinTypeSpecification(skin.Oily), NewContainsIngredientSpecification("ferulic acid"))
	assert.True(t, either.IsSatisfiedBy(ctx, p))
	assert.Nil(t, shared.All[Product]())
}

func TestNotFoundErrorClassification(t *testing.T) {
	err := NewProductNotFoundError(42)
	assert.True(t, errors.Is(err, ErrProductNotFound))
	assert.True(t, shared.IsNotFound(err))
	assert.Contains(t, err.Error(), "42")

	var stacker shared.Stacker
	require.True(t, errors.As(err, &stacker))
	assert.NotEmpty(t, stacker.Stack())
}
