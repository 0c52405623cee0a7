package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"layerit/domain/product"
	"layerit/domain/shared"
	"layerit/domain/skin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T, id int, brand string, ingredients []string, types ...skin.Type) product.Product {
	t.Helper()
	p, err := product.NewProduct(id, "product", brand, "", ingredients, types)
	require.NoError(t, err)
	return p
}

func newRepo(t *testing.T) *ProductRepository {
	t.Helper()
	repo, err := NewProductRepository([]product.Product{
		mustProduct(t, 3, "Acme", []string{"retinol", "peptides"}, skin.Dry, skin.Normal),
		mustProduct(t, 1, "Glow", []string{"vitamin c"}, skin.Oily),
		mustProduct(t, 2, "acme", []string{"niacinamide"}, skin.Oily, skin.Combination),
	})
	require.NoError(t, err)
	return repo
}

func TestProductRepositoryKeepsDatasetOrder(t *testing.T) {
	repo := newRepo(t)
	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{list[0].ID(), list[1].ID(), list[2].ID()})
	assert.Equal(t, 3, repo.Count())
}

func TestProductRepositoryFindByID(t *testing.T) {
	repo := newRepo(t)
	p, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Glow", p.Brand())

	_, err = repo.FindByID(context.Background(), 99)
	assert.True(t, errors.Is(err, product.ErrProductNotFound))
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestProductRepositoryRejectsDuplicateIDs(t *testing.T) {
	_, err := NewProductRepository([]product.Product{
		mustProduct(t, 1, "A", nil),
		mustProduct(t, 1, "B", nil),
	})
	assert.True(t, errors.Is(err, product.ErrDuplicateID))
}

func TestProductRepositoryFindBySpecification(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	oily, err := repo.FindBySpecification(ctx, product.NewBySkinTypeSpecification(skin.Oily))
	require.NoError(t, err)
	assert.Len(t, oily, 2)

	spec := shared.All(
		product.NewByBrandSpecification("ACME"),
		product.NewBySkinTypeSpecification(skin.Oily),
	)
	res, err := repo.FindBySpecification(ctx, spec)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, 2, res[0].ID())

	all, err := repo.FindBySpecification(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestResolveSkipsUnknownIDs(t *testing.T) {
	repo := newRepo(t)
	products, missing, err := product.Resolve(context.Background(), repo, []int{2, 42, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{42}, missing)
	require.Len(t, products, 2)
	assert.Equal(t, 2, products[0].ID())
	assert.Equal(t, 3, products[1].ID())
}

func TestKVStore(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore()

	_, ok, err := s.Get(ctx, "layerit_routine")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "layerit_routine", "[1]"))
	v, ok, err := s.Get(ctx, "layerit_routine")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[1]", v)

	require.NoError(t, s.Delete(ctx, "layerit_routine"))
	_, ok, _ = s.Get(ctx, "layerit_routine")
	assert.False(t, ok)
}

func TestKVStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Set(ctx, "k", "v")
			_, _, _ = s.Get(ctx, "k")
		}()
	}
	wg.Wait()
	v, ok, _ := s.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
