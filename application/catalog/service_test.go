package catalog

import (
	"context"
	"errors"
	"testing"

	"layerit/domain/product"
	"layerit/domain/quiz"
	"layerit/domain/shared"
	infracatalog "layerit/infrastructure/catalog"
	"layerit/infrastructure/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *ApplicationService {
	t.Helper()
	products, err := infracatalog.Load("")
	require.NoError(t, err)
	repo, err := memory.NewProductRepository(products)
	require.NoError(t, err)
	return NewApplicationService(repo, nil)
}

func TestListProductsFilters(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	all, err := svc.ListProducts(ctx, ListProductsQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 10)

	withRetinol, err := svc.ListProducts(ctx, ListProductsQuery{Ingredient: "Retinol"})
	require.NoError(t, err)
	require.Len(t, withRetinol, 1)
	assert.Equal(t, 1, withRetinol[0].ID)

	oilyCitrine, err := svc.ListProducts(ctx, ListProductsQuery{SkinType: "oily", Brand: "citrine"})
	require.NoError(t, err)
	ids := make([]int, len(oilyCitrine))
	for i, p := range oilyCitrine {
		ids[i] = p.ID
	}
	assert.Equal(t, []int{2, 6}, ids)

	_, err = svc.ListProducts(ctx, ListProductsQuery{SkinType: "greasy"})
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))
}

func TestGetProductKeyIngredients(t *testing.T) {
	svc := newService(t)

	p, err := svc.GetProduct(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"peptides", "ceramides", "shea butter", "squalane"}, p.KeyIngredients)
	assert.True(t, p.HasMoreIngredients)

	_, err = svc.GetProduct(context.Background(), 404)
	assert.True(t, errors.Is(err, product.ErrProductNotFound))
}

func TestCheckCompatibility(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	res, err := svc.CheckCompatibility(ctx, CompatibilityRequest{ProductA: 1, ProductB: 5})
	require.NoError(t, err)
	assert.Equal(t, "danger", res.Verdict)
	assert.Equal(t, "Do not use these products together.", res.Message)
	require.NotNil(t, res.ProductA)
	assert.Equal(t, 1, res.ProductA.ID)

	res, err = svc.CheckCompatibility(ctx, CompatibilityRequest{ProductA: 7, ProductB: 9})
	require.NoError(t, err)
	assert.Equal(t, "safe", res.Verdict)
	assert.NotNil(t, res.Conflicts)
	assert.Empty(t, res.Conflicts)

	_, err = svc.CheckCompatibility(ctx, CompatibilityRequest{ProductA: 1, ProductB: 99})
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestQuestionsAndRules(t *testing.T) {
	svc := newService(t)
	questions := svc.Questions()
	require.Len(t, questions, quiz.Len())
	assert.Equal(t, 0, questions[0].Index)
	assert.Len(t, questions[0].Options, 5)
	assert.Len(t, svc.ConflictRules(), 9)
}

func TestScoreQuiz(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	res, err := svc.ScoreQuiz(ctx, ScoreRequest{Answers: []string{"dry", "dry", "oily", "Dry", "normal"}})
	require.NoError(t, err)
	assert.Equal(t, "dry", res.SkinType)
	assert.Equal(t, 3, res.Tally["dry"])
	assert.Len(t, res.RecommendedRoutine, 4)

	res, err = svc.ScoreQuiz(ctx, ScoreRequest{Answers: []string{"oily", "Sensitive"}})
	require.NoError(t, err)
	assert.Equal(t, "oily", res.SkinType)
	assert.Equal(t, 1, res.Tally["sensitive"])

	res, err = svc.ScoreQuiz(ctx, ScoreRequest{})
	require.NoError(t, err)
	assert.Equal(t, "normal", res.SkinType)
	assert.Empty(t, res.Tally)

	_, err = svc.ScoreQuiz(ctx, ScoreRequest{Answers: []string{"dry", "dry", "dry", "dry", "dry", "dry"}})
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))

	_, err = svc.ScoreQuiz(ctx, ScoreRequest{Answers: []string{"dry", "dry", "oily", "dry", "greasy"}})
	assert.True(t, errors.Is(err, quiz.ErrInvalidAnswer))
}

func TestRecommendedRoutine(t *testing.T) {
	svc := newService(t)
	res, err := svc.RecommendedRoutine(context.Background(), "sensitive")
	require.NoError(t, err)
	assert.Equal(t, "Fragrance-free cleanser", res.RecommendedRoutine[0])

	_, err = svc.RecommendedRoutine(context.Background(), "greasy")
	assert.Error(t, err)
}
