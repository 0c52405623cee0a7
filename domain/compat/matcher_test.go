package compat

import (
	"testing"

	"layerit/domain/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, id int, ingredients ...string) product.Product {
	t.Helper()
	p, err := product.NewProduct(id, "product", "brand", "", ingredients, nil)
	require.NoError(t, err)
	return p
}

func TestCheckSafeWhenNoRuleMatches(t *testing.T) {
	a := newProduct(t, 1, "hyaluronic acid", "glycerin")
	b := newProduct(t, 2, "ceramides", "squalane")

	res := Check(a, b)
	assert.Equal(t, Safe, res.Verdict)
	assert.Empty(t, res.Conflicts)
	assert.NotNil(t, res.Conflicts)
	assert.Equal(t, MessageSafe, res.Message)
}

func TestCheckDangerDominatesCaution(t *testing.T) {
	a := newProduct(t, 1, "retinol")
	b := newProduct(t, 2, "vitamin c", "benzoyl peroxide")

	res := Check(a, b)
	assert.Equal(t, Danger, res.Verdict)
	assert.Equal(t, MessageDanger, res.Message)
	require.Len(t, res.Conflicts, 2)
	assert.Equal(t, Caution, res.Conflicts[0].Severity)
	assert.Equal(t, Danger, res.Conflicts[1].Severity)
}

func TestCheckCautionOnly(t *testing.T) {
	res := Check(newProduct(t, 1, "retinol"), newProduct(t, 2, "vitamin c"))
	assert.Equal(t, Caution, res.Verdict)
	assert.Equal(t, MessageCaution, res.Message)
	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, "retinol", res.Conflicts[0].IngredientA)
	assert.Equal(t, "vitamin c", res.Conflicts[0].IngredientB)
}

func TestCheckIsCaseInsensitive(t *testing.T) {
	res := Check(newProduct(t, 1, "Retinol"), newProduct(t, 2, "BENZOYL PEROXIDE"))
	assert.Equal(t, Danger, res.Verdict)
}

func TestCheckMatchesEitherOrder(t *testing.T) {
	forward := Check(newProduct(t, 1, "niacinamide"), newProduct(t, 2, "vitamin c"))
	backward := Check(newProduct(t, 2, "vitamin c"), newProduct(t, 1, "niacinamide"))
	assert.Equal(t, Caution, forward.Verdict)
	assert.Equal(t, forward, backward)
}

func TestCheckDoesNotMatchWithinOneProduct(t *testing.T) {
	res := Check(newProduct(t, 1, "retinol", "aha"), newProduct(t, 2, "water"))
	assert.Equal(t, Safe, res.Verdict)
}

func TestCheckRequiresExactIngredientName(t *testing.T) {
	res := Check(newProduct(t, 1, "retinol palmitate"), newProduct(t, 2, "aha"))
	assert.Equal(t, Safe, res.Verdict)
}

func TestMatcherWithSafeOnlyRuleYieldsSafe(t *testing.T) {
	m := NewMatcher(ConflictRule{IngredientA: "Water", IngredientB: "glycerin", Severity: Safe})
	res := m.Check(newProduct(t, 1, "water"), newProduct(t, 2, "glycerin"))
	assert.Equal(t, Safe, res.Verdict)
	assert.Empty(t, res.Conflicts)
}

func TestDefaultRulesAreCopied(t *testing.T) {
	rules := DefaultRules()
	require.Len(t, rules, 9)
	rules[0].Severity = Danger
	assert.Equal(t, Caution, DefaultRules()[0].Severity)
}

func TestCheckAll(t *testing.T) {
	products := []product.Product{
		newProduct(t, 1, "retinol"),
		newProduct(t, 2, "peptides"),
		newProduct(t, 3, "glycerin"),
	}

	report := CheckAll(products)
	require.Len(t, report.Pairs, 3)
	assert.Equal(t, Caution, report.Verdict)

	conflicting := report.Conflicting()
	require.Len(t, conflicting, 1)
	assert.Equal(t, 1, conflicting[0].ProductA.ID())
	assert.Equal(t, 2, conflicting[0].ProductB.ID())

	empty := CheckAll(nil)
	assert.Equal(t, Safe, empty.Verdict)
	assert.Empty(t, empty.Pairs)
}
