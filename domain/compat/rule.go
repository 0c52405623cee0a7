// Package compat implements the ingredient-conflict matcher.
package compat

import "strings"

// Severity is both a rule severity and an overall verdict.
type Severity string

const (
	Safe    Severity = "safe"
	Caution Severity = "caution"
	Danger  Severity = "danger"
)

// rank orders severities so the worst one can be picked.
func (s Severity) rank() int {
	switch s {
	case Danger:
		return 2
	case Caution:
		return 1
	default:
		return 0
	}
}

// Worse returns the more severe of s and other.
func (s Severity) Worse(other Severity) Severity {
	if other.rank() > s.rank() {
		return other
	}
	return s
}

// ConflictRule declares that two ingredients used together warrant a warning.
// The pair is unordered.
type ConflictRule struct {
	IngredientA string   `json:"ingredient_a"`
	IngredientB string   `json:"ingredient_b"`
	Severity    Severity `json:"severity"`
	Explanation string   `json:"explanation"`
}

// Matches reports whether the (a, b) pair triggers the rule in either order.
// a and b must already be lower-cased.
func (r ConflictRule) Matches(a, b string) bool {
	return (a == r.IngredientA && b == r.IngredientB) ||
		(a == r.IngredientB && b == r.IngredientA)
}

var defaultRules = []ConflictRule{
	{
		IngredientA: "retinol",
		IngredientB: "vitamin c",
		Severity:    Caution,
		Explanation: "Retinol and Vitamin C can be irritating when used together. Use one in AM, one in PM.",
	},
	{
		IngredientA: "retinol",
		IngredientB: "aha",
		Severity:    Danger,
		Explanation: "Retinol and AHAs can cause severe irritation and damage the skin barrier. Do not use together.",
	},
	{
		IngredientA: "retinol",
		IngredientB: "bha",
		Severity:    Danger,
		Explanation: "Retinol and BHA can over-exfoliate and cause redness. Separate by at least 24 hours.",
	},
	{
		IngredientA: "retinol",
		IngredientB: "benzoyl peroxide",
		Severity:    Danger,
		Explanation: "Benzoyl peroxide can oxidize retinol, making both ingredients ineffective and irritating.",
	},
	{
		IngredientA: "vitamin c",
		IngredientB: "niacinamide",
		Severity:    Caution,
		Explanation: "Older formulations may cause flushing. Modern formulations are generally safe, but monitor for redness.",
	},
	{
		IngredientA: "vitamin c",
		IngredientB: "aha",
		Severity:    Caution,
		Explanation: "Both are acidic and may cause irritation. Use at different times of day if sensitive.",
	},
	{
		IngredientA: "aha",
		IngredientB: "bha",
		Severity:    Caution,
		Explanation: "Using multiple exfoliants together can over-exfoliate. Start slowly and monitor skin response.",
	},
	{
		IngredientA: "benzoyl peroxide",
		IngredientB: "vitamin c",
		Severity:    Danger,
		Explanation: "Benzoyl peroxide oxidizes Vitamin C, reducing effectiveness of both. Use separately.",
	},
	{
		IngredientA: "retinol",
		IngredientB: "peptides",
		Severity:    Caution,
		Explanation: "Retinol can break down peptides. Use peptides in AM and retinol in PM for best results.",
	},
}

// DefaultRules returns a copy of the built-in rule table.
func DefaultRules() []ConflictRule {
	out := make([]ConflictRule, len(defaultRules))
	copy(out, defaultRules)
	return out
}

func normalize(ingredient string) string {
	return strings.ToLower(ingredient)
}
