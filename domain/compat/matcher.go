package compat

import (
	"layerit/domain/product"
)

const (
	MessageSafe    = "These products are safe to use together!"
	MessageCaution = "Use with caution. Consider separating AM/PM."
	MessageDanger  = "Do not use these products together."
)

// Result is the outcome of comparing two products. It is derived and never stored.
type Result struct {
	Verdict   Severity       `json:"verdict"`
	Conflicts []ConflictRule `json:"conflicts"`
	Message   string         `json:"message"`
}

// Matcher compares ingredient lists against a fixed rule table.
type Matcher struct {
	rules []ConflictRule
}

// NewMatcher builds a matcher over rules. With no rules it uses DefaultRules.
func NewMatcher(rules ...ConflictRule) *Matcher {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	normalized := make([]ConflictRule, len(rules))
	for i, r := range rules {
		r.IngredientA = normalize(r.IngredientA)
		r.IngredientB = normalize(r.IngredientB)
		normalized[i] = r
	}
	return &Matcher{rules: normalized}
}

var defaultMatcher = NewMatcher()

// Check compares a and b with the built-in rules.
func Check(a, b product.Product) Result {
	return defaultMatcher.Check(a, b)
}

// Rules returns a copy of the matcher's rule table.
func (m *Matcher) Rules() []ConflictRule {
	out := make([]ConflictRule, len(m.rules))
	copy(out, m.rules)
	return out
}

// Check tests every ingredient of a against every ingredient of b. A rule is
// collected once per matching ingredient pair, so duplicated ingredients
// produce duplicated conflicts.
func (m *Matcher) Check(a, b product.Product) Result {
	var conflicts []ConflictRule
	for _, ingA := range a.Ingredients() {
		la := normalize(ingA)
		for _, ingB := range b.Ingredients() {
			lb := normalize(ingB)
			for _, rule := range m.rules {
				if rule.Matches(la, lb) {
					conflicts = append(conflicts, rule)
				}
			}
		}
	}
	return verdictFor(conflicts)
}

func verdictFor(conflicts []ConflictRule) Result {
	if len(conflicts) == 0 {
		return safeResult()
	}

	worst := Safe
	for _, c := range conflicts {
		worst = worst.Worse(c.Severity)
	}

	switch worst {
	case Danger:
		return Result{Verdict: Danger, Conflicts: conflicts, Message: MessageDanger}
	case Caution:
		return Result{Verdict: Caution, Conflicts: conflicts, Message: MessageCaution}
	default:
		// only safe-severity rules matched
		return safeResult()
	}
}

func safeResult() Result {
	return Result{Verdict: Safe, Conflicts: []ConflictRule{}, Message: MessageSafe}
}
