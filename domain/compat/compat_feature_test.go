package compat

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"layerit/domain/product"

	"github.com/cucumber/godog"
)

type compatTestContext struct {
	a, b   product.Product
	result Result
}

func (c *compatTestContext) reset() {
	*c = compatTestContext{}
}

func parseIngredients(list string) []string {
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (c *compatTestContext) productAWithIngredients(list string) error {
	p, err := product.NewProduct(1, "Product A", "Brand", "", parseIngredients(list), nil)
	c.a = p
	return err
}

func (c *compatTestContext) productBWithIngredients(list string) error {
	p, err := product.NewProduct(2, "Product B", "Brand", "", parseIngredients(list), nil)
	c.b = p
	return err
}

func (c *compatTestContext) iCheckTheirCompatibility() error {
	c.result = Check(c.a, c.b)
	return nil
}

func (c *compatTestContext) theVerdictIs(verdict string) error {
	if string(c.result.Verdict) != verdict {
		return fmt.Errorf("expected verdict %q, got %q", verdict, c.result.Verdict)
	}
	return nil
}

func (c *compatTestContext) thereAreConflicts(n int) error {
	if len(c.result.Conflicts) != n {
		return fmt.Errorf("expected %d conflicts, got %d", n, len(c.result.Conflicts))
	}
	return nil
}

func (c *compatTestContext) theMessageIs(msg string) error {
	if c.result.Message != msg {
		return fmt.Errorf("expected message %q, got %q", msg, c.result.Message)
	}
	return nil
}

func (c *compatTestContext) conflictIsBetween(idx int, a, b string) error {
	if idx < 1 || idx > len(c.result.Conflicts) {
		return fmt.Errorf("conflict %d out of range (%d conflicts)", idx, len(c.result.Conflicts))
	}
	rule := c.result.Conflicts[idx-1]
	if !rule.Matches(a, b) {
		return fmt.Errorf("conflict %d is %s + %s", idx, rule.IngredientA, rule.IngredientB)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &compatTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^product A with ingredients "([^"]*)"$`, tc.productAWithIngredients)
	ctx.Step(`^product B with ingredients "([^"]*)"$`, tc.productBWithIngredients)
	ctx.Step(`^I check their compatibility$`, tc.iCheckTheirCompatibility)
	ctx.Step(`^the verdict is "([^"]*)"$`, tc.theVerdictIs)
	ctx.Step(`^there are (\d+) conflicts$`, tc.thereAreConflicts)
	ctx.Step(`^the message is "([^"]*)"$`, tc.theMessageIs)
	ctx.Step(`^conflict (\d+) is between "([^"]*)" and "([^"]*)"$`, tc.conflictIsBetween)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
