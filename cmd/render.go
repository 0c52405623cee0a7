package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	catalogapp "layerit/application/catalog"
	sessionapp "layerit/application/session"
)

var verdictLabels = map[string]string{
	"safe":    "✅ SAFE",
	"caution": "⚠️  CAUTION",
	"danger":  "⛔ DANGER",
}

func verdictLabel(v string) string {
	if label, ok := verdictLabels[v]; ok {
		return label
	}
	return strings.ToUpper(v)
}

func printProducts(w io.Writer, products []catalogapp.ProductResponse) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "No products found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	if _, err := fmt.Fprintln(tw, "ID\tNAME\tBRAND\tSKIN TYPES\tKEY INGREDIENTS"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, p := range products {
		key := strings.Join(p.KeyIngredients, ", ")
		if p.HasMoreIngredients {
			key += ", …"
		}
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name, p.Brand, strings.Join(p.SkinTypes, ", "), key); err != nil {
			return fmt.Errorf("failed to write product: %w", err)
		}
	}
	return tw.Flush()
}

func printCompatibility(w io.Writer, res *catalogapp.CompatibilityResponse) error {
	if res.ProductA != nil && res.ProductB != nil {
		fmt.Fprintf(w, "%s (%s)  ×  %s (%s)\n",
			res.ProductA.Name, res.ProductA.Brand, res.ProductB.Name, res.ProductB.Brand)
	}
	fmt.Fprintf(w, "%s  %s\n", verdictLabel(res.Verdict), res.Message)

	for _, c := range res.Conflicts {
		fmt.Fprintf(w, "  - %s + %s [%s]: %s\n", c.IngredientA, c.IngredientB, c.Severity, c.Explanation)
	}
	return nil
}

func printSkinType(w io.Writer, res *catalogapp.SkinTypeResponse) error {
	fmt.Fprintf(w, "Your skin type: %s\n", res.SkinType)
	fmt.Fprintln(w, "Recommended routine:")
	for i, step := range res.RecommendedRoutine {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}
	return nil
}

func printRoutine(w io.Writer, r *sessionapp.RoutineResponse) error {
	if len(r.Products) == 0 {
		_, err := fmt.Fprintln(w, "Your routine is empty.")
		return err
	}
	if err := printProducts(w, r.Products); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nOverall: %s (%d of %d pairs conflict)\n", verdictLabel(r.Verdict), r.Conflicting, len(r.Pairs))
	for i := range r.Pairs {
		pair := r.Pairs[i]
		if pair.Verdict == "safe" {
			continue
		}
		fmt.Fprintln(w)
		if err := printCompatibility(w, &pair); err != nil {
			return err
		}
	}
	return nil
}
