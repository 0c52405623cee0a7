package compat

import "layerit/domain/product"

// PairResult is the comparison of two products of a routine.
type PairResult struct {
	ProductA product.Product
	ProductB product.Product
	Result   Result
}

// Report summarises every unordered pair of a product list.
type Report struct {
	Pairs   []PairResult
	Verdict Severity
}

// Conflicting returns the pairs whose verdict is not safe.
func (r Report) Conflicting() []PairResult {
	var out []PairResult
	for _, p := range r.Pairs {
		if p.Result.Verdict != Safe {
			out = append(out, p)
		}
	}
	return out
}

// CheckAll compares each product with every product after it.
func (m *Matcher) CheckAll(products []product.Product) Report {
	report := Report{Verdict: Safe}
	for i := 0; i < len(products); i++ {
		for j := i + 1; j < len(products); j++ {
			res := m.Check(products[i], products[j])
			report.Pairs = append(report.Pairs, PairResult{
				ProductA: products[i],
				ProductB: products[j],
				Result:   res,
			})
			report.Verdict = report.Verdict.Worse(res.Verdict)
		}
	}
	return report
}

// CheckAll runs the built-in matcher over products.
func CheckAll(products []product.Product) Report {
	return defaultMatcher.CheckAll(products)
}
