package catalog

import (
	"layerit/domain/compat"
	"layerit/domain/product"
	"layerit/domain/quiz"
	"layerit/domain/skin"
)

// ToProductResponse 领域商品转返回模型
func ToProductResponse(p product.Product) ProductResponse {
	types := p.SkinTypes()
	skinTypes := make([]string, len(types))
	for i, t := range types {
		skinTypes[i] = t.String()
	}
	key, more := p.KeyIngredients()
	return ProductResponse{
		ID:                 p.ID(),
		Name:               p.Name(),
		Brand:              p.Brand(),
		Description:        p.Description(),
		Ingredients:        p.Ingredients(),
		SkinTypes:          skinTypes,
		KeyIngredients:     key,
		HasMoreIngredients: more,
	}
}

func ToProductResponses(products []product.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = ToProductResponse(p)
	}
	return out
}

// ToCompatibilityResponse 冲突列表永远不为 nil，方便前端直接遍历
func ToCompatibilityResponse(res compat.Result) CompatibilityResponse {
	conflicts := make([]ConflictResponse, len(res.Conflicts))
	for i, c := range res.Conflicts {
		conflicts[i] = ConflictResponse{
			IngredientA: c.IngredientA,
			IngredientB: c.IngredientB,
			Severity:    string(c.Severity),
			Explanation: c.Explanation,
		}
	}
	return CompatibilityResponse{
		Verdict:   string(res.Verdict),
		Conflicts: conflicts,
		Message:   res.Message,
	}
}

// ToPairResponse 带上两个商品的比较结果
func ToPairResponse(a, b product.Product, res compat.Result) CompatibilityResponse {
	out := ToCompatibilityResponse(res)
	pa, pb := ToProductResponse(a), ToProductResponse(b)
	out.ProductA, out.ProductB = &pa, &pb
	return out
}

func ToQuestionResponse(index int, q quiz.Question) QuestionResponse {
	options := make([]OptionResponse, len(q.Options))
	for i, o := range q.Options {
		options[i] = OptionResponse{Text: o.Text, Value: o.Value.String(), Emoji: o.Emoji}
	}
	return QuestionResponse{Index: index, Question: q.Prompt, Options: options}
}

func ToSkinTypeResponse(t skin.Type) SkinTypeResponse {
	return SkinTypeResponse{
		SkinType:           t.String(),
		RecommendedRoutine: skin.RecommendedRoutine(t),
	}
}
