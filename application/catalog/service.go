/*
Package catalog Application Layer - 商品目录与无状态查询

不持有会话状态：商品浏览、两两兼容性检查、测验题目和评分、肤质推荐步骤。
*/
package catalog

import (
	"context"
	"strings"

	"layerit/domain/compat"
	"layerit/domain/product"
	"layerit/domain/quiz"
	"layerit/domain/shared"
	"layerit/domain/skin"
)

// ApplicationService 商品目录应用服务
type ApplicationService struct {
	products product.Repository
	matcher  *compat.Matcher
}

func NewApplicationService(products product.Repository, matcher *compat.Matcher) *ApplicationService {
	if matcher == nil {
		matcher = compat.NewMatcher()
	}
	return &ApplicationService{products: products, matcher: matcher}
}

// ListProducts 按条件过滤商品，保持数据集顺序
func (s *ApplicationService) ListProducts(ctx context.Context, q ListProductsQuery) ([]ProductResponse, error) {
	var specs []shared.Specification[product.Product]

	if q.SkinType != "" {
		t, err := skin.Parse(q.SkinType)
		if err != nil {
			return nil, err
		}
		specs = append(specs, product.NewBySkinTypeSpecification(t))
	}
	if v := strings.TrimSpace(q.Ingredient); v != "" {
		specs = append(specs, product.NewContainsIngredientSpecification(v))
	}
	if v := strings.TrimSpace(q.Brand); v != "" {
		specs = append(specs, product.NewByBrandSpecification(v))
	}

	products, err := s.products.FindBySpecification(ctx, shared.All(specs...))
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

func (s *ApplicationService) GetProduct(ctx context.Context, id int) (*ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(p)
	return &resp, nil
}

// CheckCompatibility 无状态比较，不影响会话中的选择
func (s *ApplicationService) CheckCompatibility(ctx context.Context, req CompatibilityRequest) (*CompatibilityResponse, error) {
	a, err := s.products.FindByID(ctx, req.ProductA)
	if err != nil {
		return nil, err
	}
	b, err := s.products.FindByID(ctx, req.ProductB)
	if err != nil {
		return nil, err
	}
	resp := ToPairResponse(a, b, s.matcher.Check(a, b))
	return &resp, nil
}

// ConflictRules 当前使用的规则表
func (s *ApplicationService) ConflictRules() []ConflictResponse {
	return ToCompatibilityResponse(compat.Result{Conflicts: s.matcher.Rules()}).Conflicts
}

func (s *ApplicationService) Questions() []QuestionResponse {
	questions := quiz.Questions()
	out := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		out[i] = ToQuestionResponse(i, q)
	}
	return out
}

// ScoreQuiz 按问题顺序校验答案并评分
// 答案可以不完整，空列表得到 normal；多于问题数时报校验错误
func (s *ApplicationService) ScoreQuiz(ctx context.Context, req ScoreRequest) (*SkinTypeResponse, error) {
	if len(req.Answers) > quiz.Len() {
		return nil, shared.NewValidationError("quiz", "answers", "more answers than questions")
	}

	attempt := quiz.NewAttempt()
	for _, a := range req.Answers {
		t := skin.Type(strings.ToLower(strings.TrimSpace(a)))
		if _, _, err := attempt.Answer(t); err != nil {
			return nil, err
		}
	}

	answers := attempt.Answers()
	resp := ToSkinTypeResponse(quiz.Score(answers))
	resp.Tally = make(map[string]int)
	for t, n := range quiz.Tally(answers) {
		resp.Tally[t.String()] = n
	}
	return &resp, nil
}

// RecommendedRoutine 指定肤质的推荐步骤
func (s *ApplicationService) RecommendedRoutine(ctx context.Context, skinType string) (*SkinTypeResponse, error) {
	t, err := skin.Parse(skinType)
	if err != nil {
		return nil, err
	}
	resp := ToSkinTypeResponse(t)
	return &resp, nil
}
