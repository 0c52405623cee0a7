package session

import (
	"layerit/application/catalog"
	"layerit/domain/compat"
	"layerit/domain/product"
	"layerit/domain/quiz"
	"layerit/domain/session"
)

func toQuizProgress(a *quiz.Attempt) *QuizProgressResponse {
	if a == nil {
		return nil
	}
	resp := &QuizProgressResponse{
		Step:     a.Step(),
		Total:    quiz.Len(),
		Progress: a.Progress(),
		Finished: a.Finished(),
	}
	if q, ok := a.Current(); ok {
		qr := catalog.ToQuestionResponse(a.Step(), q)
		resp.Question = &qr
	}
	return resp
}

func toSessionResponse(s *session.Session) *SessionResponse {
	resp := &SessionResponse{
		ID:       s.ID(),
		View:     s.View().String(),
		SkinType: s.SkinType().String(),
		Quiz:     toQuizProgress(s.Attempt()),
		Selected: catalog.ToProductResponses(s.Selected()),
		Routine:  catalog.ToProductResponses(s.Routine()),
	}
	if res := s.Comparison(); res != nil {
		cmp := toComparison(s, *res)
		resp.Comparison = &cmp
	}
	return resp
}

func toProductCards(s *session.Session, products []product.Product) []ProductCardResponse {
	cards := make([]ProductCardResponse, len(products))
	for i, p := range products {
		cards[i] = ProductCardResponse{
			ID:        p.ID(),
			Selected:  s.IsSelected(p.ID()),
			InRoutine: s.InRoutine(p.ID()),
			CanSelect: s.CanSelect(p),
		}
	}
	return cards
}

// toComparison 当前选中的两个商品与比较结果
func toComparison(s *session.Session, res compat.Result) catalog.CompatibilityResponse {
	selected := s.Selected()
	if len(selected) == session.MaxSelected {
		return catalog.ToPairResponse(selected[0], selected[1], res)
	}
	return catalog.ToCompatibilityResponse(res)
}

func toRoutineResponse(s *session.Session) *RoutineResponse {
	report := s.RoutineReport()
	pairs := make([]catalog.CompatibilityResponse, len(report.Pairs))
	for i, p := range report.Pairs {
		pairs[i] = catalog.ToPairResponse(p.ProductA, p.ProductB, p.Result)
	}
	return &RoutineResponse{
		Products:    catalog.ToProductResponses(s.Routine()),
		Verdict:     string(report.Verdict),
		Pairs:       pairs,
		Conflicting: len(report.Conflicting()),
	}
}
