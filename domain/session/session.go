// Package session models the user's browsing session: which screen is shown,
// the quiz in progress, the two-product comparison and the saved routine.
package session

import (
	"layerit/domain/compat"
	"layerit/domain/product"
	"layerit/domain/quiz"
	"layerit/domain/shared"
	"layerit/domain/skin"

	"github.com/google/uuid"
)

// MaxSelected is how many products can be compared at once.
const MaxSelected = 2

// Session 会话聚合根
// 视图切换只由显式操作触发，任何操作都可以直接切到任意视图，不做非法转换检测
type Session struct {
	id         string
	view       View
	skinType   skin.Type
	attempt    *quiz.Attempt
	selected   []product.Product
	comparison *compat.Result
	routine    []product.Product

	matcher *compat.Matcher
	events  []shared.DomainEvent
}

// New starts a session on the home view.
func New(matcher *compat.Matcher) *Session {
	if matcher == nil {
		matcher = compat.NewMatcher()
	}
	return &Session{
		id:      uuid.NewString(),
		view:    ViewHome,
		matcher: matcher,
		events:  make([]shared.DomainEvent, 0),
	}
}

// Restore seeds the session from persisted state without recording events.
func (s *Session) Restore(st State, routine []product.Product) {
	s.skinType = st.SkinType
	s.routine = append([]product.Product(nil), routine...)
}

// Navigate switches to v. Entering the quiz always starts a fresh attempt.
func (s *Session) Navigate(v View) error {
	if !v.IsValid() {
		return shared.NewValidationError("session", "view", "unknown view: "+string(v))
	}
	if v == ViewQuiz {
		s.attempt = quiz.NewAttempt()
	}
	s.view = v
	return nil
}

// AnswerQuiz answers the current quiz question. When the last question is
// answered the skin type is stored and the session moves to the results view.
func (s *Session) AnswerQuiz(value skin.Type) (bool, error) {
	if s.attempt == nil {
		s.attempt = quiz.NewAttempt()
	}
	done, result, err := s.attempt.Answer(value)
	if err != nil {
		return false, err
	}
	if !done {
		return false, nil
	}

	s.skinType = result
	s.view = ViewResults
	s.events = append(s.events, NewSkinTypeDeterminedEvent(s.id, result))
	return true, nil
}

// ToggleSelection deselects p if it is selected, otherwise selects it when fewer
// than two products are selected.
func (s *Session) ToggleSelection(p product.Product) error {
	for i, sel := range s.selected {
		if sel.Equals(p) {
			s.selected = append(s.selected[:i:i], s.selected[i+1:]...)
			return nil
		}
	}
	if len(s.selected) >= MaxSelected {
		return NewSelectionFullError(p.ID())
	}
	s.selected = append(s.selected, p)
	return nil
}

// CanSelect mirrors the product card's enabled state.
func (s *Session) CanSelect(p product.Product) bool {
	return len(s.selected) < MaxSelected || s.IsSelected(p.ID())
}

func (s *Session) IsSelected(id int) bool {
	for _, sel := range s.selected {
		if sel.ID() == id {
			return true
		}
	}
	return false
}

// Compare checks the two selected products and keeps the result until cleared.
func (s *Session) Compare() (compat.Result, error) {
	if len(s.selected) != MaxSelected {
		return compat.Result{}, NewIncompleteSelectionError(len(s.selected))
	}
	res := s.matcher.Check(s.selected[0], s.selected[1])
	s.comparison = &res
	return res, nil
}

// ClearComparison drops the result and the selection.
func (s *Session) ClearComparison() {
	s.comparison = nil
	s.selected = nil
}

func (s *Session) AddToRoutine(p product.Product) error {
	if s.InRoutine(p.ID()) {
		return NewAlreadyInRoutineError(p.ID())
	}
	s.routine = append(s.routine, p)
	s.events = append(s.events, NewRoutineChangedEvent(s.id, s.RoutineIDs()))
	return nil
}

func (s *Session) RemoveFromRoutine(id int) error {
	for i, p := range s.routine {
		if p.ID() == id {
			s.routine = append(s.routine[:i:i], s.routine[i+1:]...)
			s.events = append(s.events, NewRoutineChangedEvent(s.id, s.RoutineIDs()))
			return nil
		}
	}
	return NewNotInRoutineError(id)
}

func (s *Session) InRoutine(id int) bool {
	for _, p := range s.routine {
		if p.ID() == id {
			return true
		}
	}
	return false
}

// RoutineReport checks every pair of routine products.
func (s *Session) RoutineReport() compat.Report {
	return s.matcher.CheckAll(s.routine)
}

func (s *Session) ID() string          { return s.id }
func (s *Session) View() View          { return s.view }
func (s *Session) SkinType() skin.Type { return s.skinType }

// Attempt is the quiz in progress, nil before the quiz view is first entered.
func (s *Session) Attempt() *quiz.Attempt { return s.attempt }

func (s *Session) Selected() []product.Product {
	return append([]product.Product(nil), s.selected...)
}

// Comparison is the last comparison result, nil when none is shown.
func (s *Session) Comparison() *compat.Result {
	if s.comparison == nil {
		return nil
	}
	res := *s.comparison
	return &res
}

func (s *Session) Routine() []product.Product {
	return append([]product.Product(nil), s.routine...)
}

func (s *Session) RoutineIDs() []int {
	ids := make([]int, len(s.routine))
	for i, p := range s.routine {
		ids[i] = p.ID()
	}
	return ids
}

// State returns what is persisted between runs.
func (s *Session) State() State {
	return State{RoutineIDs: s.RoutineIDs(), SkinType: s.skinType}
}

// Memento 会话可变状态的快照，持久化失败时用于回滚
type Memento struct {
	view       View
	skinType   skin.Type
	attempt    *quiz.Attempt
	selected   []product.Product
	comparison *compat.Result
	routine    []product.Product
}

func (s *Session) Memento() Memento {
	return Memento{
		view:       s.view,
		skinType:   s.skinType,
		attempt:    s.attempt.Clone(),
		selected:   s.Selected(),
		comparison: s.Comparison(),
		routine:    s.Routine(),
	}
}

// Revert restores m and discards events recorded since it was taken.
func (s *Session) Revert(m Memento) {
	s.view = m.view
	s.skinType = m.skinType
	s.attempt = m.attempt.Clone()
	s.selected = append([]product.Product(nil), m.selected...)
	s.comparison = m.comparison
	s.routine = append([]product.Product(nil), m.routine...)
	s.events = make([]shared.DomainEvent, 0)
}

// PullEvents 获取并清空聚合根记录的领域事件
func (s *Session) PullEvents() []shared.DomainEvent {
	events := make([]shared.DomainEvent, len(s.events))
	copy(events, s.events)
	s.events = make([]shared.DomainEvent, 0)
	return events
}

var _ shared.AggregateRoot = (*Session)(nil)
