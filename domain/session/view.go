package session

import (
	"strings"

	"layerit/domain/shared"
)

// View is the screen the session is showing.
type View string

const (
	ViewHome     View = "home"
	ViewQuiz     View = "quiz"
	ViewResults  View = "results"
	ViewProducts View = "products"
	ViewRoutine  View = "routine"
)

func Views() []View {
	return []View{ViewHome, ViewQuiz, ViewResults, ViewProducts, ViewRoutine}
}

func (v View) IsValid() bool {
	switch v {
	case ViewHome, ViewQuiz, ViewResults, ViewProducts, ViewRoutine:
		return true
	}
	return false
}

func (v View) String() string {
	return string(v)
}

func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	if !v.IsValid() {
		return "", shared.NewValidationError("session", "view", "unknown view: "+s)
	}
	return v, nil
}
