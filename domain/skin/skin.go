// Package skin defines the skin-type classification shared by the quiz, the
// catalog and the session.
package skin

import (
	"strings"

	"layerit/domain/shared"
)

// Type is a skin classification label.
type Type string

const (
	Dry         Type = "dry"
	Oily        Type = "oily"
	Combination Type = "combination"
	Normal      Type = "normal"
	Sensitive   Type = "sensitive"
)

// All returns the five skin types in quiz option order.
func All() []Type {
	return []Type{Dry, Oily, Combination, Normal, Sensitive}
}

// IsValid reports whether t is one of the five known types.
func (t Type) IsValid() bool {
	switch t {
	case Dry, Oily, Combination, Normal, Sensitive:
		return true
	}
	return false
}

func (t Type) String() string {
	return string(t)
}

// Parse normalises s and returns the matching Type.
func Parse(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", shared.NewValidationError("skin", "skin_type", "unknown skin type: "+s)
	}
	return t, nil
}

var routines = map[Type][]string{
	Oily:        {"Gentle cleanser", "BHA toner or serum", "Lightweight moisturizer", "Niacinamide serum (optional)"},
	Dry:         {"Creamy cleanser", "Hydrating toner", "Rich moisturizer", "Facial oil (optional)"},
	Combination: {"Gentle cleanser", "Balancing toner", "Gel moisturizer", "Spot treatment for T-zone"},
	Sensitive:   {"Fragrance-free cleanser", "Soothing toner", "Barrier repair cream", "Avoid actives initially"},
	Normal:      {"Gentle cleanser", "Hydrating toner", "Light moisturizer", "Optional targeted treatments"},
}

// RecommendedRoutine returns the suggested steps for t. Unknown types get the
// normal routine.
func RecommendedRoutine(t Type) []string {
	steps, ok := routines[t]
	if !ok {
		steps = routines[Normal]
	}
	out := make([]string, len(steps))
	copy(out, steps)
	return out
}
