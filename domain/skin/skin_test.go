package skin

import (
	"errors"
	"testing"

	"layerit/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got, err := Parse("  Oily ")
	require.NoError(t, err)
	assert.Equal(t, Oily, got)

	_, err = Parse("greasy")
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))
}

func TestRecommendedRoutine(t *testing.T) {
	assert.Equal(t, []string{"Creamy cleanser", "Hydrating toner", "Rich moisturizer", "Facial oil (optional)"},
		RecommendedRoutine(Dry))

	assert.Equal(t, RecommendedRoutine(Normal), RecommendedRoutine(Type("unknown")))

	steps := RecommendedRoutine(Oily)
	steps[0] = "mutated"
	assert.Equal(t, "Gentle cleanser", RecommendedRoutine(Oily)[0])
}

func TestAllAreValid(t *testing.T) {
	for _, st := range All() {
		assert.True(t, st.IsValid(), st)
	}
	assert.False(t, Type("").IsValid())
}
