// Package quiz holds the skin-type questionnaire and its scorer.
package quiz

import "layerit/domain/skin"

// Option is one labelled answer; Value is the skin type it votes for.
type Option struct {
	Text  string    `json:"text"`
	Value skin.Type `json:"value"`
	Emoji string    `json:"emoji"`
}

type Question struct {
	Prompt  string   `json:"question"`
	Options []Option `json:"options"`
}

// Accepts reports whether value is one of the question's option values.
func (q Question) Accepts(value skin.Type) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

var questions = []Question{
	{
		Prompt: "How does your skin feel a few hours after cleansing?",
		Options: []Option{
			{Text: "Tight and flaky", Value: skin.Dry, Emoji: "🏜️"},
			{Text: "Shiny all over", Value: skin.Oily, Emoji: "✨"},
			{Text: "Shiny in T-zone, normal elsewhere", Value: skin.Combination, Emoji: "🎨"},
			{Text: "Comfortable and balanced", Value: skin.Normal, Emoji: "😊"},
			{Text: "Easily irritated or red", Value: skin.Sensitive, Emoji: "🌸"},
		},
	},
	{
		Prompt: "How often do you experience breakouts?",
		Options: []Option{
			{Text: "Rarely or never", Value: skin.Dry, Emoji: "✨"},
			{Text: "Frequently, especially on forehead and nose", Value: skin.Oily, Emoji: "😓"},
			{Text: "Occasionally in T-zone", Value: skin.Combination, Emoji: "🎭"},
			{Text: "Sometimes, but manageable", Value: skin.Normal, Emoji: "👌"},
			{Text: "Products often cause reactions", Value: skin.Sensitive, Emoji: "💕"},
		},
	},
	{
		Prompt: "How do your pores look?",
		Options: []Option{
			{Text: "Small and barely visible", Value: skin.Dry, Emoji: "🔍"},
			{Text: "Large and noticeable", Value: skin.Oily, Emoji: "👀"},
			{Text: "Larger in T-zone", Value: skin.Combination, Emoji: "🎨"},
			{Text: "Medium-sized", Value: skin.Normal, Emoji: "😌"},
			{Text: "Not sure, I focus more on redness", Value: skin.Sensitive, Emoji: "🌺"},
		},
	},
	{
		Prompt: "How does your skin react to new products?",
		Options: []Option{
			{Text: "Gets flaky or peels", Value: skin.Dry, Emoji: "🍂"},
			{Text: "Becomes more oily", Value: skin.Oily, Emoji: "💧"},
			{Text: "Mixed reactions in different areas", Value: skin.Combination, Emoji: "🌗"},
			{Text: "Generally well", Value: skin.Normal, Emoji: "✅"},
			{Text: "Often stings or turns red", Value: skin.Sensitive, Emoji: "🔴"},
		},
	},
	{
		Prompt: "By midday, how does your skin look?",
		Options: []Option{
			{Text: "Dull and rough", Value: skin.Dry, Emoji: "😴"},
			{Text: "Very shiny and greasy", Value: skin.Oily, Emoji: "🌟"},
			{Text: "Shiny T-zone, dry cheeks", Value: skin.Combination, Emoji: "🎪"},
			{Text: "Fresh and even", Value: skin.Normal, Emoji: "🌿"},
			{Text: "Blotchy or irritated", Value: skin.Sensitive, Emoji: "🌹"},
		},
	},
}

// Questions returns a copy of the fixed questionnaire.
func Questions() []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		out[i] = Question{
			Prompt:  q.Prompt,
			Options: append([]Option(nil), q.Options...),
		}
	}
	return out
}

// Len is the number of questions.
func Len() int {
	return len(questions)
}
