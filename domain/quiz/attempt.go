package quiz

import (
	"errors"
	"fmt"

	"layerit/domain/shared"
	"layerit/domain/skin"
)

var (
	ErrInvalidAnswer = errors.New("answer is not an option of the current question")
	ErrQuizFinished  = errors.New("quiz already finished")
)

// Attempt tracks one run through the questionnaire.
type Attempt struct {
	answers []skin.Type
	result  skin.Type
}

func NewAttempt() *Attempt {
	return &Attempt{answers: make([]skin.Type, 0, Len())}
}

// Step is the zero-based index of the current question.
func (a *Attempt) Step() int {
	return len(a.answers)
}

func (a *Attempt) Finished() bool {
	return len(a.answers) >= Len()
}

// Current returns the question awaiting an answer.
func (a *Attempt) Current() (Question, bool) {
	if a.Finished() {
		return Question{}, false
	}
	return Questions()[a.Step()], true
}

// Progress is the percentage shown for the current question, counting it as reached.
func (a *Attempt) Progress() int {
	step := a.Step()
	if step >= Len() {
		return 100
	}
	return (step + 1) * 100 / Len()
}

func (a *Attempt) Answers() []skin.Type {
	return append([]skin.Type(nil), a.answers...)
}

// Answer records value for the current question. After the last question it
// scores the attempt and returns done=true with the resulting skin type.
func (a *Attempt) Answer(value skin.Type) (bool, skin.Type, error) {
	q, ok := a.Current()
	if !ok {
		return true, a.result, &quizError{sentinel: ErrQuizFinished, message: "quiz already finished"}
	}
	if !q.Accepts(value) {
		return false, "", &quizError{
			sentinel: ErrInvalidAnswer,
			message:  fmt.Sprintf("invalid answer %q for question %d", value, a.Step()+1),
			stack:    shared.CaptureStack(2),
		}
	}

	a.answers = append(a.answers, value)
	if !a.Finished() {
		return false, "", nil
	}
	a.result = Score(a.answers)
	return true, a.result, nil
}

// Clone returns an independent copy of the attempt.
func (a *Attempt) Clone() *Attempt {
	if a == nil {
		return nil
	}
	return &Attempt{answers: append(make([]skin.Type, 0, Len()), a.answers...), result: a.result}
}

// Result is the scored skin type, empty until the attempt is finished.
func (a *Attempt) Result() skin.Type {
	return a.result
}

type quizError struct {
	sentinel error
	message  string
	stack    []uintptr
}

func (e *quizError) Error() string   { return e.message }
func (e *quizError) Unwrap() error   { return e.sentinel }
func (e *quizError) Stack() []string { return shared.FormatStack(e.stack) }

func (e *quizError) Is(target error) bool {
	switch e.sentinel {
	case ErrInvalidAnswer:
		return target == shared.ErrInvalidInput
	case ErrQuizFinished:
		return target == shared.ErrConflict
	}
	return false
}
