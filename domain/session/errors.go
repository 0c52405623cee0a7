package session

import (
	"errors"
	"fmt"

	"layerit/domain/shared"
)

var (
	// ErrSelectionFull 已选满两个产品
	ErrSelectionFull = errors.New("two products are already selected")

	// ErrIncompleteSelection 比较需要恰好两个产品
	ErrIncompleteSelection = errors.New("select exactly two products to compare")

	// ErrAlreadyInRoutine 产品已在 routine 中
	ErrAlreadyInRoutine = errors.New("product is already in the routine")

	// ErrNotInRoutine 产品不在 routine 中
	ErrNotInRoutine = errors.New("product is not in the routine")
)

func NewSelectionFullError(productID int) error {
	return newSessionError(ErrSelectionFull, shared.ErrConflict,
		fmt.Sprintf("cannot select product %d: two products are already selected", productID))
}

func NewIncompleteSelectionError(selected int) error {
	return newSessionError(ErrIncompleteSelection, shared.ErrInvalidInput,
		fmt.Sprintf("select exactly two products to compare, got %d", selected))
}

func NewAlreadyInRoutineError(productID int) error {
	return newSessionError(ErrAlreadyInRoutine, shared.ErrConflict,
		fmt.Sprintf("product %d is already in the routine", productID))
}

func NewNotInRoutineError(productID int) error {
	return newSessionError(ErrNotInRoutine, shared.ErrNotFound,
		fmt.Sprintf("product %d is not in the routine", productID))
}

func newSessionError(sentinel, class error, message string) error {
	return &sessionDomainError{
		sentinel: sentinel,
		class:    class,
		message:  message,
		stack:    shared.CaptureStack(4),
	}
}

type sessionDomainError struct {
	sentinel error
	class    error
	message  string
	stack    []uintptr
}

func (e *sessionDomainError) Error() string        { return e.message }
func (e *sessionDomainError) Unwrap() error        { return e.sentinel }
func (e *sessionDomainError) Is(target error) bool { return target == e.class }
func (e *sessionDomainError) Stack() []string      { return shared.FormatStack(e.stack) }
