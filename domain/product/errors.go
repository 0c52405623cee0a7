package product

import (
	"errors"
	"fmt"

	"layerit/domain/shared"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateID     = errors.New("duplicate product id")
)

func NewProductNotFoundError(id int) error {
	return &productDomainError{
		sentinel: ErrProductNotFound,
		message:  fmt.Sprintf("product not found: %d", id),
		stack:    shared.CaptureStack(3),
	}
}

func NewDuplicateIDError(id int) error {
	return &productDomainError{
		sentinel: ErrDuplicateID,
		message:  fmt.Sprintf("duplicate product id in catalog: %d", id),
		stack:    shared.CaptureStack(3),
	}
}

// productDomainError wraps a product sentinel and also matches the shared
// sentinel of the same class, so the api layer can classify it.
type productDomainError struct {
	sentinel error
	message  string
	stack    []uintptr
}

func (e *productDomainError) Error() string   { return e.message }
func (e *productDomainError) Unwrap() error   { return e.sentinel }
func (e *productDomainError) Stack() []string { return shared.FormatStack(e.stack) }

func (e *productDomainError) Is(target error) bool {
	switch e.sentinel {
	case ErrProductNotFound:
		return target == shared.ErrNotFound
	case ErrDuplicateID:
		return target == shared.ErrInvalidInput
	}
	return false
}
