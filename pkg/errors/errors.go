package errors

import (
	"errors"
	"fmt"

	"layerit/domain/product"
	"layerit/domain/quiz"
	"layerit/domain/session"
	"layerit/domain/shared"
)

// ErrorCode 错误码
type ErrorCode string

const (
	// 通用错误码
	CodeInternal       ErrorCode = "INTERNAL_ERROR"
	CodeBadRequest     ErrorCode = "BAD_REQUEST"
	CodeNotFound       ErrorCode = "NOT_FOUND"
	CodeConflict       ErrorCode = "CONFLICT"
	CodeTooManyRequest ErrorCode = "TOO_MANY_REQUESTS"
	CodeValidation     ErrorCode = "VALIDATION_ERROR"
	CodeUnavailable    ErrorCode = "SERVICE_UNAVAILABLE"

	// 业务错误码
	CodeProductNotFound  ErrorCode = "PRODUCT_NOT_FOUND"
	CodeInvalidSelection ErrorCode = "INVALID_SELECTION"
	CodeInvalidAnswer    ErrorCode = "INVALID_ANSWER"
	CodeAlreadyInRoutine ErrorCode = "ALREADY_IN_ROUTINE"
	CodeNotInRoutine     ErrorCode = "NOT_IN_ROUTINE"
)

// AppError 应用错误
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// 常用错误构造函数

func TooManyRequests(message string) *AppError {
	return New(CodeTooManyRequest, message)
}

func Validation(message string) *AppError {
	return New(CodeValidation, message)
}

// Is 检查是否为特定错误码
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// AsAppError 将错误转换为 AppError
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	// 如果不是 AppError，包装为内部错误
	return Wrap(err, CodeInternal, "internal server error")
}

// MapDomainError 将领域错误映射为应用错误
// 先匹配具体的哨兵错误，再按 shared 的错误类别兜底
func MapDomainError(err error) *AppError {
	if err == nil {
		return nil
	}

	// 已经是 AppError
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	msg := err.Error()
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) && domainErr.Message != "" {
		msg = domainErr.Message
	}

	switch {
	case errors.Is(err, product.ErrProductNotFound):
		return Wrap(err, CodeProductNotFound, msg)
	case errors.Is(err, session.ErrSelectionFull), errors.Is(err, session.ErrIncompleteSelection):
		return Wrap(err, CodeInvalidSelection, msg)
	case errors.Is(err, quiz.ErrInvalidAnswer), errors.Is(err, quiz.ErrQuizFinished):
		return Wrap(err, CodeInvalidAnswer, msg)
	case errors.Is(err, session.ErrAlreadyInRoutine):
		return Wrap(err, CodeAlreadyInRoutine, msg)
	case errors.Is(err, session.ErrNotInRoutine):
		return Wrap(err, CodeNotInRoutine, msg)
	case errors.Is(err, shared.ErrNotFound):
		return Wrap(err, CodeNotFound, msg)
	case errors.Is(err, shared.ErrInvalidInput):
		return Wrap(err, CodeValidation, msg)
	case errors.Is(err, shared.ErrConflict):
		return Wrap(err, CodeConflict, msg)
	default:
		return Wrap(err, CodeInternal, "internal server error")
	}
}
