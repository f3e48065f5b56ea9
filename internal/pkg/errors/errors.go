package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

const (
	TypeValidation          = "VALIDATION_ERROR"
	TypeStripe              = "STRIPE_ERROR"
	TypeStripeNotConfigured = "STRIPE_NOT_CONFIGURED"
	TypeNotFound            = "NOT_FOUND"
	TypeUnauthorized        = "UNAUTHORIZED"
	TypeBadRequest          = "BAD_REQUEST"
	TypeUnknown             = "UNKNOWN_ERROR"
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type CustomError struct {
	HTTPCode  int
	Message   string
	ErrorType string
	// Code is the provider error code, if any.
	Code      string
	Fields    []FieldError
	Retryable bool
}

func (e *CustomError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (%s)", e.ErrorType, e.Message, e.Code)
	}
	return fmt.Sprintf("%s: %s", e.ErrorType, e.Message)
}

func BadRequest(msg string) *CustomError {
	return &CustomError{
		HTTPCode:  http.StatusBadRequest,
		Message:   msg,
		ErrorType: TypeBadRequest,
	}
}

func NotFound(msg string) *CustomError {
	return &CustomError{
		HTTPCode:  http.StatusNotFound,
		Message:   msg,
		ErrorType: TypeNotFound,
	}
}

func UnauthorizedError(msg string) *CustomError {
	return &CustomError{
		HTTPCode:  http.StatusUnauthorized,
		Message:   msg,
		ErrorType: TypeUnauthorized,
	}
}

func InternalServerError(msg string) *CustomError {
	return &CustomError{
		HTTPCode:  http.StatusInternalServerError,
		Message:   msg,
		ErrorType: TypeUnknown,
	}
}

func Validation(msg string, fields []FieldError) *CustomError {
	return &CustomError{
		HTTPCode:  http.StatusBadRequest,
		Message:   msg,
		ErrorType: TypeValidation,
		Fields:    fields,
	}
}

func StripeNotConfigured() *CustomError {
	return &CustomError{
		HTTPCode:  http.StatusInternalServerError,
		Message:   "Zahlungssystem ist nicht konfiguriert",
		ErrorType: TypeStripeNotConfigured,
	}
}

func StripeError(msg, code string) *CustomError {
	return &CustomError{
		HTTPCode:  http.StatusBadRequest,
		Message:   msg,
		ErrorType: TypeStripe,
		Code:      code,
	}
}

// StripeUnavailable is a provider failure the client may retry.
func StripeUnavailable(msg string) *CustomError {
	return &CustomError{
		HTTPCode:  http.StatusServiceUnavailable,
		Message:   msg,
		ErrorType: TypeStripe,
		Retryable: true,
	}
}

// AsCustom unwraps err into a *CustomError when one is in the chain.
func AsCustom(err error) (*CustomError, bool) {
	var ce *CustomError
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
