package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrPermission   = errors.New("permission denied")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal server error")
)

// AppError carries one of the sentinel kinds above plus a human-readable
// message. Handlers map the kind to an HTTP status with ToHTTPStatus.
type AppError struct {
	Kind    error
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Kind.Error(), e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Kind
}

func New(kind error, msg string, err error) *AppError {
	return &AppError{Kind: kind, Message: msg, Err: err}
}

func NewNotFound(resource, identifier string) *AppError {
	return New(ErrNotFound, fmt.Sprintf("%s with identifier '%s' was not found", resource, identifier), nil)
}

func NewInvalidInput(msg string, err error) *AppError {
	return New(ErrInvalidInput, msg, err)
}

func NewUnauthorized(msg string, err error) *AppError {
	return New(ErrUnauthorized, msg, err)
}

func NewPermissionDenied(msg string) *AppError {
	return New(ErrPermission, msg, nil)
}

func NewConflict(resource, field, value string) *AppError {
	return New(ErrConflict, fmt.Sprintf("%s with %s '%s' already exists", resource, field, value), nil)
}

func NewInternal(msg string, err error) *AppError {
	return New(ErrInternal, msg, err)
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrPermission):
		return http.StatusForbidden
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (e *AppError) ToJSON() gin.H {
	return gin.H{
		"error":   e.Kind.Error(),
		"message": e.Message,
	}
}
