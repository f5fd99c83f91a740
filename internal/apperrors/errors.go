package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an AppError so the HTTP layer can pick a status code.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindBadRequest
	KindUnsupportedMediaType
	KindNotFound
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindBadRequest:
		return "bad_request"
	case KindUnsupportedMediaType:
		return "unsupported_media_type"
	case KindNotFound:
		return "not_found"
	case KindStorage:
		return "storage"
	default:
		return "internal"
	}
}

// AppError is the error type shared by services, repositories and handlers.
type AppError struct {
	Kind    Kind
	Message string
	// Fields maps an input field name to the reason it was rejected. Only set for validation errors.
	Fields map[string]string
	Err    error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsOfKind reports whether err carries an AppError of the given kind.
func IsOfKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

func NewValidationError(fields map[string]string) *AppError {
	return &AppError{Kind: KindValidation, Message: "Validation failed", Fields: fields}
}

func NewBadRequestError(message string, err error) *AppError {
	return &AppError{Kind: KindBadRequest, Message: message, Err: err}
}

func NewUnsupportedMediaTypeError(contentType string) *AppError {
	return &AppError{
		Kind:    KindUnsupportedMediaType,
		Message: fmt.Sprintf("Content type '%s' not supported", contentType),
	}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewStorageError(message string, err error) *AppError {
	return &AppError{Kind: KindStorage, Message: message, Err: err}
}
