package shared

import "errors"

// ErrorKind classifies a domain error for the thin request layer that
// consumes this core: validation, conflict and type-mismatch map to a
// 400-class response, not-found to 404.
type ErrorKind string

const (
	ErrorKindValidation   ErrorKind = "VALIDATION"
	ErrorKindNotFound     ErrorKind = "NOT_FOUND"
	ErrorKindConflict     ErrorKind = "CONFLICT"
	ErrorKindTypeMismatch ErrorKind = "TYPE_MISMATCH"
)

// DomainError represents a domain-level error with a machine-readable kind
// and code plus a human-readable message.
type DomainError struct {
	Kind    ErrorKind `json:"kind"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error (malformed or out-of-range input)
func NewValidationError(code, message string) *DomainError {
	return &DomainError{Kind: ErrorKindValidation, Code: code, Message: message}
}

// NewNotFoundError creates a not-found error (referenced entity absent)
func NewNotFoundError(code, message string) *DomainError {
	return &DomainError{Kind: ErrorKindNotFound, Code: code, Message: message}
}

// NewConflictError creates a conflict error (uniqueness violation)
func NewConflictError(code, message string) *DomainError {
	return &DomainError{Kind: ErrorKindConflict, Code: code, Message: message}
}

// NewTypeMismatchError creates a type-mismatch error (partner type constraint violated)
func NewTypeMismatchError(code, message string) *DomainError {
	return &DomainError{Kind: ErrorKindTypeMismatch, Code: code, Message: message}
}

// Common domain errors
var (
	ErrNotFound = NewNotFoundError("NOT_FOUND", "Resource not found")
)

// KindOf returns the error kind of err, or "" if err is not a DomainError.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsValidation reports whether err is a validation DomainError.
func IsValidation(err error) bool {
	return KindOf(err) == ErrorKindValidation
}

// IsNotFound reports whether err is a not-found DomainError.
func IsNotFound(err error) bool {
	return KindOf(err) == ErrorKindNotFound
}

// IsConflict reports whether err is a conflict DomainError.
func IsConflict(err error) bool {
	return KindOf(err) == ErrorKindConflict
}

// IsTypeMismatch reports whether err is a type-mismatch DomainError.
func IsTypeMismatch(err error) bool {
	return KindOf(err) == ErrorKindTypeMismatch
}
