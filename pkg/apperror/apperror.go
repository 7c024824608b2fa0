package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyPublished is returned when publishing an idea that already has a publish timestamp.
	ErrAlreadyPublished = &ValidationError{Field: "postedAt", Reason: "stock idea already published"}

	// ErrArchived is returned for any transition out of the archived state.
	ErrArchived = &ValidationError{Field: "isDeleted", Reason: "stock idea is archived"}
)

// NotFoundError reports an operation against an id that does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// Is lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFound builds a NotFoundError.
func NewNotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError reports caller data that violates a required invariant.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Reason
	}
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NewValidation builds a ValidationError.
func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// MappingError reports a wire document whose structure cannot be decoded.
type MappingError struct {
	Path   string
	Reason string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping error at %s: %s", e.Path, e.Reason)
}

// NewMapping builds a MappingError.
func NewMapping(path, reason string) error {
	return &MappingError{Path: path, Reason: reason}
}

// TransportError is an opaque failure from the backing store, passed through untouched.
type TransportError struct {
	Op         string
	StatusCode int
	Status     string
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: transport failure: %v", e.Op, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: store returned %d %s: %s", e.Op, e.StatusCode, e.Status, e.Message)
	default:
		return fmt.Sprintf("%s: store returned %d", e.Op, e.StatusCode)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a not-found failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsMapping reports whether err is a mapping failure.
func IsMapping(err error) bool {
	var m *MappingError
	return errors.As(err, &m)
}

// IsTransport reports whether err is a transport failure.
func IsTransport(err error) bool {
	var t *TransportError
	return errors.As(err, &t)
}
