// Package apperr defines the error taxonomy shared by every service:
// validation, not-found, upload and internal errors. Handlers translate
// these into the uniform HTTP envelope.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindUpload
)

// Error is the single error type crossing the service boundary.
type Error struct {
	Kind    Kind
	Message string
	// Fields holds per-field validation messages, keyed by the JSON field name.
	Fields map[string]string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports a missing record by resource name and identifier.
func NotFound(resource, id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s %s not found", resource, id),
	}
}

// Validation reports a request that failed schema validation.
func Validation(message string, fields map[string]string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: message,
		Fields:  fields,
	}
}

// Upload reports a rejected file upload (missing file, over the size cap).
func Upload(message string) *Error {
	return &Error{
		Kind:    KindUpload,
		Message: message,
	}
}

// Internal wraps a storage or infrastructure failure. The underlying
// message is kept so the envelope can pass it through.
func Internal(message string, err error) *Error {
	return &Error{
		Kind:    KindInternal,
		Message: message,
		Err:     err,
	}
}

// KindOf extracts the Kind from an error chain, defaulting to internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// FieldsOf returns the per-field messages from an error chain, if any.
func FieldsOf(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}
