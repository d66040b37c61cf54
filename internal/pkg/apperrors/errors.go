package apperrors

import "errors"

// Kind classifies an error for the HTTP boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindValidation
	KindUpstream
)

// Error is the application error carried from services up to the error
// handler middleware. Fields is only set for validation errors that need a
// per-field detail map in the response body.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// ValidationFields carries the complete field-error map so clients can
// highlight every offending input at once.
func ValidationFields(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// Upstream wraps a collaborator failure (mail, storage) with a message that
// is safe to show the caller.
func Upstream(message string, cause error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Cause: cause}
}

// From extracts an application error, if err carries one.
func From(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
