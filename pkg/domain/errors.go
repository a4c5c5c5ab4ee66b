package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies console errors so the tool layer can report them
// without inspecting message strings.
type ErrorKind string

const (
	// KindAuthentication - the login exchange produced no usable session cookie.
	KindAuthentication ErrorKind = "authentication"
	// KindNotFound - an expected singleton was absent from an upstream response.
	KindNotFound ErrorKind = "not_found"
	// KindUpstream - a non-2xx or transport-level failure from a vendor call.
	KindUpstream ErrorKind = "upstream"
	// KindValidation - malformed caller input.
	KindValidation ErrorKind = "validation"
)

// Error is the single error type surfaced by the console client and the tool
// layer. Upstream failures carry the endpoint and status that produced them.
type Error struct {
	Kind      ErrorKind
	Operation string
	Message   string
	Endpoint  string
	Status    int
	Cause     error
}

func (e *Error) Error() string {
	if e.Endpoint != "" && e.Status != 0 {
		return fmt.Sprintf("%s: %s (%s returned %d)", e.Operation, e.Message, e.Endpoint, e.Status)
	}
	if e.Operation != "" {
		return fmt.Sprintf("%s: %s", e.Operation, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error for error unwrapping.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors of the same kind, so callers can test categories with
// errors.Is(err, &domain.Error{Kind: domain.KindUpstream}).
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether err is a console error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// NewAuthenticationError creates an authentication failure.
func NewAuthenticationError(op, message string) *Error {
	return &Error{Kind: KindAuthentication, Operation: op, Message: message}
}

// NewNotFoundError creates an error for a missing upstream record.
func NewNotFoundError(op, message string) *Error {
	return &Error{Kind: KindNotFound, Operation: op, Message: message}
}

// NewUpstreamError creates an error for a failed vendor call. Status is zero
// for transport-level failures that never produced a response.
func NewUpstreamError(method, endpoint string, status int, cause error) *Error {
	msg := "request failed"
	if cause != nil {
		msg = cause.Error()
	}
	return &Error{
		Kind:      KindUpstream,
		Operation: method,
		Message:   msg,
		Endpoint:  endpoint,
		Status:    status,
		Cause:     cause,
	}
}

// NewValidationError creates an error for malformed caller input.
func NewValidationError(op, message string) *Error {
	return &Error{Kind: KindValidation, Operation: op, Message: message}
}
