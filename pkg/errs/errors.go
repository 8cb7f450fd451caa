package errs

import (
	"fmt"
	"net/http"
	"strings"
)

// Error is an application-raised failure carrying its own HTTP status code.
// Services return it to short-circuit a handler with a business-rule
// violation; the classifier passes its code and message through verbatim.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

func New(message string, statusCode int) *Error {
	return &Error{StatusCode: statusCode, Message: message}
}

func BadRequest(message string) *Error {
	return New(message, http.StatusBadRequest)
}

func Unauthorized(message string) *Error {
	if message == "" {
		message = "Unauthorized"
	}
	return New(message, http.StatusUnauthorized)
}

func Forbidden(message string) *Error {
	if message == "" {
		message = "Forbidden"
	}
	return New(message, http.StatusForbidden)
}

func NotFound(message string) *Error {
	if message == "" {
		message = "Resource not found"
	}
	return New(message, http.StatusNotFound)
}

func Conflict(message string) *Error {
	return New(message, http.StatusConflict)
}

func Internal(message string) *Error {
	if message == "" {
		message = "Internal Server Error"
	}
	return New(message, http.StatusInternalServerError)
}

func Unavailable(message string) *Error {
	if message == "" {
		message = "Service Unavailable"
	}
	return New(message, http.StatusServiceUnavailable)
}

// FieldViolation is a single named-field rule violation.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldViolations is the full set of violations for one request, in
// rule-declaration order.
type FieldViolations []FieldViolation

func (v FieldViolations) Error() string {
	messages := make([]string, 0, len(v))
	for _, violation := range v {
		messages = append(messages, violation.Message)
	}
	return "Validation Error: " + strings.Join(messages, ", ")
}

// InvalidID is a malformed-identifier failure, produced at the persistence
// boundary when a supplied id cannot be cast to the store's id type.
type InvalidID struct {
	Field string
	Kind  string
	Value string
}

func (e *InvalidID) Error() string {
	return fmt.Sprintf("Invalid %s for field '%s': %s", e.Kind, e.Field, e.Value)
}

// Upstream is a failure reported by an external HTTP service, carrying the
// upstream's own status code and message.
type Upstream struct {
	StatusCode int
	Message    string
}

func (e *Upstream) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
}
