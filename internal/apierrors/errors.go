// Package apierrors provides shared error types for the Tebex client.
package apierrors

import (
	"errors"
	"fmt"
)

// Code identifies a kind of client error. The set of codes is fixed at
// compile time; each code owns one message template.
type Code string

const (
	// CodeSecretKeyInvalid is used when the client is built without a usable secret key.
	CodeSecretKeyInvalid Code = "SECRET_KEY_INVALID"
	// CodeInvalidRequest is used for missing arguments and for every failed request.
	CodeInvalidRequest Code = "INVALID_REQUEST"
)

// template renders the message for a code from its arguments.
type template func(args ...any) string

func literal(msg string) template {
	return func(...any) string { return msg }
}

var templates = map[Code]template{
	CodeSecretKeyInvalid: literal("An invalid secret key was provided."),
	CodeInvalidRequest: func(args ...any) string {
		if len(args) == 0 {
			return "Invalid request"
		}
		return fmt.Sprintf("Invalid request: %v", args[0])
	},
}

// Message formats the message for code. It reports false when code has no template.
func Message(code Code, args ...any) (string, bool) {
	tmpl, ok := templates[code]
	if !ok {
		return "", false
	}
	return tmpl(args...), true
}

// Error is a client error carrying a stable code and a formatted message.
type Error struct {
	Code    Code
	Message string
	// Err is the underlying cause, if any.
	Err error
}

// New builds an Error for code. The first error found in args becomes the
// wrapped cause. New panics if code is not a known code, which is always a
// bug in the caller.
func New(code Code, args ...any) *Error {
	msg, ok := Message(code, args...)
	if !ok {
		panic(fmt.Sprintf("apierrors: unknown error code %q", string(code)))
	}
	e := &Error{Code: code, Message: msg}
	for _, arg := range args {
		if err, isErr := arg.(error); isErr {
			e.Err = err
			break
		}
	}
	return e
}

func (e *Error) Error() string {
	return fmt.Sprintf("tebex [%s]: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Sentinel errors for errors.Is() checks
var (
	// ErrSecretKeyInvalid is returned when no secret key is provided.
	ErrSecretKeyInvalid = &Error{Code: CodeSecretKeyInvalid, Message: "An invalid secret key was provided."}

	// ErrInvalidRequest matches every failed call, whatever the cause.
	ErrInvalidRequest = &Error{Code: CodeInvalidRequest, Message: "Invalid request"}

	// ErrMissingParameter is the cause of a call rejected before any request was sent.
	ErrMissingParameter = errors.New("required parameter is missing")

	// ErrUnauthorized is matched by 401 and 403 responses.
	ErrUnauthorized = errors.New("invalid secret key or insufficient plan")

	// ErrNotFound is matched by 404 responses.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is matched by 429 responses.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// MissingParameter returns the error for a required argument that was not supplied.
func MissingParameter(what string) *Error {
	return New(CodeInvalidRequest, fmt.Errorf("%w: the %s is missing", ErrMissingParameter, what))
}

// APIError represents a non-2xx response from the webstore API.
type APIError struct {
	StatusCode int
	// ErrorCode is the upstream error_code field, when present.
	ErrorCode int
	Message   string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401, 403:
		return target == ErrUnauthorized
	case 404:
		return target == ErrNotFound
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a network-level failure, including timeouts.
type NetworkError struct {
	Err    error
	Method string
	URL    string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}
