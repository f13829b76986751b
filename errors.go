package tebex

import (
	"github.com/tebexkit/client-go/internal/apierrors"
)

// Code identifies the kind of an *Error.
type Code = apierrors.Code

// Error codes.
const (
	// CodeSecretKeyInvalid is carried by errors from New when the secret key is unusable.
	CodeSecretKeyInvalid = apierrors.CodeSecretKeyInvalid
	// CodeInvalidRequest is carried by every failed call.
	CodeInvalidRequest = apierrors.CodeInvalidRequest
)

// Error is returned by every failing operation. Code is stable; Err holds
// the cause, which is one of *APIError, *NetworkError, an error matching
// ErrMissingParameter, or a marshalling error.
type Error = apierrors.Error

// APIError represents a non-2xx response from the webstore API.
type APIError = apierrors.APIError

// NetworkError represents a network-level failure, including timeouts.
type NetworkError = apierrors.NetworkError

// Sentinel errors for errors.Is() checks
var (
	// ErrSecretKeyInvalid is returned by New when no secret key is provided.
	ErrSecretKeyInvalid = apierrors.ErrSecretKeyInvalid

	// ErrInvalidRequest matches every failed call regardless of cause.
	ErrInvalidRequest = apierrors.ErrInvalidRequest

	// ErrMissingParameter matches calls rejected before a request was sent
	// because a required identifier was empty.
	ErrMissingParameter = apierrors.ErrMissingParameter

	// ErrUnauthorized matches 401 and 403 responses.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrNotFound matches 404 responses.
	ErrNotFound = apierrors.ErrNotFound

	// ErrRateLimited matches 429 responses.
	ErrRateLimited = apierrors.ErrRateLimited
)
