package api

import (
	"context"
	"encoding/json"
)

// Transform shapes a raw 2xx response body into a result.
type Transform[T any] func(raw []byte) (T, error)

// Execute issues req exactly once and hands the response body to
// transform. Transport failures come back as INVALID_REQUEST errors;
// errors returned by transform are passed through untouched.
func Execute[T any](ctx context.Context, c *Client, req Request, transform Transform[T]) (T, error) {
	var zero T
	body, err := c.Do(ctx, req)
	if err != nil {
		return zero, err
	}
	return transform(body)
}

// Decode returns a Transform that unmarshals the body into W and then
// applies shape to it.
func Decode[W, T any](shape func(W) (T, error)) Transform[T] {
	return func(raw []byte) (T, error) {
		var wire W
		if err := json.Unmarshal(raw, &wire); err != nil {
			var zero T
			return zero, err
		}
		return shape(wire)
	}
}

// Envelope is the {"data": ...} wrapper some resources respond with.
type Envelope[T any] struct {
	Data T `json:"data"`
}

// Discard is a Transform for endpoints whose body carries nothing useful.
func Discard(raw []byte) (struct{}, error) {
	return struct{}{}, nil
}
