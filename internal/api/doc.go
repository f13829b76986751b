// Package api provides HTTP client functionality for communicating with the
// Tebex plugin API. It handles authentication, request/response
// serialization and the endpoint table.
//
// # Client Creation
//
// The package provides two ways to create a client:
//
//   - [NewClient]: Struct-based configuration for explicit, type-safe setup.
//   - [New]: Functional options pattern for flexible configuration.
//
// Both require a secret key, which is sent via the X-Tebex-Secret header on
// every request.
//
// # Executing Requests
//
// [Execute] sends one request and hands the raw body to a [Transform]. There
// is no retry: a network error, a timeout or a non-2xx status fails the call
// immediately with an INVALID_REQUEST error from package apierrors. Errors
// returned by the transform are passed through unchanged.
//
//	pkgs, err := api.Execute(ctx, client, api.Request{Path: api.Packages.Path()},
//	    api.Decode(func(w []api.PackageDTO) ([]Package, error) { ... }))
//
// # Loose JSON
//
// The upstream service is inconsistent about value types. [Time], [UnixTime],
// [Bool], [Int], [String] and [Totals] accept every form observed in
// practice so the wire structs can be decoded with encoding/json directly.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
