// Package client holds the CLI's collaborators.
//
// GRPCClient talks to the quote server: it attaches the access token to
// every call through an interceptor and maps gRPC status codes to the
// sentinel errors ErrUnauthorized, ErrUnavailable, ErrRejected and
// ErrJobNotFound so callers can match them with errors.Is.
//
// InitDatabase opens the local SQLite history file and applies the embedded
// goose migrations.
package client
