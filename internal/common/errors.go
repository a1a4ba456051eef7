// Package common defines shared constants and sentinel errors used across
// the estimator, the CLI and the quote server. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Archive errors. ErrArchiveOpen is the only failure that aborts a whole job.
	ErrArchiveOpen     = errors.New("archive cannot be opened")
	ErrArchiveTooLarge = errors.New("archive too large")
	ErrEntryTooLarge   = errors.New("archive entry too large")
	ErrNoArchive       = errors.New("no archive supplied")

	// ErrNoObjectStore is returned when the server runs without S3.
	ErrNoObjectStore = errors.New("object store disabled")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
