package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrRejected     = errors.New("archive rejected by server")
	ErrJobNotFound  = errors.New("job not found")
	ErrBadResponse  = errors.New("malformed server response")
)
