package domain

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrTokenInvalid is returned for expired, malformed, or forged
	// access tokens.
	ErrTokenInvalid = errors.New("token is invalid")
)
