// Package common defines shared constants and sentinel errors used across
// client and server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal             = errors.New("internal error")
	ErrorIncorrectCredentials = errors.New("incorrect credentials")
	ErrorUnauthenticated      = errors.New("unauthenticated")

	// Token errors (bad signature, malformed payload, missing claim).
	ErrInvalidToken = errors.New("invalid token")
)
