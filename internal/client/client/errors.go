package client

import "errors"

var (
	ErrUnavailable          = errors.New("server unavailable")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrAlreadyExists        = errors.New("already exists")
	ErrIncorrectCredentials = errors.New("incorrect credentials")
	ErrUnexpected           = errors.New("unexpected server error")
)
