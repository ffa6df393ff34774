// Package client talks to the authkeeper gRPC service on behalf of the CLI.
//
// GRPCClient keeps the current session token and attaches it to every call
// as "<marker><token>" under the configured metadata key. Response bodies
// carry domain failures as an ErrorStatus; these are turned into the sentinel
// errors ErrAlreadyExists, ErrIncorrectCredentials, ErrUnauthorized and
// ErrUnexpected. Transport failures map to ErrUnavailable or ErrUnauthorized.
package client
