// Package cli provides the interactive authkeeper command-line client.
//
// It wires configuration, the gRPC API client and a small REPL that exercises
// every RPC of the auth service: account creation, password login and restore,
// session refresh, link token generation and the Telegram link, login and
// sign-out calls.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
