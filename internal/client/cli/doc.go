// Package cli provides the interactive HealthSync command-line client.
//
// It wires configuration and the HTTP API client into a small REPL:
//   - register / login / logout / refresh
//   - exercise and nutrition logging
//
// Passwords are read without echo and wiped after use. The REPL is started
// with App.Run(ctx), which blocks until the user exits.
package cli
