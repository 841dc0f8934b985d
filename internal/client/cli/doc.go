// Package cli provides the interactive credkeeper command-line client.
//
// It wires configuration, the gRPC API client and a small REPL:
//   - register / login / logout
//   - delete (remove an account)
//   - ping (check server reachability)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
