// Package cli provides the interactive userkeep command-line client.
//
// It wires configuration, logging, the JSON user store and the bookstore
// catalog into a small REPL:
//
//   - register / login against the user store
//   - logout of the current session
//   - addbook / books / findbook on the in-memory catalog
//
// The REPL is started via App.Run(ctx, args). When args name a command
// ("register <user>" or "login <user>"), that single command runs instead
// and the process exits.
package cli
