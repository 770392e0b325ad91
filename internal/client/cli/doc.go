// Package cli provides the interactive diary command-line client.
//
// It wires configuration, the local session database, the API services and
// the diary controller, then runs a REPL that forwards user commands to the
// controller and renders its view.
//
// Key features:
//   - Register / Login / Logout, with the session kept between runs
//   - Add multi-line entries, list and delete them
//   - Filter the list by year and month
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
