// Package client contains the diary client's transport and storage bootstrap.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) for the
//     diary backend: SignIn, SignUp, ListNotes, CreateNote, DeleteNote.
//  2. A JSON-over-HTTP implementation (see HTTPClient). Authenticated calls
//     receive their headers from the caller on every request, so a header is
//     never cached past a logout.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations): an SQLite
//     database with embedded goose migrations, used for the session.
//
// # Error Handling
//
// Non-2xx responses to note calls become *RemoteError; a 401 additionally
// matches ErrUnauthorized with errors.Is. Rejected sign-in and sign-up calls
// become *AuthError carrying the message to show the user. Transport
// failures are returned wrapped.
package client
