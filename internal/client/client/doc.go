// Package client contains client-side building blocks for the customer
// portal CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the backend: Ping, Login, Register, Profile, Users.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that attaches
//     the bearer credential, tags every request with an X-Request-Id, and
//     normalizes failures before they cross the package boundary.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations)
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Every operation is single-shot and non-retrying, and never panics past
// its boundary. Transport faults (no response at all) wrap ErrUnavailable;
// server rejections become *ServerError carrying the HTTP status and the
// server's message. A 401 additionally matches ErrUnauthorized via
// errors.Is, which callers use to tell a revoked credential apart from a
// transient failure.
package client
