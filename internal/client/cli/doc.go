// Package cli provides the interactive terminal client for the customer
// portal.
//
// It wires configuration, the local session database, the API client, and
// an interactive REPL. Typical flow: restore a persisted session, probe the
// backend, start a background reachability watcher, and execute user
// commands.
//
// Key commands:
//   - register / login / logout
//   - profile — show the authenticated user's profile
//   - users   — list all registered users
//   - ping    — probe the backend API
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// The App is also the rendering layer: it implements services.Notifier and
// turns session notifications into terminal output.
package cli
