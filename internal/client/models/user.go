// Package models contains data structures shared by the client layers.
package models

// User is a read-only snapshot of an account as reported by the backend.
// It is always replaced wholesale from a server response, never mutated
// field by field.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	JoinedAt string `json:"created_at"`
}
