// Package session owns the client's authentication state: the bearer
// credential and the current-user snapshot. It is the single source of
// truth for "is the user logged in".
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/rohithreddygundreddy/flask-frontend/internal/client/models"
	"github.com/rohithreddygundreddy/flask-frontend/internal/client/repositories/metadata"
)

// credentialKey is the single durable key holding the bearer token.
// Absence means logged-out.
const credentialKey = "auth_token"

// Store pairs the in-memory session with a durable credential store.
//
// Invariant: a user snapshot is only ever present alongside a credential.
// A credential without a user is a valid transient state (loaded from disk
// but not yet validated against the server).
//
// Every mutation persists first and updates memory second, so a failed
// storage write reports an error and leaves the session unchanged.
type Store struct {
	repo metadata.Repository

	mu         sync.Mutex
	credential string
	user       *models.User
}

func NewStore(repo metadata.Repository) *Store {
	return &Store{repo: repo}
}

// Load reads a previously persisted credential from durable storage.
// It does not contact the network and is safe to call repeatedly; each
// call resets the user snapshot, since a loaded credential has not been
// validated yet.
func (s *Store) Load(ctx context.Context) error {
	cred, err := s.repo.Get(ctx, credentialKey)
	if err != nil {
		return fmt.Errorf("failed to load credential: %w", err)
	}
	s.mu.Lock()
	s.credential = cred
	s.user = nil
	s.mu.Unlock()
	return nil
}

// SetAuthenticated persists the credential and sets both session fields
// atomically. On a storage failure the in-memory session is left unchanged.
func (s *Store) SetAuthenticated(ctx context.Context, credential string, user *models.User) error {
	if err := s.repo.Set(ctx, credentialKey, credential); err != nil {
		return fmt.Errorf("failed to persist credential: %w", err)
	}
	s.mu.Lock()
	s.credential = credential
	s.user = user
	s.mu.Unlock()
	return nil
}

// SetUser replaces the user snapshot wholesale. Ignored when no credential
// is held, so the snapshot can never outlive the credential.
func (s *Store) SetUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.credential == "" {
		return
	}
	s.user = user
}

// Clear removes the persisted credential and resets the session to fully
// absent. Calling it when already cleared is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, credentialKey); err != nil {
		return fmt.Errorf("failed to remove credential: %w", err)
	}
	s.mu.Lock()
	s.credential = ""
	s.user = nil
	s.mu.Unlock()
	return nil
}

// IsAuthenticated reports whether a credential is held. This is a local
// fact only; the server may still reject the credential.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential != ""
}

func (s *Store) Credential() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential
}

func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}
