// Package services contains the application services for the portal CLI.
// This file defines the session service: the single place where API
// outcomes are interpreted and turned into session-state transitions.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rohithreddygundreddy/flask-frontend/internal/client/client"
	"github.com/rohithreddygundreddy/flask-frontend/internal/client/models"
	"github.com/rohithreddygundreddy/flask-frontend/internal/client/session"
	"github.com/rohithreddygundreddy/flask-frontend/internal/logging"
)

// State is the authentication state of the client.
type State string

const (
	// StateUnauthenticated: no credential held.
	StateUnauthenticated State = "unauthenticated"
	// StatePendingValidation: a credential was loaded from storage but has
	// not been confirmed by the server yet.
	StatePendingValidation State = "pending"
	// StateAuthenticated: the server accepted the credential.
	StateAuthenticated State = "authenticated"
)

// Severity classifies a transient status message.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier receives view-refresh callbacks. Rendering is a leaf consumer:
// it never sees raw API results, only these notifications.
type Notifier interface {
	AuthStatusChanged(authenticated bool)
	ProfileUpdated(user *models.User)
	UserListLoaded(users []models.User)
	APIStatusChanged(reachable bool)
	ShowMessage(msg string, severity Severity)
}

// SessionService defines the operations the view layer may trigger.
//
// Contract:
//   - Bootstrap: load the stored credential and validate it against the
//     server (profile fetch).
//   - Login / Register: authenticate and persist the credential.
//   - Logout: clear the session unconditionally.
//   - RefreshProfile: re-fetch the authenticated user's snapshot.
//   - LoadUsers: fetch the roster; independent of auth state.
//   - CheckReachability: probe the API root, notify on change.
//
// All methods honor context cancellation and report their outcome through
// the Notifier; returned errors are for logging and tests.
type SessionService interface {
	Bootstrap(ctx context.Context) error
	Login(ctx context.Context, username string, password []byte) error
	Register(ctx context.Context, username, email string, password []byte) error
	Logout(ctx context.Context) error
	RefreshProfile(ctx context.Context) error
	LoadUsers(ctx context.Context) error
	CheckReachability(ctx context.Context) error
	State() State
	Close(ctx context.Context) error
}

// sessionService is the concrete SessionService backed by a remote Client
// and the local session store.
//
// The reconciliation policy lives here and nowhere else: a 401 on a
// profile fetch is the sole trigger for a forced logout. Transport faults
// and other rejections surface a transient message and leave the session
// untouched, so a flaky network can never destroy a valid session.
type sessionService struct {
	api    client.Client
	store  *session.Store
	notify Notifier
	log    logging.Logger

	mu        sync.Mutex
	state     State
	gen       uint64
	reachable *bool
}

// NewSessionService constructs a SessionService bound to the given API
// client, session store, and view notifier.
func NewSessionService(api client.Client, store *session.Store, notify Notifier, log logging.Logger) SessionService {
	return &sessionService{
		api:    api,
		store:  store,
		notify: notify,
		log:    log,
		state:  StateUnauthenticated,
	}
}

func (s *sessionService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Bootstrap loads a previously persisted credential. If one is present the
// session enters pending validation and a profile fetch decides whether it
// is still accepted; otherwise the session starts out unauthenticated.
func (s *sessionService) Bootstrap(ctx context.Context) error {
	if err := s.store.Load(ctx); err != nil {
		return err
	}

	if !s.store.IsAuthenticated() {
		s.mu.Lock()
		s.state = StateUnauthenticated
		s.mu.Unlock()
		s.notify.AuthStatusChanged(false)
		return nil
	}

	s.mu.Lock()
	s.state = StatePendingValidation
	gen := s.gen
	s.mu.Unlock()
	s.notify.AuthStatusChanged(true)

	return s.validateProfile(ctx, gen)
}

// Login authenticates against the server and, on success, persists the
// credential and stores the user snapshot.
func (s *sessionService) Login(ctx context.Context, username string, password []byte) error {
	token, user, err := s.api.Login(ctx, username, password)
	if err != nil {
		s.notify.ShowMessage(failureMessage(err, "Login failed"), SeverityError)
		return err
	}
	return s.establish(ctx, token, user, "Login successful!")
}

// Register creates an account; success authenticates immediately with the
// token from the register response.
func (s *sessionService) Register(ctx context.Context, username, email string, password []byte) error {
	token, user, err := s.api.Register(ctx, username, email, password)
	if err != nil {
		s.notify.ShowMessage(failureMessage(err, "Registration failed"), SeverityError)
		return err
	}
	return s.establish(ctx, token, user, "Registration successful! You are now logged in.")
}

func (s *sessionService) establish(ctx context.Context, token string, user *models.User, successMsg string) error {
	if err := s.store.SetAuthenticated(ctx, token, user); err != nil {
		s.notify.ShowMessage("Failed to save session: "+err.Error(), SeverityError)
		return err
	}

	s.mu.Lock()
	s.gen++
	s.state = StateAuthenticated
	s.mu.Unlock()

	s.notify.AuthStatusChanged(true)
	s.notify.ProfileUpdated(user)
	s.notify.ShowMessage(successMsg, SeveritySuccess)
	return nil
}

// Logout clears the session unconditionally, regardless of any in-flight
// request outcome.
func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		s.notify.ShowMessage("Failed to clear session: "+err.Error(), SeverityError)
		return err
	}

	s.mu.Lock()
	s.gen++
	s.state = StateUnauthenticated
	s.mu.Unlock()

	s.notify.AuthStatusChanged(false)
	s.notify.ShowMessage("Logged out successfully", SeverityInfo)
	return nil
}

// RefreshProfile re-fetches the authenticated user's snapshot. A no-op
// when no credential is held.
func (s *sessionService) RefreshProfile(ctx context.Context) error {
	if !s.store.IsAuthenticated() {
		return nil
	}
	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()
	return s.validateProfile(ctx, gen)
}

// validateProfile fetches the profile with the held credential and applies
// the reconciliation policy. gen pins the session generation the fetch was
// started under; if the credential changed while the request was in flight
// (login, logout), the response is stale and is discarded.
func (s *sessionService) validateProfile(ctx context.Context, gen uint64) error {
	user, err := s.api.Profile(ctx, s.store.Credential())
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			// The server no longer accepts the credential. This is the
			// only failure that clears it.
			s.handleRevoked(ctx, gen)
			return nil
		}
		s.notify.ShowMessage(failureMessage(err, "Failed to load profile"), SeverityError)
		return err
	}

	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		s.log.Debug(ctx, "discarding stale profile response", "generation", gen)
		return nil
	}
	s.state = StateAuthenticated
	s.mu.Unlock()

	s.store.SetUser(user)
	s.notify.ProfileUpdated(user)
	s.notify.ShowMessage("Profile loaded successfully", SeveritySuccess)
	return nil
}

// handleRevoked performs the forced logout after a server-confirmed 401.
func (s *sessionService) handleRevoked(ctx context.Context, gen uint64) {
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return
	}
	s.gen++
	s.state = StateUnauthenticated
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear revoked session", "error", err)
	}
	s.notify.AuthStatusChanged(false)
	s.notify.ShowMessage("Session expired. Please log in again.", SeverityError)
}

// LoadUsers fetches the full roster. Works in any auth state; the list is
// delivered to the view wholesale, in server order.
func (s *sessionService) LoadUsers(ctx context.Context) error {
	users, err := s.api.Users(ctx)
	if err != nil {
		s.notify.ShowMessage(failureMessage(err, "Failed to load users"), SeverityError)
		return err
	}
	s.notify.UserListLoaded(users)
	s.notify.ShowMessage(fmt.Sprintf("Loaded %d users", len(users)), SeveritySuccess)
	return nil
}

// CheckReachability probes the API root and notifies the view when the
// reachability indicator changes. The very first probe always notifies.
func (s *sessionService) CheckReachability(ctx context.Context) error {
	err := s.api.Ping(ctx)
	ok := err == nil

	s.mu.Lock()
	changed := s.reachable == nil || *s.reachable != ok
	s.reachable = &ok
	s.mu.Unlock()

	if changed {
		s.notify.APIStatusChanged(ok)
		if !ok {
			s.notify.ShowMessage("Cannot connect to the backend API", SeverityError)
		}
	}
	return err
}

func (s *sessionService) Close(ctx context.Context) error {
	return s.api.Close()
}

// failureMessage maps a normalized API error to the transient message shown
// to the user: transport faults get a generic network hint, server
// rejections surface the server's own message.
func failureMessage(err error, fallback string) string {
	if errors.Is(err, client.ErrUnavailable) {
		return "Network error. Please check your connection and try again."
	}
	var se *client.ServerError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return fallback
}
