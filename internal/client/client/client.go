package client

import (
	"context"

	"github.com/rohithreddygundreddy/flask-frontend/internal/client/models"
)

// Client is the API contract against the portal backend. One method per
// remote operation; each maps the call to a normalized result.
type Client interface {
	Close() error

	// Ping is a liveness probe of the API root. Single attempt, the
	// caller decides what to show.
	Ping(ctx context.Context) error

	// Login exchanges credentials for a bearer token and a user snapshot.
	Login(ctx context.Context, username string, password []byte) (string, *models.User, error)

	// Register creates an account. Success also authenticates: the
	// returned token is immediately usable without a login round-trip.
	Register(ctx context.Context, username, email string, password []byte) (string, *models.User, error)

	// Profile fetches the authenticated user's snapshot. The credential
	// is sent as a bearer authorization header.
	Profile(ctx context.Context, credential string) (*models.User, error)

	// Users fetches the roster of all registered users. Unauthenticated.
	Users(ctx context.Context) ([]models.User, error)
}
