package cli

import (
	"context"
)

// Profile fetches and shows the authenticated user's profile. The fresh
// snapshot is rendered through the notifier callbacks.
func (a *App) Profile(ctx context.Context) error {
	return a.session.RefreshProfile(ctx)
}

// Users lists all registered users in server order.
func (a *App) Users(ctx context.Context) error {
	return a.session.LoadUsers(ctx)
}

// Ping probes the backend API once and updates the reachability indicator.
func (a *App) Ping(ctx context.Context) error {
	return a.session.CheckReachability(ctx)
}
