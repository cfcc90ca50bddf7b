package cli

import (
	"fmt"
	"time"

	"github.com/rohithreddygundreddy/flask-frontend/internal/client/models"
	"github.com/rohithreddygundreddy/flask-frontend/internal/client/services"
)

// The App is the rendering layer: the session service pushes state changes
// through these callbacks and never touches the terminal itself.

func (a *App) AuthStatusChanged(authenticated bool) {
	a.mu.Lock()
	a.authOK = authenticated
	if !authenticated {
		a.userName = ""
	}
	a.mu.Unlock()

	if authenticated {
		fmt.Fprintln(a.out, "Auth: logged in")
	} else {
		fmt.Fprintln(a.out, "Auth: not logged in")
	}
}

func (a *App) ProfileUpdated(user *models.User) {
	if user == nil {
		return
	}
	a.mu.Lock()
	a.userName = user.Username
	a.mu.Unlock()

	fmt.Fprintf(a.out, "ID:       %d\n", user.ID)
	fmt.Fprintf(a.out, "Username: %s\n", user.Username)
	fmt.Fprintf(a.out, "Email:    %s\n", user.Email)
	fmt.Fprintf(a.out, "Joined:   %s\n", formatJoined(user.JoinedAt))
}

func (a *App) UserListLoaded(users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users found")
		return
	}
	fmt.Fprintln(a.out, "ID\tUsername\tEmail\tJoined")
	for _, u := range users {
		fmt.Fprintf(a.out, "%d\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, formatJoined(u.JoinedAt))
	}
}

func (a *App) APIStatusChanged(reachable bool) {
	a.mu.Lock()
	a.apiOK = reachable
	a.apiKnown = true
	a.mu.Unlock()

	if reachable {
		fmt.Fprintln(a.out, "API: connected")
	} else {
		fmt.Fprintln(a.out, "API: disconnected")
	}
}

func (a *App) ShowMessage(msg string, severity services.Severity) {
	fmt.Fprintf(a.out, "[%s] %s\n", severity, msg)
}

// formatJoined renders the server's created_at value as a date. The raw
// value is shown unchanged when it is in an unexpected format.
func formatJoined(raw string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return raw
}
