package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rohithreddygundreddy/flask-frontend/internal/client/models"
	"github.com/rohithreddygundreddy/flask-frontend/internal/client/services"
)

func newRenderApp() (*App, *bytes.Buffer) {
	var buf bytes.Buffer
	return &App{out: &buf}, &buf
}

func TestAuthStatusChanged(t *testing.T) {
	a, buf := newRenderApp()

	a.AuthStatusChanged(true)
	if !strings.Contains(buf.String(), "Auth: logged in") {
		t.Fatalf("unexpected output: %q", buf.String())
	}

	a.userName = "alice"
	buf.Reset()
	a.AuthStatusChanged(false)
	if !strings.Contains(buf.String(), "Auth: not logged in") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
	if a.userName != "" {
		t.Fatalf("user name not cleared on logout")
	}
}

func TestProfileUpdated(t *testing.T) {
	a, buf := newRenderApp()

	a.ProfileUpdated(&models.User{
		ID:       7,
		Username: "alice",
		Email:    "alice@example.org",
		JoinedAt: "2025-03-14T09:26:53Z",
	})

	out := buf.String()
	for _, want := range []string{"alice", "alice@example.org", "2025-03-14"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q: %q", want, out)
		}
	}
	if a.userName != "alice" {
		t.Fatalf("user name not cached for the prompt")
	}
}

func TestProfileUpdated_NilUser(t *testing.T) {
	a, buf := newRenderApp()
	a.ProfileUpdated(nil)
	if buf.Len() != 0 {
		t.Fatalf("nil user must render nothing, got %q", buf.String())
	}
}

func TestUserListLoaded(t *testing.T) {
	a, buf := newRenderApp()

	a.UserListLoaded([]models.User{
		{ID: 1, Username: "alice", Email: "a@example.org", JoinedAt: "2025-01-02"},
		{ID: 2, Username: "bob", Email: "b@example.org", JoinedAt: "2025-01-03"},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("want header plus two rows, got %q", buf.String())
	}
	if !strings.Contains(lines[1], "alice") || !strings.Contains(lines[2], "bob") {
		t.Fatalf("server order not preserved: %q", buf.String())
	}
}

func TestUserListLoaded_Empty(t *testing.T) {
	a, buf := newRenderApp()
	a.UserListLoaded(nil)
	if !strings.Contains(buf.String(), "No users found") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestAPIStatusChanged(t *testing.T) {
	a, buf := newRenderApp()

	a.APIStatusChanged(true)
	if !strings.Contains(buf.String(), "API: connected") {
		t.Fatalf("unexpected output: %q", buf.String())
	}

	buf.Reset()
	a.APIStatusChanged(false)
	if !strings.Contains(buf.String(), "API: disconnected") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestShowMessage(t *testing.T) {
	a, buf := newRenderApp()
	a.ShowMessage("Invalid credentials", services.SeverityError)
	if !strings.Contains(buf.String(), "Invalid credentials") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestGetStatus(t *testing.T) {
	a, _ := newRenderApp()

	if got := a.getStatus(); got != "" {
		t.Fatalf("empty status expected before first probe, got %q", got)
	}

	a.apiKnown = true
	a.apiOK = true
	if got := a.getStatus(); got != "(online)" {
		t.Fatalf("want %q, got %q", "(online)", got)
	}

	a.userName = "alice"
	if got := a.getStatus(); got != "(alice online)" {
		t.Fatalf("want %q, got %q", "(alice online)", got)
	}

	a.apiOK = false
	if got := a.getStatus(); got != "(alice offline)" {
		t.Fatalf("want %q, got %q", "(alice offline)", got)
	}
}

func TestFormatJoined(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"2025-03-14T09:26:53Z", "2025-03-14"},
		{"2025-03-14 09:26:53", "2025-03-14"},
		{"2025-03-14", "2025-03-14"},
		{"not a date", "not a date"},
	}
	for _, tt := range tests {
		if got := formatJoined(tt.raw); got != tt.want {
			t.Fatalf("formatJoined(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
