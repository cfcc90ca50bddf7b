package cli

import (
	"context"

	"github.com/rohithreddygundreddy/flask-frontend/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for a username and password and attempts to authenticate.
// The password byte slice is securely wiped before returning. The session
// service reports the outcome to the user; any error is returned unchanged.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	return a.session.Login(ctx, userName, password)
}

// Register prompts for a username, email, and password and attempts to
// create a new account. Success logs the user in immediately.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	return a.session.Register(ctx, userName, email, password)
}

// Logout clears the session, in memory and on disk.
func (a *App) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}
