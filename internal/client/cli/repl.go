package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Users(ctx context.Context) error
	Ping(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the portal CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account (logs in on success)
//	  - login          — authenticate
//	  - users | u      — list all registered users
//	  - ping           — probe the backend API
//	  - exit | quit    — leave the program
//
//	Logged in: the same, plus
//	  - profile | p    — show / refresh the profile
//	  - logout         — log out
//
// Errors returned by command handlers are ignored here; handlers report
// their own outcome. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("portal %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (p)rofile, (u)sers, ping, logout, exit")
			} else {
				printlnFn("Available commands: register, login, (u)sers, ping, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "p", "profile":
			_ = a.Profile(ctx)

		case "u", "users":
			_ = a.Users(ctx)

		case "ping":
			_ = a.Ping(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
