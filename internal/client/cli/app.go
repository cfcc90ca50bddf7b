package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rohithreddygundreddy/flask-frontend/internal/client/client"
	"github.com/rohithreddygundreddy/flask-frontend/internal/client/config"
	"github.com/rohithreddygundreddy/flask-frontend/internal/client/repositories/metadata"
	"github.com/rohithreddygundreddy/flask-frontend/internal/client/services"
	"github.com/rohithreddygundreddy/flask-frontend/internal/client/session"
	"github.com/rohithreddygundreddy/flask-frontend/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the terminal client. It drives the session service from user
// commands and renders its notifications (it implements services.Notifier).
type App struct {
	config  *config.Config
	session services.SessionService
	db      *sql.DB
	reader  *bufio.Reader
	out     io.Writer
	log     logging.Logger

	mu       sync.Mutex
	userName string
	authOK   bool
	apiOK    bool
	apiKnown bool
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	ctx := context.Background()

	db, err := client.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := session.NewStore(metadata.NewSQLiteRepository(db))
	api := client.NewHTTPClient(cfg.ServerEndpointAddr, logger)

	a := &App{
		config: cfg,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		log:    logger,
	}
	a.session = services.NewSessionService(api, store, a, logger)
	return a, nil
}

// Run restores the session, probes the backend, starts the reachability
// watcher, and hands control to the REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)

	fmt.Fprintln(a.out, "Welcome to the customer portal CLI (type 'help' for commands)")

	// The probe and the session bootstrap are independent; run both before
	// showing the first prompt.
	var g errgroup.Group
	g.Go(func() error { return a.session.CheckReachability(ctx) })
	g.Go(func() error { return a.session.Bootstrap(ctx) })
	if err := g.Wait(); err != nil {
		a.log.Warn(ctx, "startup check failed", "error", err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartReachabilityWatcher(watchCtx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// StartReachabilityWatcher periodically probes the backend so the API
// indicator tracks reachability changes while the REPL is idle.
func (a *App) StartReachabilityWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			_ = a.session.CheckReachability(probeCtx)
			cancel()
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) Close(ctx context.Context) {
	if err := a.session.Close(ctx); err != nil {
		a.log.Warn(ctx, "error closing api client", "error", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(ctx, "error closing database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == services.StateAuthenticated
}

// getStatus builds the prompt suffix, e.g. "(alice online)".
func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.apiKnown {
		if a.apiOK {
			s += "online"
		} else {
			s += "offline"
		}
	}
	s = strings.TrimSpace(s)
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}
