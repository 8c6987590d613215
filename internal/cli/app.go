// Package cli implements the interactive admin console: a small REPL that
// drives the session gate and the contact-form inbox.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/Aljenshin/portfolio-console/internal/auth"
	"github.com/Aljenshin/portfolio-console/internal/config"
	"github.com/Aljenshin/portfolio-console/internal/inbox"
	"github.com/Aljenshin/portfolio-console/internal/logging"
	"github.com/Aljenshin/portfolio-console/internal/storage"
)

// maxLoginAttempts bounds failed logins per console run. Attempt counting is
// a presentation concern; the gate itself only reports pass/fail.
const maxLoginAttempts = 3

type App struct {
	config *config.Config
	logger logging.Logger
	db     *storage.Database
	gate   *auth.Service
	inbox  *inbox.Store

	reader *bufio.Reader
	out    io.Writer

	failedLogins int
}

// NewApp wires the console together: logger, local database, session gate,
// and inbox. Both core components are passed in by reference everywhere they
// are needed; this is the single composition point that owns their lifecycle.
func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx := context.Background()

	db, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err.Error())
		return nil, err
	}

	cred := auth.Credential{
		ID:        cfg.OperatorID,
		Username:  cfg.OperatorUsername,
		Email:     cfg.OperatorEmail,
		Password:  cfg.OperatorPassword,
		CreatedAt: cfg.OperatorCreatedAt,
	}
	gate := auth.NewService(cred, db.Slots, cfg.SessionValidity, cfg.LoginDelay, logger)

	store := inbox.NewStore()
	if cfg.Demo {
		inbox.SeedDemo(store)
	}

	return &App{
		config: cfg,
		logger: logger,
		db:     db,
		gate:   gate,
		inbox:  store,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run restores any persisted session and hands control to the REPL.
func (a *App) Run(ctx context.Context) error {
	defer func() { _ = a.db.Close() }()

	if err := a.gate.Restore(ctx); err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.gate.IsAuthenticated()
}

func (a *App) status() string {
	if op := a.gate.Operator(); op != nil {
		return op.Username
	}
	return "logged out"
}
