// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"eventhub/cli/internal/api"
	"eventhub/cli/internal/auth"
	"eventhub/cli/internal/backend"
	"eventhub/cli/internal/config"
	"eventhub/cli/internal/environment"
	apperrors "eventhub/cli/internal/errors"
	"eventhub/cli/internal/keychain"
	"eventhub/cli/internal/logging"
	"eventhub/cli/internal/xdg"
)

// app holds everything a command needs. It is built once per invocation and
// carried in the command context.
type app struct {
	cfg      config.Config
	log      *pterm.Logger
	session  *auth.Manager
	resolver environment.Resolver
	api      backend.API
}

type appKey struct{}

func withApp(ctx context.Context, a *app) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, appKey{}, a)
}

// appFrom returns the app set up by the root command's pre-run.
func appFrom(cmd *cobra.Command) *app {
	if a, ok := cmd.Context().Value(appKey{}).(*app); ok {
		return a
	}
	panic("eventhub: command ran without app context")
}

// openStore opens the session store selected by cfg. Tests replace it.
var openStore = func(cfg config.Config) (auth.Store, error) {
	dir, err := xdg.StateDir()
	if err != nil {
		return nil, err
	}
	return keychain.Open(keychain.Options{
		Backend:      cfg.SessionBackend,
		FileDir:      dir,
		FilePassword: cfg.KeyringPassword,
	})
}

// newHTTPClient builds the client used for every API call. Tests replace it.
var newHTTPClient = func() *http.Client {
	return &http.Client{Timeout: api.DefaultTimeout}
}

func setupApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ConfigInvalid, "load configuration", err)
	}
	if f := cmd.Flags().Lookup("env"); f != nil && f.Changed {
		cfg.Environment = envFlag
	}
	if verboseFlag {
		cfg.LogLevel = "debug"
	}

	store, err := openStore(cfg)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.SessionStore, "open session store", err)
	}
	return newApp(cfg, store, logging.New(os.Stderr, cfg.LogLevel)), nil
}

// newApp wires the session manager into the executor as its token source.
func newApp(cfg config.Config, store auth.Store, log *pterm.Logger) *app {
	session := auth.NewManager(store)
	resolver := environment.Resolver{Env: cfg.Environment, Override: cfg.APIURL}
	exec := api.NewExecutor(session, api.WithHTTPClient(newHTTPClient()), api.WithLogger(log))
	client := api.NewClient(exec, resolver.BaseURL)

	log.Debug("configured", log.Args(
		"environment", valueOr(cfg.Environment, "production"),
		"base_url", resolver.BaseURL(),
		"session_backend", cfg.SessionBackend,
	))

	return &app{
		cfg:      cfg,
		log:      log,
		session:  session,
		resolver: resolver,
		api:      backend.New(client),
	}
}

func valueOr(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
