package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/teamdesk/internal/config"
	"git.home.luguber.info/inful/teamdesk/internal/metrics"
	"git.home.luguber.info/inful/teamdesk/internal/session"
	"git.home.luguber.info/inful/teamdesk/internal/store"
)

// App wires the store and session manager for a single CLI invocation.
type App struct {
	Config  *config.Config
	Store   store.Store
	Manager *session.Manager

	// JSONBackend is set only for the JSON storage backend; the daemon's
	// store watcher needs the backing file.
	JSONBackend *store.JSONBackend
}

func newApp(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	switch cfg.Storage.Backend {
	case config.StorageSQLite:
		st, err := store.NewSQLiteStore(cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		app.Store = st
	default:
		st, backend, err := store.NewJSONStore(cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("open json store: %w", err)
		}
		app.Store = st
		app.JSONBackend = backend
	}

	app.Manager = session.NewManager(app.Store).WithAuthDelay(cfg.Auth.Delay())
	if cfg.Metrics.Enabled {
		app.Manager.WithRecorder(metrics.NewPrometheusRecorder(prometheus.NewRegistry()))
	}

	app.Manager.Resume()
	return app, nil
}

// RequireSession fails with a usable message when no session is active.
func (a *App) RequireSession() error {
	if a.Manager.Session() == nil {
		return fmt.Errorf("not signed in; run `teamdesk login` or `teamdesk register` first")
	}
	return nil
}

// Close releases the store.
func (a *App) Close() {
	if a.Store != nil {
		_ = a.Store.Close()
	}
}
