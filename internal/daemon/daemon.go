// Package daemon provides the optional reminder daemon: a periodic
// overdue-task scan plus a store-file watcher that picks up writes from
// other processes. The daemon only observes; it never mutates domain state
// and never changes an operation's outcome.
package daemon

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/teamdesk/internal/session"
	"git.home.luguber.info/inful/teamdesk/internal/store"
)

// Daemon runs the reminder scheduler and, when the store is file-backed,
// the external-change watcher.
type Daemon struct {
	manager   *session.Manager
	scheduler *Scheduler
	watcher   *StoreWatcher
}

// New assembles a daemon for an authenticated manager. backend may be nil
// when the store has no watchable file (e.g. SQLite), in which case only the
// scheduler runs.
func New(manager *session.Manager, backend *store.JSONBackend, opts SchedulerOptions) (*Daemon, error) {
	sched, err := NewScheduler(manager, opts)
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	d := &Daemon{manager: manager, scheduler: sched}

	if backend != nil {
		w, err := NewStoreWatcher(backend, manager)
		if err != nil {
			sched.Stop()
			return nil, fmt.Errorf("create store watcher: %w", err)
		}
		d.watcher = w
	}
	return d, nil
}

// Run starts the daemon and blocks until ctx is canceled.
func (d *Daemon) Run(ctx context.Context) error {
	d.scheduler.Start()
	if d.watcher != nil {
		if err := d.watcher.Start(ctx); err != nil {
			d.scheduler.Stop()
			return err
		}
	}

	<-ctx.Done()

	if d.watcher != nil {
		d.watcher.Stop()
	}
	return d.scheduler.Stop()
}
