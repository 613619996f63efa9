package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/teamdesk/internal/observability"
	"git.home.luguber.info/inful/teamdesk/internal/session"
	"git.home.luguber.info/inful/teamdesk/internal/store"
	"git.home.luguber.info/inful/teamdesk/internal/tenant"
)

// StoreWatcher monitors the JSON store file for writes by other processes.
// Concurrent writers race last-write-wins by contract; the watcher does not
// fix that, it reloads the in-memory collections and logs that it happened.
type StoreWatcher struct {
	storePath    string
	backend      *store.JSONBackend
	manager      *session.Manager
	watcher      *fsnotify.Watcher
	stopChan     chan struct{}
	reloadChan   chan struct{}
	debounceTime time.Duration
}

// NewStoreWatcher creates a watcher over the backend's store file.
func NewStoreWatcher(backend *store.JSONBackend, manager *session.Manager) (*StoreWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	absPath, err := filepath.Abs(backend.Path())
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("resolve store path: %w", err)
	}

	return &StoreWatcher{
		storePath:    absPath,
		backend:      backend,
		manager:      manager,
		watcher:      watcher,
		stopChan:     make(chan struct{}),
		reloadChan:   make(chan struct{}, 1),
		debounceTime: 1 * time.Second,
	}, nil
}

// Start begins monitoring the store file.
func (sw *StoreWatcher) Start(ctx context.Context) error {
	// Watch the directory; atomic rename writes replace the file node.
	storeDir := filepath.Dir(sw.storePath)
	if err := sw.watcher.Add(storeDir); err != nil {
		return fmt.Errorf("watch store directory %s: %w", storeDir, err)
	}

	slog.Info("starting store watcher", "store_path", sw.storePath)

	go sw.watchLoop(ctx)
	go sw.reloadLoop(ctx)
	return nil
}

// Stop stops the watcher.
func (sw *StoreWatcher) Stop() {
	close(sw.stopChan)
	_ = sw.watcher.Close()
}

func (sw *StoreWatcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-sw.stopChan:
			return
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != sw.storePath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case sw.reloadChan <- struct{}{}:
			default:
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("store watcher error", "error", err)
		}
	}
}

func (sw *StoreWatcher) reloadLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-sw.stopChan:
			return
		case <-sw.reloadChan:
			// Debounce rapid successive writes.
			timer := time.NewTimer(sw.debounceTime)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-sw.stopChan:
				timer.Stop()
				return
			case <-timer.C:
			}
			sw.reload(ctx)
		}
	}
}

func (sw *StoreWatcher) reload(ctx context.Context) {
	if t := tenant.FromSession(sw.manager.Session()); t != nil {
		ctx = tenant.WithTenant(ctx, t)
	}

	if err := sw.backend.Reload(); err != nil {
		observability.ErrorContext(ctx, "store reload failed", slog.Any("error", err))
		return
	}
	sw.manager.Reload()

	observability.InfoContext(ctx, "store file changed externally, collections reloaded",
		slog.String("store_path", sw.storePath))
}
