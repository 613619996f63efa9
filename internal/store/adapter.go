package store

import (
	"encoding/json"
	"log/slog"
)

// Backend is the raw text key-value layer an Adapter sits on. Implementations
// report their own failures; the Adapter decides how failures degrade.
type Backend interface {
	// Get returns the stored text for key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)

	// Put stores text under key, replacing any previous value.
	Put(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	Close() error
}

// Adapter implements Store over any Backend, owning the JSON codec and the
// fail-soft read / log-only write policy.
type Adapter struct {
	backend Backend
	logger  *slog.Logger
}

// NewAdapter wraps a backend. A nil logger falls back to slog.Default.
func NewAdapter(backend Backend, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{backend: backend, logger: logger}
}

// Close closes the underlying backend.
func (a *Adapter) Close() error {
	return a.backend.Close()
}

// read unmarshals the value at key into out. It returns false on a missing
// key, a backend failure, or malformed content; the caller supplies the
// default in that case.
func (a *Adapter) read(key string, out any) bool {
	raw, ok, err := a.backend.Get(key)
	if err != nil {
		a.logger.Warn("storage read failed, using default", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		a.logger.Warn("storage value malformed, using default", "key", key, "error", err)
		return false
	}
	return true
}

// write marshals v and stores it under key. Failures are logged and dropped;
// in-memory state remains the only record of the change.
func (a *Adapter) write(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		a.logger.Error("storage value not serializable", "key", key, "error", err)
		return
	}
	if err := a.backend.Put(key, string(raw)); err != nil {
		a.logger.Error("storage write failed, change not persisted", "key", key, "error", err)
	}
}
