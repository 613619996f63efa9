package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// JSONBackend keeps all keys in a single JSON file, loaded once and rewritten
// atomically (tmp + rename) on every put. This is the default backend and the
// analogue of a browser-local key-value store: one shared mutable file,
// last-writer-wins across processes.
type JSONBackend struct {
	path string
	mu   sync.RWMutex
	data map[string]string
}

// NewJSONBackend opens or creates the store file at path.
func NewJSONBackend(path string) (*JSONBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	b := &JSONBackend{path: path, data: make(map[string]string)}
	if err := b.load(); err != nil {
		// Unreadable state file: start empty rather than failing. The
		// adapter layer reports per-key fallbacks; this covers whole-file
		// corruption.
		b.data = make(map[string]string)
	}
	return b, nil
}

// Path returns the backing file path, for external-change watchers.
func (b *JSONBackend) Path() string {
	return b.path
}

func (b *JSONBackend) Get(key string) (string, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.data[key]
	return v, ok, nil
}

func (b *JSONBackend) Put(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[key] = value
	return b.flush()
}

func (b *JSONBackend) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.data[key]; !ok {
		return nil
	}
	delete(b.data, key)
	return b.flush()
}

func (b *JSONBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flush()
}

// Reload re-reads the backing file, picking up writes from other processes.
func (b *JSONBackend) Reload() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.load()
}

func (b *JSONBackend) load() error {
	raw, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read store file: %w", err)
	}
	data := make(map[string]string)
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("unmarshal store file: %w", err)
	}
	b.data = data
	return nil
}

// flush writes the whole map atomically. Callers hold the write lock.
func (b *JSONBackend) flush() error {
	raw, err := json.MarshalIndent(b.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store file: %w", err)
	}
	tmpPath := b.path + ".tmp"
	if err := os.WriteFile(tmpPath, raw, 0644); err != nil {
		return fmt.Errorf("write temporary store file: %w", err)
	}
	if err := os.Rename(tmpPath, b.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}

// NewJSONStore opens a JSON-file-backed store at path.
func NewJSONStore(path string) (*Adapter, *JSONBackend, error) {
	backend, err := NewJSONBackend(path)
	if err != nil {
		return nil, nil, err
	}
	return NewAdapter(backend, nil), backend, nil
}
