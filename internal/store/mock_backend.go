package store

import "errors"

// MockBackend is a simple in-memory backend for tests. FailPuts makes every
// Put fail, exercising the adapter's log-and-drop write policy.
type MockBackend struct {
	Data     map[string]string
	FailPuts bool
}

// NewMockBackend creates an empty in-memory backend.
func NewMockBackend() *MockBackend {
	return &MockBackend{Data: make(map[string]string)}
}

func (b *MockBackend) Get(key string) (string, bool, error) {
	v, ok := b.Data[key]
	return v, ok, nil
}

func (b *MockBackend) Put(key, value string) error {
	if b.FailPuts {
		return errors.New("mock backend: puts disabled")
	}
	b.Data[key] = value
	return nil
}

func (b *MockBackend) Delete(key string) error {
	delete(b.Data, key)
	return nil
}

func (b *MockBackend) Close() error {
	return nil
}

// NewMockStore creates an in-memory store for tests.
func NewMockStore() *Adapter {
	return NewAdapter(NewMockBackend(), nil)
}
