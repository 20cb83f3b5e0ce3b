package storage

import (
	"fmt"
	"sync"
)

// MemoryBackend keeps values in a map. A positive quota caps the total
// number of bytes across keys and values, like a browser store would.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string]string
	quota  int
}

// NewMemoryBackend creates an empty store. quota <= 0 means unlimited.
func NewMemoryBackend(quota int) *MemoryBackend {
	return &MemoryBackend{values: make(map[string]string), quota: quota}
}

// Get implements Backend
func (b *MemoryBackend) Get(key string) (string, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.values[key]
	return v, ok, nil
}

// Set implements Backend
func (b *MemoryBackend) Set(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.quota > 0 {
		used := 0
		for k, v := range b.values {
			if k != key {
				used += len(k) + len(v)
			}
		}
		if used+len(key)+len(value) > b.quota {
			return fmt.Errorf("set %q (%d bytes): %w", key, len(value), ErrQuotaExceeded)
		}
	}

	b.values[key] = value
	return nil
}

// Delete implements Backend
func (b *MemoryBackend) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.values, key)
	return nil
}

// Close implements Backend
func (b *MemoryBackend) Close() error {
	return nil
}

var _ Backend = (*MemoryBackend)(nil)
