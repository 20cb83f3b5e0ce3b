// Package storage persists the page document and the theme preference in a
// key-value store. Backends are interchangeable: in-memory for tests, a
// directory of files or a SQLite database in production.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ldbpro/ldbpro-cli/pkg/files"
	"github.com/ldbpro/ldbpro-cli/pkg/models"
)

// ErrQuotaExceeded is returned when a value does not fit the backend's quota
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Backend is a string key-value store
type Backend interface {
	// Get returns ok=false when key has no value
	Get(key string) (value string, ok bool, err error)

	// Set replaces the value stored under key
	Set(key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error

	// Close releases backend resources
	Close() error
}

// OpenBackend builds the backend selected by the storage settings. Relative
// paths are resolved inside the project directory.
func OpenBackend(cfg models.StorageSettings) (Backend, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", "file":
		path := cfg.Path
		if path == "" {
			path = files.StoreDir
		}
		return NewFileBackend(files.ResolvePath(path))
	case "sqlite":
		path := cfg.Path
		if path == "" || path == files.StoreDir {
			path = "ldbpro.db"
		}
		return NewSQLiteBackend(files.ResolvePath(path))
	case "memory":
		return NewMemoryBackend(0), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s (must be file, sqlite or memory)", cfg.Backend)
	}
}
