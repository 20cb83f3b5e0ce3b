package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ldbpro/ldbpro-cli/pkg/models"
)

const (
	// PageKey holds the serialized page document
	PageKey = "ldbproPageData"

	// ThemeKey holds the theme preference
	ThemeKey = "theme"
)

// Store is the persistence service. Failures are logged and swallowed so a
// broken backend never interrupts editing.
type Store struct {
	backend Backend
	logger  *slog.Logger
}

// NewStore wraps backend. A nil logger uses slog.Default().
func NewStore(backend Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		backend: backend,
		logger:  logger.With("component", "storage"),
	}
}

// Open builds the backend configured in settings and wraps it in a Store
func Open(settings *models.Settings, logger *slog.Logger) (*Store, error) {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	backend, err := OpenBackend(settings.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	return NewStore(backend, logger), nil
}

// SavePage serializes page under PageKey. It reports whether the write
// succeeded; the error itself is only logged.
func (s *Store) SavePage(page models.PageDataModel) bool {
	data, err := json.Marshal(page)
	if err != nil {
		s.logger.Error("failed to serialize page", "error", err)
		return false
	}
	if err := s.backend.Set(PageKey, string(data)); err != nil {
		s.logger.Error("failed to save page", "key", PageKey, "bytes", len(data), "error", err)
		return false
	}
	s.logger.Debug("page saved", "components", len(page.Components), "bytes", len(data))
	return true
}

// LoadPage returns the stored page. ok is false when nothing usable is
// stored: the key is absent, the backend failed or the record is corrupt.
func (s *Store) LoadPage() (models.PageDataModel, bool) {
	raw, ok, err := s.backend.Get(PageKey)
	if err != nil {
		s.logger.Error("failed to load page", "key", PageKey, "error", err)
		return models.PageDataModel{}, false
	}
	if !ok {
		return models.PageDataModel{}, false
	}

	var page models.PageDataModel
	if err := json.Unmarshal([]byte(raw), &page); err != nil {
		s.logger.Warn("ignoring malformed page record", "key", PageKey, "error", err)
		return models.PageDataModel{}, false
	}
	if page.Components == nil {
		page.Components = []models.PageComponent{}
	}
	return page, true
}

// LoadPageOrNew returns the stored page or a fresh default one. A stored
// page with an empty name gets the default name back.
func (s *Store) LoadPageOrNew() models.PageDataModel {
	page, ok := s.LoadPage()
	if !ok {
		return models.NewPage()
	}
	if page.PageName == "" {
		page.PageName = models.DefaultPageName
	}
	return page
}

// SaveTheme stores the theme preference
func (s *Store) SaveTheme(theme models.Theme) bool {
	if err := s.backend.Set(ThemeKey, string(theme)); err != nil {
		s.logger.Error("failed to save theme", "theme", theme, "error", err)
		return false
	}
	return true
}

// LoadTheme returns the stored theme, dark when absent or unknown
func (s *Store) LoadTheme() models.Theme {
	raw, ok, err := s.backend.Get(ThemeKey)
	if err != nil {
		s.logger.Error("failed to load theme", "error", err)
		return models.ThemeDark
	}
	if !ok {
		return models.ThemeDark
	}
	return models.ParseTheme(raw)
}

// ClearPage removes the stored page
func (s *Store) ClearPage() bool {
	if err := s.backend.Delete(PageKey); err != nil {
		s.logger.Error("failed to clear page", "error", err)
		return false
	}
	return true
}

// Close closes the backend
func (s *Store) Close() error {
	return s.backend.Close()
}
