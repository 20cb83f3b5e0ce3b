package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ldbpro/ldbpro-cli/pkg/files"
	"github.com/ldbpro/ldbpro-cli/pkg/models"
)

// ParseLogLevel maps a settings value onto a slog level, defaulting to info
func ParseLogLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// SetupLogger installs the default slog logger. Records go to the log file
// inside the project directory since the TUI owns the terminal. Without a
// project, logs are discarded. The returned func closes the file.
func SetupLogger(settings *models.Settings) (*slog.Logger, func() error, error) {
	if settings == nil {
		settings = models.DefaultSettings()
	}

	var (
		w       io.Writer = io.Discard
		closeFn           = func() error { return nil }
	)

	if files.ProjectExists() && settings.Log.File != "" {
		path := files.ResolvePath(settings.Log.File)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLogLevel(settings.Log.Level),
	}))
	slog.SetDefault(logger)

	return logger, closeFn, nil
}
