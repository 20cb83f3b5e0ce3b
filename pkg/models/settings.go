package models

import "time"

// Theme names the TUI colour palette
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme maps a stored value onto a known theme, falling back to dark
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

// Toggle returns the other theme
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Settings represents the application configuration
type Settings struct {
	Storage StorageSettings `yaml:"storage"`
	Export  ExportSettings  `yaml:"export"`
	UI      UISettings      `yaml:"ui"`
	Log     LogSettings     `yaml:"log"`
}

// StorageSettings selects the key-value backend behind the persistence service
type StorageSettings struct {
	Backend string `yaml:"backend"` // "file", "sqlite" or "memory"
	Path    string `yaml:"path"`
}

// ExportSettings controls where and how documents are exported
type ExportSettings struct {
	Dir     string   `yaml:"dir"`
	Formats []string `yaml:"formats"`
}

// UISettings controls UI preferences
type UISettings struct {
	Theme                  string `yaml:"theme"`
	ShowPreview            bool   `yaml:"show_preview"`
	ToastMillis            int    `yaml:"toast_ms"`
	DeleteTransitionMillis int    `yaml:"delete_transition_ms"`
}

// LogSettings controls the log file
type LogSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ToastDuration returns how long notifications stay visible
func (u UISettings) ToastDuration() time.Duration {
	if u.ToastMillis <= 0 {
		return 3 * time.Second
	}
	return time.Duration(u.ToastMillis) * time.Millisecond
}

// DeleteTransition returns the delay between a delete request and removal
func (u UISettings) DeleteTransition() time.Duration {
	if u.DeleteTransitionMillis < 0 {
		return 0
	}
	if u.DeleteTransitionMillis == 0 {
		return 240 * time.Millisecond
	}
	return time.Duration(u.DeleteTransitionMillis) * time.Millisecond
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Storage: StorageSettings{
			Backend: "file",
			Path:    "store",
		},
		Export: ExportSettings{
			Dir:     "./",
			Formats: []string{"json", "xml"},
		},
		UI: UISettings{
			Theme:                  string(ThemeDark),
			ShowPreview:            true,
			ToastMillis:            3000,
			DeleteTransitionMillis: 240,
		},
		Log: LogSettings{
			Level: "info",
			File:  "ldbpro.log",
		},
	}
}
