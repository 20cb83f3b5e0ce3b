package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ldbpro/ldbpro-cli/pkg/models"
)

const (
	LdbproDir    = ".ldbpro"
	SettingsFile = "settings.yaml"
	StoreDir     = "store"
	ExportsDir   = "exports"
)

// ProjectPath joins elem onto the project directory
func ProjectPath(elem ...string) string {
	return filepath.Join(append([]string{LdbproDir}, elem...)...)
}

// ProjectExists reports whether the project directory is present
func ProjectExists() bool {
	info, err := os.Stat(LdbproDir)
	return err == nil && info.IsDir()
}

func InitProjectStructure() error {
	dirs := []string{
		LdbproDir,
		ProjectPath(StoreDir),
		ProjectPath(ExportsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// Write default settings only if none exist yet
	if _, err := os.Stat(ProjectPath(SettingsFile)); errors.Is(err, os.ErrNotExist) {
		if err := WriteSettings(models.DefaultSettings()); err != nil {
			return err
		}
	}

	return nil
}

// ReadSettings loads the settings file. Missing keys keep their defaults.
func ReadSettings() (*models.Settings, error) {
	return ReadSettingsFrom(ProjectPath(SettingsFile))
}

// ReadSettingsFrom loads settings from path
func ReadSettingsFrom(path string) (*models.Settings, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML %s: %w", path, err)
	}

	return settings, nil
}

// WriteSettings stores settings in the project directory
func WriteSettings(settings *models.Settings) error {
	return WriteSettingsTo(ProjectPath(SettingsFile), settings)
}

// WriteSettingsTo stores settings at path
func WriteSettingsTo(path string, settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := AtomicWriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}

	return nil
}

// LoadSettingsOrDefault reads the settings file, falling back to defaults
func LoadSettingsOrDefault() *models.Settings {
	settings, err := ReadSettings()
	if err != nil {
		return models.DefaultSettings()
	}
	return settings
}

// ResolvePath places relative paths inside the project directory
func ResolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return ProjectPath(path)
}
