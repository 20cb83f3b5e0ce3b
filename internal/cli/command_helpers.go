package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ldbpro/ldbpro-cli/pkg/designer"
	"github.com/ldbpro/ldbpro-cli/pkg/files"
	"github.com/ldbpro/ldbpro-cli/pkg/models"
	"github.com/ldbpro/ldbpro-cli/pkg/storage"
)

// CommandContext manages project validation and common command context
type CommandContext struct {
	ProjectPath string
	Settings    *models.Settings
	Logger      *slog.Logger
	store       *storage.Store
	validated   bool
}

// NewCommandContext creates a new command context
func NewCommandContext() *CommandContext {
	return &CommandContext{
		ProjectPath: files.LdbproDir,
		Logger:      slog.Default(),
	}
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	if _, err := os.Stat(c.ProjectPath); os.IsNotExist(err) {
		return fmt.Errorf("no .ldbpro directory found. Run 'ldbpro init' first")
	}

	c.validated = true
	return nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings()
	if err != nil {
		// Use default settings if can't read
		c.Logger.Debug("using default settings", "error", err)
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}

// Store opens the configured persistence backend once per command
func (c *CommandContext) Store() (*storage.Store, error) {
	if c.store != nil {
		return c.store, nil
	}
	if err := c.ValidateProject(); err != nil {
		return nil, err
	}

	store, err := storage.Open(c.LoadSettingsWithDefault(), c.Logger)
	if err != nil {
		return nil, err
	}
	c.store = store
	return store, nil
}

// LoadDesigner restores the stored page into a designer that saves itself
// after every change. Failed saves are reported on stderr, so it is meant
// for one-shot commands, not for the TUI.
func (c *CommandContext) LoadDesigner() (*designer.Designer, error) {
	store, err := c.Store()
	if err != nil {
		return nil, err
	}

	d := designer.New(store.LoadPageOrNew())
	d.OnChange(func(page models.PageDataModel) {
		if !store.SavePage(page) {
			PrintWarning("changes could not be saved, see the log for details")
		}
	})
	return d, nil
}

// Close releases the store
func (c *CommandContext) Close() error {
	if c.store == nil {
		return nil
	}
	err := c.store.Close()
	c.store = nil
	return err
}
