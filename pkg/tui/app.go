package tui

import (
	"log/slog"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ldbpro/ldbpro-cli/pkg/designer"
	"github.com/ldbpro/ldbpro-cli/pkg/models"
	"github.com/ldbpro/ldbpro-cli/pkg/storage"
)

type sessionState int

const (
	builderView sessionState = iota
	galleryView
	formView
	exportView
)

// writeClipboard is swapped out in tests
var writeClipboard = clipboard.WriteAll

// Options configures the app
type Options struct {
	Designer *designer.Designer
	Store    *storage.Store
	Settings *models.Settings
	Logger   *slog.Logger
	Version  string
}

// env is the state shared by every view
type env struct {
	designer    *designer.Designer
	store       *storage.Store
	settings    *models.Settings
	logger      *slog.Logger
	version     string
	scheduler   *Scheduler
	status      *StatusManager
	theme       models.Theme
	styles      Styles
	showPreview bool
	saveFailed  bool
	width       int
	height      int
}

// quit drops pending timers before the program exits
func (e *env) quit() tea.Cmd {
	e.scheduler.CancelAll()
	return tea.Quit
}

// setTheme switches the palette and persists the choice
func (e *env) setTheme(theme models.Theme) {
	e.theme = theme
	e.styles = NewStyles(theme)
	if e.store != nil {
		e.store.SaveTheme(theme)
	}
}

type App struct {
	env     *env
	state   sessionState
	builder *BuilderModel
	gallery *GalleryModel
	form    *FormModel
	export  *ExportModel
}

// NewApp wires the views around opts.Designer. When a store is given the
// app saves the page after every change and reads the theme from it.
func NewApp(opts Options) *App {
	settings := opts.Settings
	if settings == nil {
		settings = models.DefaultSettings()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	d := opts.Designer
	if d == nil {
		d = designer.New(models.NewPage())
	}

	theme := models.ParseTheme(settings.UI.Theme)
	if opts.Store != nil {
		theme = opts.Store.LoadTheme()
	}

	scheduler := NewScheduler()
	e := &env{
		designer:    d,
		store:       opts.Store,
		settings:    settings,
		logger:      logger.With("component", "tui"),
		version:     opts.Version,
		scheduler:   scheduler,
		status:      NewStatusManager(scheduler, settings.UI.ToastDuration()),
		theme:       theme,
		styles:      NewStyles(theme),
		showPreview: settings.UI.ShowPreview,
	}

	if opts.Store != nil {
		d.OnChange(func(page models.PageDataModel) {
			// The store logs the cause; the view only needs to know
			if !opts.Store.SavePage(page) {
				e.saveFailed = true
			}
		})
	}

	return &App{
		env:     e,
		state:   builderView,
		builder: NewBuilderModel(e),
		gallery: NewGalleryModel(e),
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	if a.env.saveFailed {
		a.env.saveFailed = false
		cmd = tea.Batch(cmd, a.env.status.ShowWarning("Changes could not be saved"))
	}
	return a, cmd
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.env.width = msg.Width
		a.env.height = msg.Height
		if a.form != nil {
			a.form.SetSize(msg.Width, msg.Height)
		}
		if a.export != nil {
			a.export.SetSize(msg.Width, msg.Height)
		}
		return nil

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a.env.quit()
		}

	case taskFiredMsg:
		t, ok := a.env.scheduler.Fire(msg)
		if !ok {
			return nil
		}
		switch t.kind {
		case taskClearToast:
			a.env.status.expire(t.id)
			return nil
		case taskDeleteComponent:
			cmd := a.builder.finishDelete(t)
			return tea.Batch(cmd, a.sync())
		}
		return nil

	case SwitchViewMsg:
		switch msg.view {
		case exportView:
			a.export = NewExportModel(a.env)
			a.state = exportView
		default:
			a.export = nil
			a.state = builderView
		}
		return a.sync()
	}

	// Route updates to the active view
	var cmd tea.Cmd
	switch a.state {
	case builderView:
		cmd = a.builder.Update(msg)
	case galleryView:
		cmd = a.gallery.Update(msg)
	case formView:
		if a.form != nil {
			cmd = a.form.Update(msg)
		}
	case exportView:
		if a.export != nil {
			cmd = a.export.Update(msg)
		}
	}

	return tea.Batch(cmd, a.sync())
}

// sync derives the visible view from the designer's editor and gallery
// state. Opening the editor builds a fresh form for the edited component.
func (a *App) sync() tea.Cmd {
	d := a.env.designer

	if d.GalleryOpen() {
		a.state = galleryView
		return nil
	}

	if idx, ok := d.Editing(); ok {
		if a.form == nil || a.form.index != idx || a.state != formView {
			a.form = NewFormModel(a.env, idx)
			a.state = formView
			a.builder.cursor = idx
			return a.form.Init()
		}
		return nil
	}

	a.form = nil
	if a.state == galleryView || a.state == formView {
		a.state = builderView
		a.builder.clampCursor()
	}
	return nil
}

func (a *App) View() string {
	if a.env.width == 0 || a.env.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.state {
	case galleryView:
		content = a.gallery.View()
	case formView:
		if a.form != nil {
			content = a.form.View()
		}
	case exportView:
		if a.export != nil {
			content = a.export.View()
		}
	default:
		content = a.builder.View()
	}

	if toast, ok := a.env.status.Current(); ok {
		content = lipgloss.JoinVertical(lipgloss.Left, content, a.renderToast(toast))
	}

	return content
}

func (a *App) renderToast(toast Toast) string {
	style := a.env.styles.Toast
	if toast.Type == StatusTypeWarning {
		style = a.env.styles.ToastWarning
	}
	text := toast.Message
	if toast.Undo && a.env.designer.CanUndo() {
		text += "  [u] Undo"
	}
	return style.Render(text)
}

// Theme returns the active theme
func (a *App) Theme() models.Theme {
	return a.env.theme
}

// SwitchViewMsg moves between the builder and the export preview
type SwitchViewMsg struct {
	view sessionState
}

// Run starts the full-screen program
func Run(opts Options) error {
	p := tea.NewProgram(NewApp(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
