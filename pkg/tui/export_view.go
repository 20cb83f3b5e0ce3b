package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ldbpro/ldbpro-cli/pkg/export"
)

var previewFormats = []export.Format{export.FormatJSON, export.FormatXML, export.FormatHTML}

// ExportModel previews the export output with syntax highlighting
type ExportModel struct {
	env      *env
	format   int
	raw      string
	viewport viewport.Model
}

// NewExportModel renders the current page in the first format
func NewExportModel(e *env) *ExportModel {
	m := &ExportModel{env: e, viewport: viewport.New(0, 0)}
	m.SetSize(e.width, e.height)
	m.render()
	return m
}

// SetSize resizes the viewport below the title and tabs
func (m *ExportModel) SetSize(width, height int) {
	m.viewport.Width = width - 4
	h := height - ViewTitleHeight() - 6
	if h < 3 {
		h = 3
	}
	m.viewport.Height = h
}

func (m *ExportModel) render() {
	format := previewFormats[m.format]
	out, err := export.Render(m.env.designer.Snapshot(), format)
	if err != nil {
		m.raw = ""
		m.viewport.SetContent(m.env.styles.Error.Render(err.Error()))
		return
	}
	m.raw = out
	m.viewport.SetContent(export.Highlight(out, format, export.HighlightStyle(m.env.theme)))
	m.viewport.GotoTop()
}

func (m *ExportModel) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q", "v":
			return func() tea.Msg { return SwitchViewMsg{view: builderView} }

		case "tab", "right", "l":
			m.format = (m.format + 1) % len(previewFormats)
			m.render()
			return nil

		case "shift+tab", "left", "h":
			m.format = (m.format - 1 + len(previewFormats)) % len(previewFormats)
			m.render()
			return nil

		case "y", "c":
			if err := writeClipboard(m.raw); err != nil {
				m.env.logger.Warn("clipboard copy failed", "error", err)
				return m.env.status.ShowWarning("Could not copy to clipboard")
			}
			name := strings.ToUpper(string(previewFormats[m.format]))
			return m.env.status.ShowSuccess(name + " copied to clipboard")
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *ExportModel) View() string {
	s := m.env.styles
	width := m.env.width
	page := m.env.designer.Snapshot()

	var b strings.Builder
	b.WriteString(NewViewTitle("Export preview", s).ViewWithAlignment(width))
	b.WriteString("\n\n")

	var tabs []string
	for i, f := range previewFormats {
		label := " " + export.FileName(page.PageName, f) + " "
		if i == m.format {
			tabs = append(tabs, s.Selected.Render(label))
		} else {
			tabs = append(tabs, s.Description.Render(label))
		}
	}
	b.WriteString(s.ContentPadding.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...)))
	b.WriteString("\n")

	b.WriteString(s.ContentPadding.Render(s.ActiveBorder.Render(m.viewport.View())))
	b.WriteString("\n")
	b.WriteString(s.ContentPadding.Render(s.Help.Render("tab switch format • ↑/↓ scroll • y copy • esc back")))
	return b.String()
}
