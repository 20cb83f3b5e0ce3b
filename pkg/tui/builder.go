package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ldbpro/ldbpro-cli/pkg/export"
	"github.com/ldbpro/ldbpro-cli/pkg/models"
	"github.com/ldbpro/ldbpro-cli/pkg/reorder"
)

const (
	appTitle    = "LDBPRO - Designer"
	appSubtitle = "Build modern, responsive web pages"
	previewRows = 3
)

// BuilderModel is the page view: the page name field and the ordered list
// of component cards
type BuilderModel struct {
	env     *env
	cursor  int
	offset  int
	gesture reorder.Gesture
	sorter  reorder.Sorter

	// exiting maps component ids to their pending delete task
	exiting map[string]int

	renaming  bool
	nameInput textinput.Model
	confirm   *ConfirmationModel
}

// NewBuilderModel creates the page view
func NewBuilderModel(e *env) *BuilderModel {
	ti := textinput.New()
	ti.Placeholder = models.DefaultPageName
	ti.CharLimit = 120
	ti.Prompt = ""

	return &BuilderModel{
		env:       e,
		sorter:    reorder.ArrayMove{},
		exiting:   make(map[string]int),
		nameInput: ti,
		confirm:   NewConfirmation(),
	}
}

func (m *BuilderModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.renaming {
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			return cmd
		}
		return nil
	}

	if m.confirm.Active() {
		return m.confirm.Update(keyMsg)
	}
	if m.renaming {
		return m.updateRename(keyMsg)
	}
	if m.gesture.Active() {
		return m.updateGrab(keyMsg)
	}

	d := m.env.designer

	switch keyMsg.String() {
	case "q":
		return m.env.quit()

	case "j", "down":
		m.moveCursor(1)

	case "k", "up":
		m.moveCursor(-1)

	case "g", "home":
		m.cursor = 0

	case "G", "end":
		m.cursor = d.Len() - 1
		m.clampCursor()

	case "K", "shift+up":
		return m.moveComponent(-1)

	case "J", "shift+down":
		return m.moveComponent(1)

	case " ", "space":
		if c, ok := d.Component(m.cursor); ok {
			m.gesture.Pick(c.ID)
			m.gesture.Hover(c.ID)
		}

	case "enter", "e":
		if d.Len() > 0 {
			_ = d.OpenEditor(m.cursor)
		}

	case "d", "delete":
		return m.startDelete()

	case "u":
		if d.UndoDelete() {
			return m.env.status.ShowSuccess("Deletion undone")
		}

	case "a", "+":
		d.OpenGallery()

	case "n":
		m.renaming = true
		m.nameInput.SetValue(d.PageName())
		m.nameInput.CursorEnd()
		return m.nameInput.Focus()

	case "x":
		return m.requestExport()

	case "v":
		return func() tea.Msg { return SwitchViewMsg{view: exportView} }

	case "y":
		return m.copyJSON()

	case "t":
		m.env.setTheme(m.env.theme.Toggle())
		if m.env.theme == models.ThemeLight {
			return m.env.status.ShowSuccess("Light mode")
		}
		return m.env.status.ShowSuccess("Dark mode")

	case "p":
		m.env.showPreview = !m.env.showPreview
	}

	return nil
}

// updateGrab handles keys while a component is picked up. Only cursor
// movement, drop and cancel are available.
func (m *BuilderModel) updateGrab(msg tea.KeyMsg) tea.Cmd {
	d := m.env.designer

	switch msg.String() {
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case " ", "space", "enter":
		activeID := m.gesture.ActiveID()
		ev := m.gesture.Drop()
		if d.Drop(m.sorter, ev) {
			m.cursor = d.IndexOf(activeID)
			return m.env.status.ShowSuccess("Component moved successfully!")
		}
		return nil
	case "esc":
		activeID := m.gesture.ActiveID()
		m.gesture.Cancel()
		m.cursor = d.IndexOf(activeID)
		m.clampCursor()
		return nil
	case "q":
		return m.env.quit()
	}

	if c, ok := d.Component(m.cursor); ok {
		m.gesture.Hover(c.ID)
	}
	return nil
}

func (m *BuilderModel) updateRename(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "esc", "tab":
		m.renaming = false
		m.nameInput.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	if v := m.nameInput.Value(); v != m.env.designer.PageName() {
		m.env.designer.SetPageName(v)
	}
	return cmd
}

func (m *BuilderModel) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *BuilderModel) clampCursor() {
	n := m.env.designer.Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *BuilderModel) moveComponent(dir int) tea.Cmd {
	if !m.env.designer.Move(m.cursor, dir) {
		return nil
	}
	m.cursor += dir
	return m.env.status.ShowSuccess("Component moved successfully!")
}

// startDelete marks the row as exiting and schedules the removal. A second
// delete on an exiting row is ignored.
func (m *BuilderModel) startDelete() tea.Cmd {
	c, ok := m.env.designer.Component(m.cursor)
	if !ok {
		return nil
	}
	if _, pending := m.exiting[c.ID]; pending {
		return nil
	}

	delay := m.env.settings.UI.DeleteTransition()
	if delay <= 0 {
		return m.deleteNow(c.ID)
	}

	id, cmd := m.env.scheduler.Schedule(delay, taskDeleteComponent, c.ID)
	m.exiting[c.ID] = id
	return cmd
}

// finishDelete runs when a delete transition elapses
func (m *BuilderModel) finishDelete(t task) tea.Cmd {
	delete(m.exiting, t.target)
	return m.deleteNow(t.target)
}

func (m *BuilderModel) deleteNow(id string) tea.Cmd {
	d := m.env.designer
	idx := d.IndexOf(id)
	if idx < 0 {
		return nil
	}
	if err := d.Delete(idx); err != nil {
		m.env.logger.Warn("delete failed", "id", id, "error", err)
		return nil
	}
	m.clampCursor()
	return m.env.status.Show(Toast{
		Message: "Component deleted. Undo?",
		Type:    StatusTypeWarning,
		Undo:    true,
	})
}

// requestExport writes the configured export files, asking first when some
// components still miss required values
func (m *BuilderModel) requestExport() tea.Cmd {
	page := m.env.designer.Snapshot()

	incomplete := 0
	for _, c := range page.Components {
		if len(c.MissingRequired()) > 0 {
			incomplete++
		}
	}
	if incomplete == 0 {
		return m.exportFiles()
	}

	noun := "component has"
	if incomplete > 1 {
		noun = "components have"
	}
	m.confirm.Show(ConfirmationConfig{
		Message: fmt.Sprintf("%d %s empty required fields. Export anyway?", incomplete, noun),
	}, m.exportFiles, nil)
	return nil
}

func (m *BuilderModel) exportFiles() tea.Cmd {
	e := m.env
	formats, err := export.ParseFormats(e.settings.Export.Formats)
	if err != nil {
		return e.status.ShowWarning(err.Error())
	}

	written, err := export.WriteFiles(e.settings.Export.Dir, e.designer.Snapshot(), formats)
	if err != nil {
		e.logger.Error("export failed", "dir", e.settings.Export.Dir, "error", err)
		return e.status.ShowWarning("Export failed: " + err.Error())
	}
	e.logger.Info("exported page", "files", written)

	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = strings.ToUpper(string(f))
	}
	return e.status.ShowSuccess(fmt.Sprintf("%s export successful!", strings.Join(names, " + ")))
}

func (m *BuilderModel) copyJSON() tea.Cmd {
	out, err := export.ToJSON(m.env.designer.Snapshot())
	if err == nil {
		err = writeClipboard(out)
	}
	if err != nil {
		m.env.logger.Warn("clipboard copy failed", "error", err)
		return m.env.status.ShowWarning("Could not copy to clipboard")
	}
	return m.env.status.ShowSuccess("Page JSON copied to clipboard")
}

func (m *BuilderModel) View() string {
	e := m.env
	s := e.styles
	width := e.width

	var b strings.Builder

	b.WriteString(renderHeader(s, width, appTitle, appSubtitle, e.version))
	b.WriteString("\n\n")

	// Page name
	name := e.designer.PageName()
	cursorPos := len([]rune(name))
	if m.renaming {
		name = m.nameInput.Value()
		cursorPos = m.nameInput.Position()
	}
	fieldWidth := width - 4
	if fieldWidth > 60 {
		fieldWidth = 60
	}
	ir := NewInputRenderer(fieldWidth, s)
	b.WriteString(s.ContentPadding.Render(
		ir.RenderInputFieldWithLabel("Page name", name, cursorPos, models.DefaultPageName, m.renaming, true),
	))
	b.WriteString("\n")
	if e.designer.PageNameMissing() {
		b.WriteString(s.ContentPadding.Render(s.Warning.Render("Please enter a name for your page")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Component list
	listHeight := e.height - lipgloss.Height(b.String()) - 4
	b.WriteString(m.renderList(width-2, listHeight))
	b.WriteString("\n")

	if m.confirm.Active() {
		b.WriteString(m.confirm.View(s, width))
	} else {
		b.WriteString(s.ContentPadding.Render(s.Help.Render(m.helpText())))
	}

	return b.String()
}

func (m *BuilderModel) helpText() string {
	switch {
	case m.renaming:
		return "type to rename • enter/esc done"
	case m.gesture.Active():
		return "j/k choose position • space drop • esc cancel"
	default:
		return "a add • enter edit • d delete • u undo • K/J move • space grab • n rename • x export • v preview export • y copy • t theme • p preview • q quit"
	}
}

func (m *BuilderModel) renderList(width, height int) string {
	e := m.env
	s := e.styles
	d := e.designer

	border := s.InactiveBorder
	if !m.renaming {
		border = s.ActiveBorder
	}
	if width < 10 {
		width = 10
	}
	if height < 3 {
		height = 3
	}
	innerWidth := width - 4

	if d.Len() == 0 {
		empty := lipgloss.JoinVertical(lipgloss.Center,
			s.EmptyActive.Render("No components added."),
			s.Description.Render("Press a to add your first component."),
		)
		return border.Width(width - 2).Render(
			lipgloss.Place(innerWidth, height-2, lipgloss.Center, lipgloss.Center, empty),
		)
	}

	var lines []string
	var cursorStart, cursorEnd int
	for i := 0; i < d.Len(); i++ {
		c, _ := d.Component(i)
		if i == m.cursor {
			cursorStart = len(lines)
		}
		lines = append(lines, m.renderRow(i, c, innerWidth)...)
		if i == m.cursor {
			cursorEnd = len(lines)
		}
	}

	// Keep the cursor card in view
	visible := height - 2
	if cursorStart < m.offset {
		m.offset = cursorStart
	}
	if cursorEnd > m.offset+visible {
		m.offset = cursorEnd - visible
	}
	if m.offset > len(lines)-visible {
		m.offset = len(lines) - visible
	}
	if m.offset < 0 {
		m.offset = 0
	}
	end := m.offset + visible
	if end > len(lines) {
		end = len(lines)
	}

	return border.Width(width - 2).Render(strings.Join(lines[m.offset:end], "\n"))
}

func (m *BuilderModel) renderRow(i int, c models.PageComponent, width int) []string {
	s := m.env.styles

	marker := "  "
	style := s.Normal
	switch {
	case m.gesture.ActiveID() == c.ID:
		marker = "☰ "
		style = s.Grabbed
	case m.gesture.Active() && i == m.cursor:
		marker = "→ "
		style = s.Selected
	case i == m.cursor:
		marker = "▸ "
		style = s.Selected
	}
	if _, exiting := m.exiting[c.ID]; exiting {
		style = s.Exiting
	}

	title := fmt.Sprintf("%s%d. %s", marker, i+1, c.Type.DisplayName())
	warning := ""
	if missing := len(c.MissingRequired()); missing > 0 {
		warning = fmt.Sprintf(" ! %d required", missing)
	}

	titleWidth := width - lipgloss.Width(warning)
	line := style.Render(rowTitle(title, titleWidth))
	if warning != "" {
		line += s.Warning.Render(warning)
	}

	lines := []string{line}
	if m.env.showPreview {
		for _, p := range renderPreview(c, width-5, previewRows) {
			lines = append(lines, "     "+s.Description.Render(p))
		}
	}
	return lines
}
