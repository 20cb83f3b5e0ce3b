package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ldbpro/ldbpro-cli/pkg/designer"
	"github.com/ldbpro/ldbpro-cli/pkg/models"
)

const textareaRows = 4

// formField is one schema field with its input widget
type formField struct {
	schema models.FieldSchema
	input  textinput.Model // text fields
	area   textarea.Model  // textarea fields
}

func (f *formField) isArea() bool {
	return f.schema.Kind == models.FieldKindTextarea
}

func (f *formField) value() string {
	if f.isArea() {
		return f.area.Value()
	}
	return f.input.Value()
}

func (f *formField) focus() tea.Cmd {
	if f.isArea() {
		return f.area.Focus()
	}
	return f.input.Focus()
}

func (f *formField) blur() {
	if f.isArea() {
		f.area.Blur()
		return
	}
	f.input.Blur()
}

func (f *formField) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.isArea() {
		f.area, cmd = f.area.Update(msg)
	} else {
		f.input, cmd = f.input.Update(msg)
	}
	return cmd
}

// FormModel edits one component. Every keystroke is written back to the
// designer, so closing with esc keeps what was typed.
type FormModel struct {
	env      *env
	index    int
	schema   models.ComponentSchema
	fields   []formField
	focus    int
	showHint bool
}

// NewFormModel builds inputs for the component at index, pre-filled from
// its data
func NewFormModel(e *env, index int) *FormModel {
	c, _ := e.designer.Component(index)
	schema := c.Schema()

	m := &FormModel{env: e, index: index, schema: schema}
	for _, fs := range schema.Fields {
		f := formField{schema: fs}
		if f.isArea() {
			ta := textarea.New()
			ta.ShowLineNumbers = false
			ta.CharLimit = 0
			ta.SetHeight(textareaRows)
			ta.SetValue(c.Data.Value(fs.Name))
			f.area = ta
		} else {
			ti := textinput.New()
			ti.Prompt = ""
			ti.CharLimit = 0
			ti.SetValue(c.Data.Value(fs.Name))
			f.input = ti
		}
		m.fields = append(m.fields, f)
	}
	m.SetSize(e.width, e.height)
	return m
}

func (m *FormModel) Init() tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	return m.fields[0].focus()
}

// SetSize resizes the inputs
func (m *FormModel) SetSize(width, height int) {
	w := width - 8
	if w > 80 {
		w = 80
	}
	if w < 20 {
		w = 20
	}
	for i := range m.fields {
		if m.fields[i].isArea() {
			m.fields[i].area.SetWidth(w)
		} else {
			m.fields[i].input.Width = w
		}
	}
}

func (m *FormModel) Update(msg tea.Msg) tea.Cmd {
	d := m.env.designer

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		key := keyMsg.String()
		switch {
		case Shortcuts.Save.Matches(key):
			return m.submit()
		case Shortcuts.ReverseSwitch.Matches(key):
			return m.setFocus(m.focus - 1)
		}

		switch key {
		case "esc":
			d.CloseEditor()
			return nil

		case "tab":
			return m.setFocus(m.focus + 1)

		case "enter":
			// Enter submits from single-line inputs, textareas take a newline
			if len(m.fields) == 0 || !m.fields[m.focus].isArea() {
				return m.submit()
			}
		}
	}

	if len(m.fields) == 0 {
		return nil
	}

	f := &m.fields[m.focus]
	cmd := f.update(msg)

	c, ok := d.Component(m.index)
	if ok && c.Data.Value(f.schema.Name) != f.value() {
		if err := d.EditField(m.index, f.schema.Name, f.value()); err != nil {
			m.env.logger.Warn("edit failed", "field", f.schema.Name, "error", err)
		}
		if d.CanSubmit() {
			m.showHint = false
		}
	}
	return cmd
}

func (m *FormModel) setFocus(i int) tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	m.fields[m.focus].blur()
	m.focus = (i + len(m.fields)) % len(m.fields)
	return m.fields[m.focus].focus()
}

// submit closes the editor when the gate passes, otherwise shows the hint
func (m *FormModel) submit() tea.Cmd {
	err := m.env.designer.Submit()
	switch {
	case err == nil:
		return m.env.status.ShowSuccess("Component updated successfully!")
	case errors.Is(err, designer.ErrRequiredFieldsMissing):
		m.showHint = true
		return nil
	default:
		m.env.logger.Warn("submit failed", "error", err)
		return nil
	}
}

func (m *FormModel) View() string {
	s := m.env.styles
	width := m.env.width

	var b strings.Builder
	b.WriteString(NewViewTitle("Edit: "+m.schema.Name, s).ViewWithAlignment(width))
	b.WriteString("\n\n")

	c, _ := m.env.designer.Component(m.index)
	missing := make(map[string]bool)
	for _, name := range c.MissingRequired() {
		missing[name] = true
	}

	for i := range m.fields {
		f := &m.fields[i]
		label := f.schema.Label
		if f.schema.Required {
			label += " *"
		}
		labelStyle := s.ActiveHeader(i == m.focus)
		if m.showHint && missing[f.schema.Name] {
			labelStyle = s.Warning.Bold(true)
		}

		b.WriteString(s.ContentPadding.Render(labelStyle.Render(label)))
		b.WriteString("\n")

		var input string
		if f.isArea() {
			input = f.area.View()
		} else {
			input = f.input.View()
		}
		border := s.InactiveBorder
		if i == m.focus {
			border = s.ActiveBorder
		}
		b.WriteString(s.ContentPadding.Render(border.Render(input)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.env.designer.CanSubmit() {
		b.WriteString(s.ContentPadding.Render(s.Success.Render("[ Save ]")))
	} else {
		b.WriteString(s.ContentPadding.Render(s.Placeholder.Render("[ Save ]")))
		if m.showHint {
			b.WriteString("  ")
			b.WriteString(s.Warning.Render("Fill in the required fields (*) to save"))
		}
	}
	b.WriteString("\n\n")
	help := fmt.Sprintf("tab next • %s previous • %s save • esc close", Shortcuts.ReverseSwitch.Get(), Shortcuts.Save.Get())
	b.WriteString(s.ContentPadding.Render(s.Help.Render(help)))
	return b.String()
}
