package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// InputRenderer draws the page name field with a block cursor
type InputRenderer struct {
	Width  int
	Styles Styles
}

// NewInputRenderer creates a new input renderer
func NewInputRenderer(width int, styles Styles) *InputRenderer {
	return &InputRenderer{Width: width, Styles: styles}
}

// RenderInputField renders a single-line field. Empty text shows the
// placeholder; a required empty field gets a warning border color.
func (ir *InputRenderer) RenderInputField(text string, cursorPos int, placeholder string, focused, required bool) string {
	p := ir.Styles.Palette

	border := p.Inactive
	switch {
	case required && strings.TrimSpace(text) == "":
		border = p.Warning
	case focused:
		border = p.Active
	}

	fieldStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Foreground(lipgloss.Color(p.Normal)).
		Padding(0, 1)
	if ir.Width > 4 {
		fieldStyle = fieldStyle.Width(ir.Width - 2)
	}

	cursorStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(p.Active)).
		Foreground(lipgloss.Color(p.ToastFg)).
		Bold(true)

	var content strings.Builder

	if text == "" {
		if focused {
			content.WriteString(cursorStyle.Render(" "))
		}
		if placeholder != "" {
			content.WriteString(ir.Styles.Placeholder.Render(placeholder))
		}
		return fieldStyle.Render(content.String())
	}

	runes := []rune(text)
	if cursorPos < 0 {
		cursorPos = 0
	}
	if cursorPos > len(runes) {
		cursorPos = len(runes)
	}

	for i, r := range runes {
		if focused && i == cursorPos {
			content.WriteString(cursorStyle.Render(string(r)))
		} else {
			content.WriteRune(r)
		}
	}
	if focused && cursorPos == len(runes) {
		content.WriteString(cursorStyle.Render(" "))
	}

	return fieldStyle.Render(content.String())
}

// RenderInputFieldWithLabel renders an input field with a label above it
func (ir *InputRenderer) RenderInputFieldWithLabel(label, text string, cursorPos int, placeholder string, focused, required bool) string {
	var result strings.Builder
	result.WriteString(ir.Styles.Header.Render(label))
	result.WriteString("\n")
	result.WriteString(ir.RenderInputField(text, cursorPos, placeholder, focused, required))
	return result.String()
}
