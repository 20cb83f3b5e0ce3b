package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// ViewTitle creates a standardized title component with consistent styling
// Used for the overlay views (Add a component, Edit, Export preview)
type ViewTitle struct {
	text   string
	styles Styles
}

// NewViewTitle creates a new view title with the given text
func NewViewTitle(text string, styles Styles) *ViewTitle {
	return &ViewTitle{
		text:   text,
		styles: styles,
	}
}

// View renders the title with consistent styling
func (v *ViewTitle) View() string {
	if v.text == "" {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(v.styles.Palette.ToastFg)).
		Background(lipgloss.Color(v.styles.Palette.Toast)).
		Bold(true).
		Padding(0, 1)

	// Add vertical padding for consistent height
	titleWithPadding := "\n" + v.text + "\n"
	return titleStyle.Render(titleWithPadding)
}

// ViewWithAlignment renders the title with alignment and padding
func (v *ViewTitle) ViewWithAlignment(width int) string {
	if v.text == "" {
		return ""
	}

	alignStyle := lipgloss.NewStyle().
		Width(width).
		PaddingLeft(2).
		PaddingRight(2)

	return alignStyle.Render(v.View())
}

// ViewTitleHeight returns the consistent height of view titles
func ViewTitleHeight() int {
	return 3 // 1 line for text + 2 lines for vertical padding
}
