package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Message string // Main confirmation message
}

// ConfirmationModel handles inline y/n prompts
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

// Hide deactivates the confirmation
func (m *ConfirmationModel) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation. Other keys are swallowed
// while the prompt is open.
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
		return nil

	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}

	return nil
}

// View renders the prompt centered in width
func (m *ConfirmationModel) View(styles Styles, width int) string {
	if !m.active {
		return ""
	}

	message := fmt.Sprintf("%s %s", m.config.Message, formatConfirmOptions(styles))
	if width > 0 && lipgloss.Width(message) < width {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(message)
	}
	return message
}

func formatConfirmOptions(styles Styles) string {
	return styles.Success.Bold(true).Render("[y]es") + " / " + styles.Error.Bold(true).Render("[n]o")
}
