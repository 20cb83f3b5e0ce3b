package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ldbpro/ldbpro-cli/pkg/models"
)

// GalleryModel offers the component types to add
type GalleryModel struct {
	env    *env
	cursor int
}

// NewGalleryModel creates the picker
func NewGalleryModel(e *env) *GalleryModel {
	return &GalleryModel{env: e}
}

func (m *GalleryModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	types := models.ComponentTypes()
	d := m.env.designer

	switch key := keyMsg.String(); key {
	case "esc", "q":
		d.CloseGallery()

	case "j", "down", "tab":
		m.cursor = (m.cursor + 1) % len(types)

	case "k", "up", "shift+tab":
		m.cursor = (m.cursor - 1 + len(types)) % len(types)

	case "enter", " ", "space":
		d.Add(types[m.cursor])
		m.cursor = 0

	default:
		// Number keys pick directly
		if len(key) == 1 && key[0] >= '1' && int(key[0]-'0') <= len(types) {
			d.Add(types[key[0]-'1'])
			m.cursor = 0
		}
	}
	return nil
}

func (m *GalleryModel) View() string {
	s := m.env.styles
	width := m.env.width

	var b strings.Builder
	b.WriteString(NewViewTitle("Add a component", s).ViewWithAlignment(width))
	b.WriteString("\n\n")

	cardWidth := width - 8
	if cardWidth > 50 {
		cardWidth = 50
	}
	if cardWidth < 20 {
		cardWidth = 20
	}

	for i, t := range models.ComponentTypes() {
		border := s.InactiveBorder
		name := s.Header.Render(fmt.Sprintf("%d. %s", i+1, t.DisplayName()))
		if i == m.cursor {
			border = s.ActiveBorder
			name = s.ActiveHeader(true).Render(fmt.Sprintf("%d. %s", i+1, t.DisplayName()))
		}
		card := lipgloss.JoinVertical(lipgloss.Left,
			name,
			s.Description.Render("Add "+string(t)),
		)
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(border.Width(cardWidth).Render(card)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.ContentPadding.Render(s.Help.Render("j/k choose • enter add • 1-5 quick add • esc close")))
	return b.String()
}
