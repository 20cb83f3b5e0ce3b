package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ldbpro/ldbpro-cli/pkg/models"
)

// Palette holds the colors of one theme
type Palette struct {
	Active   string // Accent for focused elements
	Inactive string // Borders of unfocused panes
	Selected string // Background of the cursor row
	Normal   string // Body text
	Dim      string
	VeryDim  string
	Warning  string
	Danger   string
	Success  string
	Title    string
	Toast    string // Toast background
	ToastFg  string
}

var (
	DarkPalette = Palette{
		Active:   "170",
		Inactive: "240",
		Selected: "236",
		Normal:   "245",
		Dim:      "241",
		VeryDim:  "242",
		Warning:  "214",
		Danger:   "196",
		Success:  "28",
		Title:    "111",
		Toast:    "62",
		ToastFg:  "230",
	}

	LightPalette = Palette{
		Active:   "127",
		Inactive: "250",
		Selected: "254",
		Normal:   "236",
		Dim:      "243",
		VeryDim:  "246",
		Warning:  "166",
		Danger:   "160",
		Success:  "28",
		Title:    "25",
		Toast:    "25",
		ToastFg:  "255",
	}
)

// PaletteFor returns the palette of theme
func PaletteFor(theme models.Theme) Palette {
	if theme == models.ThemeLight {
		return LightPalette
	}
	return DarkPalette
}

// Styles are the lipgloss styles derived from a palette
type Styles struct {
	Palette Palette

	ActiveBorder   lipgloss.Style
	InactiveBorder lipgloss.Style
	Selected       lipgloss.Style
	Normal         lipgloss.Style
	Grabbed        lipgloss.Style
	Exiting        lipgloss.Style
	TypeHeader     lipgloss.Style
	Header         lipgloss.Style
	Title          lipgloss.Style
	Description    lipgloss.Style
	Placeholder    lipgloss.Style
	Warning        lipgloss.Style
	Error          lipgloss.Style
	Success        lipgloss.Style
	Help           lipgloss.Style
	EmptyActive    lipgloss.Style
	Toast          lipgloss.Style
	ToastWarning   lipgloss.Style
	ContentPadding lipgloss.Style
}

// NewStyles builds the style set for theme
func NewStyles(theme models.Theme) Styles {
	p := PaletteFor(theme)
	return Styles{
		Palette: p,

		ActiveBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Active)),

		InactiveBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Inactive)),

		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Active)).
			Background(lipgloss.Color(p.Selected)).
			Bold(true),

		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Normal)),

		Grabbed: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Warning)).
			Background(lipgloss.Color(p.Selected)).
			Bold(true),

		Exiting: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.VeryDim)).
			Strikethrough(true),

		TypeHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Warning)),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Dim)),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Title)),

		Description: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Dim)),

		Placeholder: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Dim)).
			Italic(true),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Warning)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Danger)),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Success)),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.VeryDim)),

		EmptyActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Warning)).
			Bold(true),

		Toast: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Toast)).
			Foreground(lipgloss.Color(p.ToastFg)).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Warning)).
			Foreground(lipgloss.Color("235")).
			Padding(0, 1),

		ContentPadding: lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1),
	}
}

// ActiveHeader returns the pane header style for the focus state
func (s Styles) ActiveHeader(isActive bool) lipgloss.Style {
	color := s.Palette.Inactive
	if isActive {
		color = s.Palette.Active
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color))
}
