package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = `╻  ╺┳┓┏┓ ┏━┓┏━┓┏━┓
┃   ┃┃┣┻┓┣━┛┣┳┛┃ ┃
┗━╸╺┻┛┗━┛╹  ╹┗╸┗━┛`

func renderHeader(styles Styles, width int, title, subtitle, version string) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(styles.Palette.Active)).
		Bold(true)

	fullLogo := logo
	if version != "" {
		fullLogo += "\n" + lipgloss.NewStyle().Width(lipgloss.Width(logo)).Align(lipgloss.Right).Render("v"+version)
	}
	logoRendered := logoStyle.Render(fullLogo)

	// Header padding style (matching pane padding)
	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	if title == "" {
		rightAlign := lipgloss.NewStyle().
			Width(width - 2). // -2 for padding
			Align(lipgloss.Right)
		return headerPadding.Render(rightAlign.Render(logoRendered))
	}

	// Title and subtitle sit on the left, aligned with the bottom of the logo
	left := styles.Title.Render(title)
	if subtitle != "" {
		left += "\n" + styles.Description.Render(subtitle)
	}
	logoHeight := lipgloss.Height(logoRendered)
	if pad := logoHeight - lipgloss.Height(left); pad > 0 {
		left = strings.Repeat("\n", pad) + left
	}

	contentWidth := width - 2 // -2 for left and right padding
	gap := contentWidth - lipgloss.Width(left) - lipgloss.Width(logoRendered)
	if gap < 1 {
		// Too narrow for both, keep the title
		return headerPadding.Render(left)
	}

	headerContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		left,
		lipgloss.NewStyle().Width(gap).Render(""),
		logoRendered,
	)
	return headerPadding.Render(headerContent)
}
