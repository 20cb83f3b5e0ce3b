package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/ldbpro/ldbpro-cli/pkg/models"
)

// previewLines describes a component the way its card would show it, with
// placeholders for empty fields
func previewLines(c models.PageComponent) []string {
	d := c.Data
	or := func(key, placeholder string) string {
		if v := d.Value(key); v != "" {
			return v
		}
		return placeholder
	}

	switch c.Type {
	case models.ComponentTypeRichText:
		return []string{or("content", "Rich text content...")}
	case models.ComponentTypeImageBanner:
		return []string{
			"[" + or("imageUrl", "Image") + "]",
			or("title", "Banner title"),
		}
	case models.ComponentTypeGenericBanner:
		return []string{
			"[" + or("imageUrl", "Image") + "]",
			or("title", "Banner title"),
			or("text", "Banner text..."),
		}
	case models.ComponentTypeVideo:
		lines := []string{"No video URL"}
		if v := d.Value("videoUrl"); v != "" {
			lines[0] = "URL: " + v
		}
		if d.Value("embedCode") != "" {
			lines = append(lines, "Embed code provided")
		}
		return lines
	case models.ComponentTypeButton:
		return []string{
			"( " + or("text", "Button text") + " )",
			"URL: " + or("url", "#"),
		}
	default:
		return []string{"Unknown component type"}
	}
}

// renderPreview wraps the preview to width and keeps at most maxLines
func renderPreview(c models.PageComponent, width, maxLines int) []string {
	if width < 4 {
		width = 4
	}

	var out []string
	for _, line := range previewLines(c) {
		line = strings.Join(strings.Fields(line), " ")
		wrapped := wordwrap.String(line, width)
		for _, l := range strings.Split(wrapped, "\n") {
			// wordwrap leaves words longer than width intact
			if runewidth.StringWidth(l) > width {
				l = truncate.StringWithTail(l, uint(width), "…")
			}
			out = append(out, l)
		}
	}

	if maxLines > 0 && len(out) > maxLines {
		out = out[:maxLines]
		last := out[maxLines-1]
		if runewidth.StringWidth(last)+1 > width {
			last = runewidth.Truncate(last, width-1, "")
		}
		out[maxLines-1] = last + "…"
	}
	return out
}

// rowTitle pads or truncates title to exactly width cells
func rowTitle(title string, width int) string {
	if width <= 0 {
		return ""
	}
	title = runewidth.Truncate(title, width, "…")
	return runewidth.FillRight(title, width)
}
