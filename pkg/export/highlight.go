package export

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/ldbpro/ldbpro-cli/pkg/models"
)

// HighlightStyle picks a chroma style matching the UI theme
func HighlightStyle(theme models.Theme) string {
	if theme == models.ThemeLight {
		return "github"
	}
	return "monokai"
}

// Highlight colours src for a 256-colour terminal. On failure the source is
// returned unchanged.
func Highlight(src string, format Format, style string) string {
	var buf strings.Builder
	if err := quick.Highlight(&buf, src, string(format), "terminal256", style); err != nil {
		return src
	}
	return buf.String()
}
