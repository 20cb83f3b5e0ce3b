// Package export serializes a page document to JSON, XML and an HTML
// preview, and names and writes the resulting files.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ldbpro/ldbpro-cli/pkg/files"
	"github.com/ldbpro/ldbpro-cli/pkg/models"
)

// Format names an export format
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
	FormatHTML Format = "html"
)

// ParseFormats parses a list such as ["json", "xml"] or ["json,xml"]
func ParseFormats(values []string) ([]Format, error) {
	var out []Format
	seen := make(map[Format]bool)
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			f := Format(strings.ToLower(strings.TrimSpace(part)))
			if f == "" {
				continue
			}
			switch f {
			case FormatJSON, FormatXML, FormatHTML:
			default:
				return nil, fmt.Errorf("unsupported export format: %s (must be json, xml or html)", part)
			}
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}
	return out, nil
}

// ToJSON returns the document as two-space indented JSON. Data fields keep
// schema order.
func ToJSON(page models.PageDataModel) (string, error) {
	if page.Components == nil {
		page.Components = []models.PageComponent{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(page); err != nil {
		return "", fmt.Errorf("failed to encode page as JSON: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// xmlEscaper replaces the five markup characters. strings.Replacer scans
// the input once, so an ampersand it produces is never escaped again.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeXML escapes a value for use in XML text or attribute content
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// ToXML returns the document as an XML tree. Field names become tag names
// verbatim; they come from the schema registry, not from user input.
func ToXML(page models.PageDataModel) string {
	lines := []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		fmt.Sprintf(`<page name="%s">`, EscapeXML(page.PageName)),
		"  <components>",
	}
	for _, c := range page.Components {
		lines = append(lines, fmt.Sprintf(`    <component type="%s">`, EscapeXML(string(c.Type))))
		for _, key := range c.Data.Keys() {
			lines = append(lines, fmt.Sprintf("      <%s>%s</%s>", key, EscapeXML(c.Data.Value(key)), key))
		}
		lines = append(lines, "    </component>")
	}
	lines = append(lines, "  </components>", "</page>")
	return strings.Join(lines, "\n")
}

var (
	whitespaceRun  = regexp.MustCompile(`\s+`)
	pathSeparators = strings.NewReplacer("/", "_", "\\", "_")
)

// FileName derives the export file name from the page name: whitespace
// runs and path separators become underscores and "_data.<ext>" is
// appended. The result is always a single path element.
func FileName(pageName string, format Format) string {
	stem := pathSeparators.Replace(whitespaceRun.ReplaceAllString(pageName, "_"))
	return stem + "_data." + string(format)
}

// Render returns the document in the given format
func Render(page models.PageDataModel, format Format) (string, error) {
	switch format {
	case FormatJSON:
		return ToJSON(page)
	case FormatXML:
		return ToXML(page), nil
	case FormatHTML:
		return ToHTML(page)
	default:
		return "", fmt.Errorf("unsupported export format: %s", format)
	}
}

// WriteFiles renders the document in each format and writes the files into
// dir. It returns the written paths in format order.
func WriteFiles(dir string, page models.PageDataModel, formats []Format) ([]string, error) {
	var written []string
	for _, f := range formats {
		content, err := Render(page, f)
		if err != nil {
			return written, err
		}
		path := filepath.Join(dir, FileName(page.PageName, f))
		if err := files.AtomicWriteFile(path, []byte(content), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s export: %w", f, err)
		}
		written = append(written, path)
	}
	return written, nil
}
