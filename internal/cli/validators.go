package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ldbpro/ldbpro-cli/pkg/models"
)

// ValidateComponentType validates a component type string
func ValidateComponentType(t string) (models.ComponentType, error) {
	return models.ParseComponentType(t)
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	if Contains(validFormats, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ParsePosition converts a 1-based position argument into a list index
func ParsePosition(arg string, length int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid position %q: must be a number", arg)
	}
	if length == 0 {
		return 0, fmt.Errorf("the page has no components")
	}
	if n < 1 || n > length {
		return 0, fmt.Errorf("position %d out of range (1-%d)", n, length)
	}
	return n - 1, nil
}

// ParseDirection maps "up"/"down" onto a move offset
func ParseDirection(arg string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "up", "-1":
		return -1, nil
	case "down", "+1", "1":
		return 1, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be: up or down)", arg)
	}
}

// ValidateTheme checks a theme argument
func ValidateTheme(name string) (models.Theme, error) {
	switch models.Theme(strings.ToLower(name)) {
	case models.ThemeDark:
		return models.ThemeDark, nil
	case models.ThemeLight:
		return models.ThemeLight, nil
	default:
		return "", fmt.Errorf("invalid theme: %s (must be: dark or light)", name)
	}
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
