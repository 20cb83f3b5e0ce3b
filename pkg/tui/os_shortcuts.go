package tui

import "runtime"

// OSType represents the operating system type
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// currentOS is swapped out in tests
var currentOS = func() OSType {
	switch runtime.GOOS {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// ShortcutKey represents a keyboard shortcut with OS-specific variations
type ShortcutKey struct {
	Mac     string
	Linux   string
	Windows string
	Default string // Fallback if OS-specific not defined
}

// Get returns the appropriate shortcut for the current OS
func (s ShortcutKey) Get() string {
	switch currentOS() {
	case OSMac:
		if s.Mac != "" {
			return s.Mac
		}
	case OSLinux:
		if s.Linux != "" {
			return s.Linux
		}
	case OSWindows:
		if s.Windows != "" {
			return s.Windows
		}
	}
	return s.Default
}

// Matches reports whether key triggers the shortcut. The default binding
// works everywhere so muscle memory from another OS still applies.
func (s ShortcutKey) Matches(key string) bool {
	return key == s.Get() || key == s.Default
}

// Shortcuts whose best binding differs between terminals
var Shortcuts = struct {
	Save          ShortcutKey
	ReverseSwitch ShortcutKey
}{
	Save: ShortcutKey{
		Mac:     "ctrl+s",
		Linux:   "alt+s", // Ctrl+S is XOFF unless stty -ixon
		Windows: "alt+s",
		Default: "ctrl+s",
	},
	ReverseSwitch: ShortcutKey{
		Windows: "backtab",
		Default: "shift+tab",
	},
}
