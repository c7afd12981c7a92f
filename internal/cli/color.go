// Package cli holds the terminal presentation helpers used by the forge
// command: colored status lines, diagnostic reports and interrupt
// handling.
package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

const reset = "\033[0m"

// ColorRole identifies a semantic color.
type ColorRole int

const (
	RoleSuccess ColorRole = iota
	RoleError
	RoleWarn
	RoleInfo
	RoleHeading
	RoleMuted
)

// Theme maps color roles to ANSI escape sequences. An empty sequence
// prints the role uncolored.
type Theme struct {
	Name   string
	Colors map[ColorRole]string
}

var themes = map[string]*Theme{
	"default": {
		Name: "default",
		Colors: map[ColorRole]string{
			RoleSuccess: "\033[32m",
			RoleError:   "\033[31m",
			RoleWarn:    "\033[33m",
			RoleInfo:    "\033[36m",
			RoleHeading: "\033[1m",
			RoleMuted:   "\033[38;2;140;140;140m",
		},
	},
	"dark": {
		Name: "dark",
		Colors: map[ColorRole]string{
			RoleSuccess: "\033[38;2;80;220;120m",
			RoleError:   "\033[38;2;255;80;80m",
			RoleWarn:    "\033[38;2;255;200;60m",
			RoleInfo:    "\033[38;2;100;180;220m",
			RoleHeading: "\033[1;97m",
			RoleMuted:   "\033[38;2;120;120;120m",
		},
	},
	"minimal": {Name: "minimal", Colors: map[ColorRole]string{}},
}

var currentTheme = themes["default"]

// SetTheme switches the active theme. Unknown names are an error.
func SetTheme(name string) error {
	t, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(ThemeNames(), ", "))
	}
	currentTheme = t
	return nil
}

// ThemeNames lists the built-in themes in a stable order.
func ThemeNames() []string { return []string{"default", "dark", "minimal"} }

// ColorEnabled controls whether ANSI color codes are emitted. It defaults
// to true when stdout is a terminal and NO_COLOR is unset.
var ColorEnabled = os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(os.Stdout.Fd()))

func paint(role ColorRole, s string) string {
	c := currentTheme.Colors[role]
	if !ColorEnabled || c == "" {
		return s
	}
	return c + s + reset
}

// Success formats a message with a check prefix.
func Success(msg string) string { return paint(RoleSuccess, "✓ "+msg) }

// Error formats a message with a cross prefix.
func Error(msg string) string { return paint(RoleError, "✗ "+msg) }

// Warn formats a message with a warning prefix.
func Warn(msg string) string { return paint(RoleWarn, "⚠ "+msg) }

// Info formats a message in the info color.
func Info(msg string) string { return paint(RoleInfo, msg) }

// Heading formats a section title.
func Heading(msg string) string { return paint(RoleHeading, msg) }

// Muted formats secondary text.
func Muted(msg string) string { return paint(RoleMuted, msg) }
