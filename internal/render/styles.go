package render

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by the report renderer and the browse TUI.
var (
	lightForeground = lipgloss.Color("#101F38")
	lightPrimary    = lipgloss.Color("#101F38")
	lightAccent     = lipgloss.Color("#8BC34A")
	lightMuted      = lipgloss.Color("#d6dae0")
	lightBorder     = lipgloss.Color("#dce0e5")

	darkForeground = lipgloss.Color("#f2f2f2")
	darkPrimary    = lipgloss.Color("#8BC34A")
	darkAccent     = lipgloss.Color("#101F38")
	darkMuted      = lipgloss.Color("#2a3850")
	darkBorder     = lipgloss.Color("#2a3850")

	colorSuccess = lipgloss.Color("#8BC34A")
	colorError   = lipgloss.Color("#e53935")
)

// Theme holds the current color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Foreground: lightForeground,
		Primary:    lightPrimary,
		Accent:     lightAccent,
		Muted:      lightMuted,
		Border:     lightBorder,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Foreground: darkForeground,
		Primary:    darkPrimary,
		Accent:     darkAccent,
		Muted:      darkMuted,
		Border:     darkBorder,
		IsDark:     true,
	}
}

// DetectTheme picks a theme from common terminal hints, defaulting to light.
func DetectTheme() Theme {
	// COLORFGBG is usually "foreground;background"; ANSI indexes 0-6 and 8
	// are dark backgrounds.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("ALIN_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// Styles holds the styled components used for colored report output and the
// browse TUI.
type Styles struct {
	Theme Theme

	Banner    lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Section   lipgloss.Style
	Category  lipgloss.Style
	Rule      lipgloss.Style
	Feature   lipgloss.Style
	Highlight lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
}

// NewStyles creates a Styles instance for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Banner: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Italic(true),

		Section: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Category: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Rule: lipgloss.NewStyle().
			Foreground(theme.Border),

		Feature: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Highlight: lipgloss.NewStyle().
			Foreground(colorSuccess),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Success: lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true),
	}
}
