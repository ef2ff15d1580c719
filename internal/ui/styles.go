// Package ui holds the lipgloss styles shared by the CLI renderers and the picker.
package ui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	PrimaryColor = lipgloss.Color("99")  // Purple
	AccentColor  = lipgloss.Color("212") // Pink
	MutedColor   = lipgloss.Color("245") // Gray
	ErrorColor   = lipgloss.Color("196") // Red
	WarningColor = lipgloss.Color("226") // Yellow

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	ItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	SelectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(AccentColor).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(PrimaryColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColor reports whether color is a #rgb or #rrggbb literal the terminal can paint.
func IsHexColor(color string) bool {
	return hexColorPattern.MatchString(strings.TrimSpace(color))
}

// Swatch renders a small block filled with color. When styling is disabled or
// the color cannot be painted it falls back to a bracketed literal.
func Swatch(color string, styled bool) string {
	color = strings.TrimSpace(color)
	if !styled || !IsHexColor(color) {
		if color == "" {
			return "[ ]"
		}
		return "[" + color + "]"
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("  ") + " " + color
}
