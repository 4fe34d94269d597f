package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// EnvColors defines the color palette for environment visualization
var EnvColors = [][]int{
	{76, 203, 241},  // Light blue
	{77, 202, 125},  // Green
	{245, 200, 0},   // Yellow
	{248, 144, 72},  // Orange
	{235, 130, 188}, // Pink
	{159, 131, 228}, // Purple
	{80, 132, 243},  // Blue
}

// colorEnabled is false when the terminal advertises no color support
var colorEnabled = termenv.EnvColorProfile() != termenv.Ascii

// ColorEnvName colors an environment name by its position in the registry
func ColorEnvName(name string, index int) string {
	if !colorEnabled || len(EnvColors) == 0 {
		return name
	}
	c := EnvColors[index%len(EnvColors)]
	hexColor := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
	return lipgloss.NewStyle().Foreground(hexColor).Render(name)
}

// ColorRed colors text red
func ColorRed(text string) string {
	if !colorEnabled {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Render(text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	if !colorEnabled {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("2")).
		Render(text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	if !colorEnabled {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(text)
}

// ColorCyan colors text cyan
func ColorCyan(text string) string {
	if !colorEnabled {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("6")).
		Render(text)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	if !colorEnabled {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(text)
}
