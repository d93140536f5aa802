// Package termui holds the small terminal helpers shared by the commands and
// the game loop.
package termui

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

const defaultWidth = 80

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the terminal width of f, or 80 if it cannot be determined
func Width(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// Rule returns a horizontal separator of the given width
func Rule(width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return strings.Repeat("-", width)
}

// WrapText wraps text to a specified width
func WrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// FormatClock renders seconds as mm:ss
func FormatClock(seconds int) string {
	minutes := seconds / 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds-60*minutes)
}
