package display

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

const DefaultWidth = 60

// Wrap word-wraps text to DefaultWidth, preserving ANSI escape sequences.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}

// Rule returns a horizontal separator line at DefaultWidth.
func Rule() string {
	return strings.Repeat("=", DefaultWidth)
}

// Section frames a demo section heading between blank-padded rules.
func Section(title string) string {
	return "\n" + Rule() + "\n" + title + "\n" + Rule() + "\n"
}
