package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - section headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success, checkmarks
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors, X marks
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings
	MutedColor   = lipgloss.Color("#626262") // Gray - comments, secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
	KeyColor     = lipgloss.Color("#5FAFFF") // Blue - property names
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
	LineIndent       = "  "
)

// Shared styles
var (
	// SectionTitleStyle is for section headers (e.g., "[pi4]")
	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// SectionMetaStyle is for the line count after a section header
	SectionMetaStyle = lipgloss.NewStyle().
				Foreground(MutedColor)

	// CommentStyle is for comment lines
	CommentStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// PropertyKeyStyle is for property names
	PropertyKeyStyle = lipgloss.NewStyle().
				Foreground(KeyColor)

	// PropertyValueStyle is for property values
	PropertyValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// SuccessTitleStyle is for the success result title
	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// ErrorTitleStyle is for the error result title
	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// ErrorMessageStyle is for error message text
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// ResultKeyStyle is for result detail keys
	ResultKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(15)

	// ResultValueStyle is for result detail values
	ResultValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// PromptStyle is for confirmation prompts
	PromptStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)
)

// Status markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
)

// Painter applies styles only when color output is enabled. Plain mode
// returns text untouched, which keeps piped output byte-exact.
type Painter struct {
	Color bool
}

// Paint renders s with style when color is enabled.
func (p Painter) Paint(style lipgloss.Style, s string) string {
	if !p.Color {
		return s
	}
	return style.Render(s)
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// StdoutIsTerminal reports whether stdout is attached to a terminal
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout)
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}
