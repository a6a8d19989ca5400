package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
)

// Detail is one key-value row of a result box
type Detail struct {
	Key   string
	Value string
}

// Result represents a result box (success or failure)
type Result struct {
	Type            ResultType // Success or failure
	Title           string     // e.g., "config.txt is valid"
	Details         []Detail   // Rows in display order
	Error           error      // Error (for failure results)
	Troubleshooting []string   // Tips (for failure results)
	Width           int        // Terminal width
	Painter
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, color bool) *Result {
	return &Result{
		Type:    ResultSuccess,
		Title:   title,
		Width:   GetTerminalWidth(),
		Painter: Painter{Color: color},
	}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, troubleshooting []string, color bool) *Result {
	return &Result{
		Type:            ResultFailure,
		Title:           title,
		Error:           err,
		Troubleshooting: troubleshooting,
		Width:           GetTerminalWidth(),
		Painter:         Painter{Color: color},
	}
}

// AddDetail appends a detail row
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Detail{Key: key, Value: value})
	return r
}

// Render returns the result as a string. With color disabled the output is
// plain text without borders.
func (r *Result) Render() string {
	var lines []string

	marker, label, titleStyle := SuccessMarker, "OK", SuccessTitleStyle
	if r.Type == ResultFailure {
		marker, label, titleStyle = FailureMarker, "FAILED", ErrorTitleStyle
	}
	lines = append(lines, r.Paint(titleStyle, fmt.Sprintf("%s %s: %s", marker, label, r.Title)))

	for _, d := range r.Details {
		key := fmt.Sprintf("%s:", d.Key)
		if !r.Color {
			key = fmt.Sprintf("%-15s", key)
		}
		lines = append(lines, "  "+r.Paint(ResultKeyStyle, key)+" "+r.Paint(ResultValueStyle, d.Value))
	}

	if r.Error != nil {
		lines = append(lines, "  "+r.Paint(ErrorMessageStyle, "Error: "+r.Error.Error()))
	}

	if len(r.Troubleshooting) > 0 {
		lines = append(lines, "", "  Troubleshooting:")
		for _, tip := range r.Troubleshooting {
			lines = append(lines, "    • "+tip)
		}
	}

	content := strings.Join(lines, "\n")
	if !r.Color {
		return content
	}

	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	border := SuccessColor
	if r.Type == ResultFailure {
		border = ErrorColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width-2).
		Padding(0, 1).
		Render(content)
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
