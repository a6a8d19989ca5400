package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prints prompt to out and reads a yes/no answer from in.
// Anything other than "y" or "yes" (case-insensitive) declines, including EOF.
func Confirm(in io.Reader, out io.Writer, prompt string, color bool) bool {
	p := Painter{Color: color}
	fmt.Fprint(out, p.Paint(PromptStyle, prompt+" [y/N]: "))

	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		fmt.Fprintln(out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	default:
		fmt.Fprintln(out, p.Paint(SectionMetaStyle, "Cancelled."))
		return false
	}
}
