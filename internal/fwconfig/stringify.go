package fwconfig

import "strings"

// Stringify reconstructs config text from a FirmwareConfig.
//
// Output order is fixed: global lines without a header, each filter section
// behind a generated "[name]" header in Filters order, then "[all]" and its
// lines. Every line's Text is written as-is. Lines are joined with '\n' and
// the result always ends with exactly one '\n'.
//
// Section names containing '[', ']' or a newline produce text that will not
// parse back; use ValidateSectionName before adding such names by hand.
func Stringify(cfg *FirmwareConfig) string {
	if cfg == nil {
		return "\n"
	}

	var b strings.Builder
	write := func(text string) {
		b.WriteString(text)
		b.WriteByte('\n')
	}

	for _, l := range cfg.Global {
		write(l.Text)
	}

	for _, s := range cfg.Filters {
		write(NewFilterLine(s.Name).Text)
		for _, l := range s.Lines {
			write(l.Text)
		}
	}

	if cfg.HasSection(AllSection) {
		write(NewFilterLine(AllSection).Text)
		for _, l := range cfg.All {
			write(l.Text)
		}
	}

	// An empty config still yields one (empty) line.
	if b.Len() == 0 {
		return "\n"
	}
	return b.String()
}
