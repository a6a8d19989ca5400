package fwconfig

import (
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/bootcfg/internal/logging"
)

// Parse classifies every line of text and buckets the result by section.
//
// Only the trailing run of '\n' characters is removed before splitting; blank
// lines and whitespace inside the body are kept. The first line that cannot
// be classified aborts parsing with an *UnrecognizedLineError.
func Parse(text string) (*FirmwareConfig, error) {
	rawLines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	lines := make([]Line, 0, len(rawLines))
	for i, raw := range rawLines {
		line, err := Classify(raw, i)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	cfg := Bucketize(lines)

	logging.Debug("Parsed firmware config",
		zap.Int("lines", len(lines)),
		zap.Int("filters", len(cfg.Filters)),
		zap.Bool("has_all", cfg.HasAll),
	)

	return cfg, nil
}

// Bucketize groups classified lines into sections in a single pass.
//
// A filter header selects the current section and is not stored. Lines seen
// before any header go to Global, lines under "[all]" go to All, and every
// other header's lines go to the filter section of that name. Headers that
// repeat continue the existing section.
func Bucketize(lines []Line) *FirmwareConfig {
	cfg := New()

	var current *[]Line
	for _, line := range lines {
		if line.IsFilter() {
			current = cfg.bucket(line.Filter, true)
			continue
		}

		if current == nil {
			cfg.Global = append(cfg.Global, line)
			continue
		}

		*current = append(*current, line)
	}

	return cfg
}
