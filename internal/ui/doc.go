// Package ui renders bootcfg output for the terminal.
//
// Components:
//
//   - ConfigView: a parsed config.txt grouped by section, properties highlighted
//   - RenderCmdline: kernel command-line tokens, one per line
//   - Result: success/failure boxes for the check command
//   - Confirm: a y/N prompt before boot files are rewritten
//
// Styling uses Lipgloss and is only applied when color is enabled. Color is
// normally enabled when stdout is a terminal (see StdoutIsTerminal); plain
// mode output contains no escape sequences so it can be piped or diffed.
//
// # Logging Integration
//
// This package expects logging to be controlled via the BOOTCFG_LOG_LEVEL
// environment variable. When unset, zap logging is silent and only the
// rendered output appears.
package ui
