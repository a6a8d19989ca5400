// Bootcfg inspects and edits firmware boot files.
//
// It reads the config.txt firmware configuration (property=value settings
// grouped under [filter] sections) and the cmdline.txt kernel command line
// from a boot partition, and writes them back without disturbing comments,
// blank lines or section layout.
//
// Usage:
//
//	bootcfg [command] [flags]
//
// See 'bootcfg --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/muurk/bootcfg/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
