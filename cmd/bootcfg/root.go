package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/bootcfg/internal/bootfs"
	"github.com/muurk/bootcfg/internal/config"
	"github.com/muurk/bootcfg/internal/logging"
	"github.com/muurk/bootcfg/internal/ui"
	"github.com/muurk/bootcfg/internal/version"
)

// app holds flag values and the state resolved before each command runs.
type app struct {
	// Flags
	prefsPath   string
	bootDir     string
	configFile  string
	cmdlineFile string
	logLevel    string
	noColor     bool

	// Resolved in setup
	prefs *config.Preferences
	part  *bootfs.Partition
	color bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "bootcfg",
		Short: "Firmware boot file editor",
		Long: `Inspect and edit the firmware config.txt and kernel cmdline.txt on a boot partition.

Edits keep comments, blank lines and section layout intact. Every line of
config.txt must be empty, a #comment, a property=value pair or a [filter]
header; anything else is reported and nothing is written.`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.prefsPath, "prefs", "", "Preferences file (default: user config dir)")
	flags.StringVar(&a.bootDir, "boot-dir", config.DefaultBootDir, "Boot partition directory")
	flags.StringVar(&a.configFile, "config-file", config.DefaultConfigFile, "Firmware config file name or path")
	flags.StringVar(&a.cmdlineFile, "cmdline-file", config.DefaultCmdlineFile, "Kernel command line file name or path")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when empty")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		a.newShowCmd(),
		a.newCheckCmd(),
		a.newFmtCmd(),
		a.newGetCmd(),
		a.newSetCmd(),
		a.newUnsetCmd(),
		a.newCmdlineCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// setup loads preferences, applies flag overrides and starts logging.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.prefsPath != "" {
		a.prefs, err = config.LoadFile(a.prefsPath)
	} else {
		a.prefs, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("boot-dir") {
		a.prefs.BootDir = a.bootDir
	}
	if flags.Changed("config-file") {
		a.prefs.ConfigFile = a.configFile
	}
	if flags.Changed("cmdline-file") {
		a.prefs.CmdlineFile = a.cmdlineFile
	}
	if flags.Changed("log-level") {
		a.prefs.LogLevel = a.logLevel
	}

	if err := logging.Initialize(a.prefs.LogLevel); err != nil {
		return err
	}

	a.part = bootfs.FromPreferences(a.prefs)
	a.color = !a.noColor && a.prefs.ColorEnabled(isTerminal(cmd.OutOrStdout()))
	return nil
}

// confirmWrite asks before a boot file is rewritten when the preferences
// require it. --yes skips the prompt.
func (a *app) confirmWrite(cmd *cobra.Command, path string, yes bool) bool {
	if yes || !a.prefs.ConfirmSave {
		return true
	}
	return ui.Confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), fmt.Sprintf("Write %s?", path), a.color)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && ui.IsTerminal(f)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bootcfg %s\n", version.Full())
		},
	}
}
