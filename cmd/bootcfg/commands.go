package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/bootcfg/internal/fwconfig"
	"github.com/muurk/bootcfg/internal/logging"
	"github.com/muurk/bootcfg/internal/ui"
)

// errCheckFailed is returned by check after the failure has been rendered.
var errCheckFailed = errors.New("config check failed")

func (a *app) newShowCmd() *cobra.Command {
	var (
		sections []string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show config.txt grouped by section",
		Long: `Display the firmware config grouped by section.

Lines before the first header are shown as (global). The [all] section is
always listed last, matching how the file is written back.`,
		Example: `  # Show every section
  bootcfg show

  # Only the pi4 and all sections
  bootcfg show --section pi4 --section all

  # Machine-readable output
  bootcfg show --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.part.ReadConfig()
			if err != nil {
				return err
			}

			for _, name := range sections {
				if !cfg.HasSection(name) {
					return fmt.Errorf("section %q not found", name)
				}
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				data, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
			case "yaml":
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("failed to marshal YAML: %w", err)
				}
				fmt.Fprint(out, string(data))
			case "text":
				view := ui.NewConfigView(cfg, a.color)
				view.Sections = sections
				fmt.Fprint(out, view.Render())
			default:
				return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&sections, "section", nil, "Section to show (repeatable; use __global for lines before any header)")
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json, yaml)")
	return cmd
}

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that every line of config.txt is recognized",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.part.ConfigPath()
			out := cmd.OutOrStdout()

			cfg, err := a.part.ReadConfig()
			if err != nil {
				var lineErr *fwconfig.UnrecognizedLineError
				if !errors.As(err, &lineErr) {
					return err
				}
				result := ui.NewFailureResult(path+" has an unrecognized line", nil, []string{
					"Lines must be empty, start with #, be property=value, or a [filter] header",
					"Whitespace-only lines and spaces around '=' are not allowed",
					"Check for Windows line endings (\\r\\n)",
				}, a.color)
				result.AddDetail("Line", strconv.Itoa(lineErr.Index+1))
				result.AddDetail("Content", strconv.Quote(lineErr.Line))
				fmt.Fprintln(out, result.Render())
				return errCheckFailed
			}

			// The global bucket always exists; count it only when it holds lines.
			sections, props := 0, 0
			for _, name := range cfg.SectionNames() {
				if name == fwconfig.GlobalSection && len(cfg.Global) == 0 {
					continue
				}
				sections++
				props += len(cfg.Properties(name))
			}
			result := ui.NewSuccessResult(path+" is valid", a.color)
			result.AddDetail("Sections", strconv.Itoa(sections))
			result.AddDetail("Properties", strconv.Itoa(props))
			fmt.Fprintln(out, result.Render())
			return nil
		},
	}
}

func (a *app) newFmtCmd() *cobra.Command {
	var write, yes bool

	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Print config.txt with sections regrouped",
		Long: `Print the firmware config as it would be written back: global lines first,
each filter section gathered under a single header in first-seen order, and
[all] last. With --write the file is rewritten in place when it changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, text, err := a.part.ReadConfigWithText()
			if err != nil {
				return err
			}
			formatted := fwconfig.Stringify(cfg)

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), formatted)
				return nil
			}

			if formatted == text {
				logging.Info("Config already formatted", zap.String("path", a.part.ConfigPath()))
				return nil
			}
			if !a.confirmWrite(cmd, a.part.ConfigPath(), yes) {
				return nil
			}
			return a.part.WriteConfig(cfg)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Rewrite config.txt in place")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func (a *app) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get SECTION PROPERTY",
		Short: "Print the value of a property",
		Long: `Print the value of the last assignment of PROPERTY in SECTION.

Use __global for lines before any header and all for the [all] section.`,
		Example: `  bootcfg get __global dtparam
  bootcfg get pi4 arm_boost`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.part.ReadConfig()
			if err != nil {
				return err
			}

			value, ok := cfg.Get(args[0], args[1])
			if !ok {
				return fmt.Errorf("property %q not set in section %q", args[1], args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func (a *app) newSetCmd() *cobra.Command {
	var yes, dryRun bool

	cmd := &cobra.Command{
		Use:   "set SECTION PROPERTY VALUE",
		Short: "Set a property in a section",
		Long: `Set PROPERTY to VALUE in SECTION.

The last existing assignment is changed in place; otherwise the property is
appended to the section, creating the section if needed.`,
		Example: `  bootcfg set all enable_uart 1
  bootcfg set pi4 arm_boost 1 --dry-run`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			section, property, value := args[0], args[1], args[2]

			cfg, err := a.part.ReadConfig()
			if err != nil {
				return err
			}

			old, _ := cfg.Get(section, property)
			if err := cfg.Set(section, property, value); err != nil {
				return err
			}
			logging.LogEdit(section, property, old, value)

			return a.writeConfig(cmd, cfg, yes, dryRun)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the result instead of writing it")
	return cmd
}

func (a *app) newUnsetCmd() *cobra.Command {
	var yes, dryRun bool

	cmd := &cobra.Command{
		Use:   "unset SECTION PROPERTY",
		Short: "Remove every assignment of a property from a section",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			section, property := args[0], args[1]

			cfg, err := a.part.ReadConfig()
			if err != nil {
				return err
			}

			old, _ := cfg.Get(section, property)
			if n := cfg.Remove(section, property); n == 0 {
				return fmt.Errorf("property %q not set in section %q", property, section)
			}
			logging.LogEdit(section, property, old, "")

			return a.writeConfig(cmd, cfg, yes, dryRun)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the result instead of writing it")
	return cmd
}

// writeConfig prints cfg for a dry run, otherwise writes it after confirmation.
func (a *app) writeConfig(cmd *cobra.Command, cfg *fwconfig.FirmwareConfig, yes, dryRun bool) error {
	if dryRun {
		fmt.Fprint(cmd.OutOrStdout(), fwconfig.Stringify(cfg))
		return nil
	}
	if !a.confirmWrite(cmd, a.part.ConfigPath(), yes) {
		return nil
	}
	return a.part.WriteConfig(cfg)
}
