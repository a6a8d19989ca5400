package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/bootcfg/internal/cmdline"
	"github.com/muurk/bootcfg/internal/ui"
)

func (a *app) newCmdlineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmdline",
		Short: "Inspect and edit the kernel command line (cmdline.txt)",
	}

	cmd.AddCommand(
		a.newCmdlineShowCmd(),
		a.newCmdlineGetCmd(),
		a.newCmdlineSetCmd(),
		a.newCmdlineRemoveCmd(),
	)
	return cmd
}

func (a *app) newCmdlineShowCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "List kernel command-line parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := a.part.ReadCmdline()
			if err != nil {
				return err
			}
			if raw {
				fmt.Fprintln(cmd.OutOrStdout(), cmdline.Stringify(params))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.RenderCmdline(params, a.color))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the command line as a single line")
	return cmd
}

func (a *app) newCmdlineGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Print the value of a kernel parameter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := a.part.ReadCmdline()
			if err != nil {
				return err
			}
			value, ok := params.Get(args[0])
			if !ok {
				return fmt.Errorf("parameter %q not present", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func (a *app) newCmdlineSetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "set NAME[=VALUE]",
		Short: "Add or change a kernel parameter",
		Example: `  bootcfg cmdline set quiet
  bootcfg cmdline set console=tty1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, value, _ := strings.Cut(args[0], "=")
			if name == "" || strings.ContainsAny(args[0], " \t\n") {
				return fmt.Errorf("invalid parameter %q", args[0])
			}

			params, err := a.part.ReadCmdline()
			if err != nil {
				return err
			}
			params = params.Set(name, value)

			if !a.confirmWrite(cmd, a.part.CmdlinePath(), yes) {
				return nil
			}
			return a.part.WriteCmdline(params)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func (a *app) newCmdlineRemoveCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove every occurrence of a kernel parameter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := a.part.ReadCmdline()
			if err != nil {
				return err
			}
			if !params.Has(args[0]) {
				return fmt.Errorf("parameter %q not present", args[0])
			}
			params = params.Remove(args[0])

			if !a.confirmWrite(cmd, a.part.CmdlinePath(), yes) {
				return nil
			}
			return a.part.WriteCmdline(params)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
