// Package cli wires the appa command line.
package cli

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mabrarov/appa/internal/greeter"
)

const argsEnd = "--"

// NewRoot returns the appa command. Every argument is taken verbatim,
// flags included: only the first one is used as the name. A single
// leading "--" is dropped.
func NewRoot() *cobra.Command {
	return &cobra.Command{
		Use:                "appa [name]",
		Short:              "Print a greeting",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && args[0] == argsEnd {
				args = args[1:]
			}
			return greet(cmd, args)
		},
	}
}

// Run executes cmd with args, the process arguments without the program name.
func Run(cmd *cobra.Command, args []string) error {
	// cobra stops looking for subcommands at "--", so a name such as
	// "__complete" never reaches its hidden completion command.
	cmd.SetArgs(slices.Concat([]string{argsEnd}, args))
	return cmd.Execute()
}

func greet(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	name, err := lo.Nth(args, 0)
	if err == nil {
		if _, err := fmt.Fprintln(out, greeter.Greet(&name)); err != nil {
			return fmt.Errorf("write greeting: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintln(out, greeter.Greet(nil)); err != nil {
		return fmt.Errorf("write greeting: %w", err)
	}
	if _, err := fmt.Fprintln(out, greeter.Usage); err != nil {
		return fmt.Errorf("write usage: %w", err)
	}
	return nil
}
