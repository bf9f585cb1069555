package main

import (
	"github.com/spf13/cobra"

	"ssair/internal/version"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "irtool",
		Short:         "Inspect and exercise the ssair intermediate representation",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	var colorize bool
	root.PersistentFlags().BoolVar(&colorize, "color", false, "colorize pretty-printed IR output")

	root.AddCommand(newPrintCmd(&colorize))
	root.AddCommand(newEventsCmd())
	return root
}
