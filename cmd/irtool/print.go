package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ssair/internal/ir"
)

func newPrintCmd(colorize *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Build the sample function and pretty-print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			fn := buildSample(nil)
			if err := fn.Validate(); err != nil {
				return err
			}
			module := ir.NewModule("sample")
			module.AddFunction(fn)
			fmt.Fprint(cmd.OutOrStdout(), ir.PrintModule(module, *colorize))
			return nil
		},
	}
}
