package main

import (
	"github.com/spf13/cobra"

	"ssair/internal/irevent"
)

func newEventsCmd() *cobra.Command {
	var msgpackOut bool
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Build the sample function and dump the mutation log it produced",
		RunE: func(cmd *cobra.Command, args []string) error {
			stream := irevent.NewStream()
			fn := buildSample(stream)
			if err := fn.Validate(); err != nil {
				return err
			}
			events := stream.Events()
			if msgpackOut {
				return irevent.EncodeMsgpack(cmd.OutOrStdout(), events)
			}
			return irevent.EncodeNDJSON(cmd.OutOrStdout(), events)
		},
	}
	cmd.Flags().BoolVar(&msgpackOut, "msgpack", false, "emit msgpack instead of newline-delimited JSON")
	return cmd
}
