package commands

import (
	"github.com/spf13/cobra"
)

// NewStatusCmd looks up a Minecraft server.
func NewStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status <host> [port]",
		Short: "Check whether a Minecraft server is online",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(opts)
			if err != nil {
				return err
			}
			options := map[string]string{"ip": args[0]}
			if len(args) == 2 {
				options["port"] = args[1]
			}
			return r.run(cmd.Context(), cmd.OutOrStdout(), "mcstatus", options)
		},
	}
}
