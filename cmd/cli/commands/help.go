package commands

import (
	"github.com/spf13/cobra"
)

// NewCommandsCmd lists the bot commands, or describes one.
func NewCommandsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "commands [name]",
		Short: "List the bot's slash commands",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(opts)
			if err != nil {
				return err
			}
			options := map[string]string{}
			if len(args) == 1 {
				options["command"] = args[0]
			}
			return r.run(cmd.Context(), cmd.OutOrStdout(), "help", options)
		},
	}
}
