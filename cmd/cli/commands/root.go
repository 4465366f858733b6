// Package commands is the terminal front end of the bot. It runs the same
// registered slash commands and prints their replies.
package commands

import (
	"time"

	"github.com/keshon/mcstatus-bot/internal/logging"
	"github.com/keshon/mcstatus-bot/internal/mcsrv"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	locale   string
	apiURL   string
	timeout  time.Duration
	port     string
	logLevel string
	noColor  bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "mcstatus",
		Short:        "Minecraft server status from the terminal",
		Long:         `Runs the bot's slash commands locally and prints the replies.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			logging.Setup(logging.Options{Level: level, NoColor: opts.noColor})
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.locale, "locale", "en", "Language of the replies (en|id)")
	flags.StringVar(&opts.apiURL, "api-url", mcsrv.DefaultBaseURL, "Base URL of the status API")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "Status API timeout")
	flags.StringVar(&opts.port, "default-port", mcsrv.DefaultPort, "Port used when none is given")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(
		NewCommandsCmd(opts),
		NewStatusCmd(opts),
		NewVersionCmd(),
	)

	return cmd
}
