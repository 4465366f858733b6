package commands

import (
	"fmt"
	"runtime"

	"github.com/keshon/mcstatus-bot/internal/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s/%s\n", version.AppName, version.Version, runtime.GOOS, runtime.GOARCH)
		},
	}
}
