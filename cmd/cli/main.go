// cmd/cli/main.go
package main

import (
	"os"

	"github.com/keshon/mcstatus-bot/cmd/cli/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
