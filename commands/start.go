package commands

import (
	"canary-service/server"

	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP API and the scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.StartServer(cfg)
	},
}
