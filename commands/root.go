package commands

import (
	"canary-service/config"
	"canary-service/logging"

	"github.com/spf13/cobra"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "canary",
	Short: "Canary productivity backend",
	Long: `canary serves the task, intention and bedtime API used by the
chat bot, and runs the background reminder scheduler.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		return logging.Init(logging.Config{
			ErrorFile:       cfg.ErrorLogFile,
			ErrorMaxSizeMB:  cfg.ErrorLogMaxSizeMB,
			ErrorMaxBackups: cfg.ErrorLogMaxBackups,
		})
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createMigrationCmd)
}
