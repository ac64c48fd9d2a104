package commands

import (
	"errors"
	"regexp"

	"canary-service/database"

	"github.com/spf13/cobra"
	"github.com/umakantv/go-utils/db/migrations"
)

var (
	migrateDir    string
	migrationName string
	migrationDir  string
)

var migrationNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Long: `migrate applies every pending SQL migration. Run it once per
deploy, before starting any server instance.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := cfg.MigrationsDir
		if migrateDir != "" {
			dir = migrateDir
		}
		dbConn := database.InitializeDatabase(cfg)
		defer dbConn.Close()
		return database.Migrate(dbConn, dir)
	},
}

var createMigrationCmd = &cobra.Command{
	Use:   "create-migration",
	Short: "Create an empty migration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !migrationNamePattern.MatchString(migrationName) {
			return errors.New("--name must be alphanumeric with underscores")
		}
		migrations.CreateMigration(&migrationName, &migrationDir)
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateDir, "dir", "", "Migrations directory (defaults to MIGRATIONS_DIR)")

	createMigrationCmd.Flags().StringVar(&migrationName, "name", "", "Migration name (alphanum+underscore only)")
	createMigrationCmd.Flags().StringVar(&migrationDir, "dir", "./database/migrations", "Target directory for the new .sql file")
	_ = createMigrationCmd.MarkFlagRequired("name")
}
