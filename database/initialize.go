package database

import (
	"canary-service/config"

	"github.com/jmoiron/sqlx"
	"github.com/umakantv/go-utils/db"
	"github.com/umakantv/go-utils/db/migrations"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// InitializeDatabase opens the connection pool. It does not touch the
// schema; run the migrate command for that.
func InitializeDatabase(cfg config.Config) *sqlx.DB {
	dbConn := db.GetDBConnection(db.DatabaseConfig{
		DRIVER: cfg.DBDriver,
		DB:     cfg.DBDSN,
	})

	logger.Info("Database connection established", zap.String("driver", cfg.DBDriver))
	return dbConn
}

// Migrate applies every pending migration found in dir.
func Migrate(dbConn *sqlx.DB, dir string) error {
	if err := migrations.Migrate(dbConn, dir); err != nil {
		logger.Error("Error while running migration", zap.Error(err), zap.String("dir", dir))
		return err
	}

	logger.Info("Database migrated successfully", zap.String("dir", dir))
	return nil
}
