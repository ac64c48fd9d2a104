package store

import (
	"context"
	"database/sql"
	"errors"

	"canary-service/models"

	"github.com/jmoiron/sqlx"
)

const userColumns = "id, external_id, bedtime, created_at, updated_at"

// GetUserByExternalID looks a user up by chat-platform identity.
func (s *Store) GetUserByExternalID(ctx context.Context, externalID string) (models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, "SELECT "+userColumns+" FROM users WHERE external_id = ?", externalID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, wrap("get user", err)
	}
	return user, nil
}

// UpsertUser creates the user when absent, otherwise overwrites its bedtime
// (a nil bedtime clears it).
func (s *Store) UpsertUser(ctx context.Context, externalID string, bedtime *string) (models.User, error) {
	var user models.User
	err := s.withTx(ctx, "upsert user", func(tx *sqlx.Tx) error {
		now := s.now().UTC()
		_, err := tx.ExecContext(ctx, `
			INSERT INTO users (external_id, bedtime, created_at, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (external_id) DO UPDATE SET
				bedtime = excluded.bedtime,
				updated_at = excluded.updated_at`,
			externalID, bedtime, now, now)
		if err != nil {
			return err
		}
		return tx.GetContext(ctx, &user, "SELECT "+userColumns+" FROM users WHERE external_id = ?", externalID)
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// CountUsers returns the number of stored users.
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM users"); err != nil {
		return 0, wrap("count users", err)
	}
	return n, nil
}
