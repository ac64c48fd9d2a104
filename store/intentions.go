package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"canary-service/models"

	"github.com/jmoiron/sqlx"
)

// CreateIntention stores an intention. A zero Timestamp is stamped with the
// current time; the stored value is always UTC.
func (s *Store) CreateIntention(ctx context.Context, in models.Intention) (models.Intention, error) {
	if in.Timestamp.IsZero() {
		in.Timestamp = s.now()
	}
	in.Timestamp = in.Timestamp.UTC().Truncate(time.Microsecond)

	err := s.withTx(ctx, "create intention", func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO intentions (user_id, text, timestamp) VALUES (?, ?, ?)",
			in.UserID, in.Text, in.Timestamp)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		in.ID = int(id)
		return nil
	})
	if err != nil {
		return models.Intention{}, err
	}
	return in, nil
}

// LatestIntention returns the user's intention with the greatest timestamp,
// or ErrNotFound when the user has none.
func (s *Store) LatestIntention(ctx context.Context, userID int) (models.Intention, error) {
	var in models.Intention
	err := s.db.GetContext(ctx, &in, `
		SELECT id, user_id, text, timestamp
		FROM intentions
		WHERE user_id = ?
		ORDER BY timestamp DESC, id DESC
		LIMIT 1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Intention{}, ErrNotFound
	}
	if err != nil {
		return models.Intention{}, wrap("latest intention", err)
	}
	in.Timestamp = in.Timestamp.UTC()
	return in, nil
}
