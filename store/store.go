package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a referenced row does not exist
var ErrNotFound = errors.New("not found")

// Error wraps a failure reported by the database driver.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsDBError reports whether err came from the database layer.
func IsDBError(err error) bool {
	var dbErr *Error
	return errors.As(err, &dbErr)
}

func wrap(op string, err error) error {
	if err == nil || errors.Is(err, ErrNotFound) || IsDBError(err) {
		return err
	}
	return &Error{Op: op, Err: err}
}

// Store is the persistence context shared by the handlers and the scheduler.
// It is built once at startup and holds no state besides the connection pool.
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

func New(db *sqlx.DB) *Store {
	return &Store{
		db:  db,
		now: time.Now,
	}
}

// withTx runs fn inside a transaction. The transaction is rolled back when
// fn returns an error or panics.
func (s *Store) withTx(ctx context.Context, op string, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return wrap(op, err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = wrap(op, errors.Join(err, rbErr))
			}
		}
	}()

	if err = fn(tx); err != nil {
		return wrap(op, err)
	}
	if err = tx.Commit(); err != nil {
		return wrap(op, err)
	}
	return nil
}
