package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"canary-service/models"

	"github.com/jmoiron/sqlx"
)

const taskColumns = "id, user_id, description, status, COALESCE(notes, '') AS notes, created_at, updated_at"

// CreateTask inserts a task for task.UserID and returns it with its new ID.
func (s *Store) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	if task.Status == "" {
		task.Status = models.TaskStatusPending
	}
	err := s.withTx(ctx, "create task", func(tx *sqlx.Tx) error {
		now := s.now().UTC()
		res, err := tx.ExecContext(ctx, `
			INSERT INTO tasks (user_id, description, status, notes, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			task.UserID, task.Description, task.Status, task.Notes, now, now)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		task.ID = int(id)
		task.CreatedAt = now
		task.UpdatedAt = now
		return nil
	})
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// ListTasks returns the user's tasks in creation order.
func (s *Store) ListTasks(ctx context.Context, userID int) ([]models.Task, error) {
	tasks := []models.Task{}
	err := s.db.SelectContext(ctx, &tasks, "SELECT "+taskColumns+" FROM tasks WHERE user_id = ? ORDER BY id ASC", userID)
	if err != nil {
		return nil, wrap("list tasks", err)
	}
	return tasks, nil
}

// GetTask loads a single task by ID.
func (s *Store) GetTask(ctx context.Context, id int) (models.Task, error) {
	var task models.Task
	err := s.db.GetContext(ctx, &task, "SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrNotFound
	}
	if err != nil {
		return models.Task{}, wrap("get task", err)
	}
	return task, nil
}

// UpdateTask applies the non-nil fields of upd to the task in one statement.
func (s *Store) UpdateTask(ctx context.Context, id int, upd models.TaskUpdate) (models.Task, error) {
	var task models.Task
	err := s.withTx(ctx, "update task", func(tx *sqlx.Tx) error {
		setParts := []string{}
		args := []interface{}{}

		if upd.Description != nil {
			setParts = append(setParts, "description = ?")
			args = append(args, *upd.Description)
		}
		if upd.Status != nil {
			setParts = append(setParts, "status = ?")
			args = append(args, *upd.Status)
		}
		if upd.Notes != nil {
			setParts = append(setParts, "notes = ?")
			args = append(args, *upd.Notes)
		}
		setParts = append(setParts, "updated_at = ?")
		args = append(args, s.now().UTC())
		args = append(args, id)

		res, err := tx.ExecContext(ctx, "UPDATE tasks SET "+strings.Join(setParts, ", ")+" WHERE id = ?", args...)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}
		return tx.GetContext(ctx, &task, "SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
	})
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// DeleteTask removes a task permanently.
func (s *Store) DeleteTask(ctx context.Context, id int) error {
	return s.withTx(ctx, "delete task", func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
