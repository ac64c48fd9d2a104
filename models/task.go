package models

import "time"

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"

	MaxTaskDescriptionLen = 256
)

// TaskStatuses lists the allowed statuses in display order
var TaskStatuses = []string{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}

type Task struct {
	ID          int       `json:"id" db:"id"`
	UserID      int       `json:"-" db:"user_id"`
	Description string    `json:"description" db:"description"`
	Status      string    `json:"status" db:"status"`
	Notes       string    `json:"notes" db:"notes"`
	CreatedAt   time.Time `json:"-" db:"created_at"`
	UpdatedAt   time.Time `json:"-" db:"updated_at"`
}

// CreateTaskRequest is the POST /api/tasks body.
// Status is nil only when absent; Notes is kept raw so a non-string value
// can be rejected.
type CreateTaskRequest struct {
	ExternalID  string  `json:"external_id"`
	Description string  `json:"description"`
	Status      *string `json:"status"`
	Notes       any    `json:"notes"`
}

// TaskUpdate carries the fields of a partial update; nil means untouched.
type TaskUpdate struct {
	Description *string
	Status      *string
	Notes       *string
}

// Empty reports whether the update touches nothing.
func (u TaskUpdate) Empty() bool {
	return u.Description == nil && u.Status == nil && u.Notes == nil
}

type TaskListResponse struct {
	Tasks []Task `json:"tasks"`
}

type CreateTaskResponse struct {
	Message string `json:"message"`
	TaskID  int    `json:"task_id"`
}
