package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"canary-service/models"
	"canary-service/store"
	"canary-service/validation"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	msgTaskNotFound       = "Task not found"
	msgInvalidExternalID  = "Invalid discord_id format"
	msgInvalidDescription = "Description must be a non-empty string of at most 256 characters"
	msgInvalidNotes       = "Notes must be a string"
)

// TaskHandler handles task-related operations
type TaskHandler struct {
	store *store.Store
	rules *validation.Rules
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(s *store.Store, rules *validation.Rules) *TaskHandler {
	return &TaskHandler{
		store: s,
		rules: rules,
	}
}

// CreateTask handles POST /api/tasks
func (h *TaskHandler) CreateTask(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		logRequest(ctx, "error", "Invalid request body", zap.Error(err))
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if req.ExternalID == "" || req.Description == "" {
		logRequest(ctx, "error", "Missing required fields", zap.String("external_id", req.ExternalID))
		writeError(w, http.StatusBadRequest, "external_id and description are required")
		return
	}
	if !h.rules.ValidExternalID(req.ExternalID) {
		logRequest(ctx, "error", "Invalid external id", zap.String("external_id", req.ExternalID))
		writeError(w, http.StatusBadRequest, msgInvalidExternalID)
		return
	}
	status := models.TaskStatusPending
	if req.Status != nil {
		status = *req.Status
	}
	if !validation.ValidStatus(status) {
		logRequest(ctx, "error", "Invalid status", zap.String("status", status))
		writeError(w, http.StatusBadRequest, validation.StatusMessage())
		return
	}
	if !validation.ValidDescription(req.Description) {
		logRequest(ctx, "error", "Invalid description")
		writeError(w, http.StatusBadRequest, msgInvalidDescription)
		return
	}
	var notes string
	if req.Notes != nil {
		s, ok := req.Notes.(string)
		if !ok {
			logRequest(ctx, "error", "Invalid notes")
			writeError(w, http.StatusBadRequest, msgInvalidNotes)
			return
		}
		notes = s
	}

	logRequest(ctx, "info", "Creating task", zap.String("external_id", req.ExternalID))

	user, err := h.store.GetUserByExternalID(ctx, req.ExternalID)
	if errors.Is(err, store.ErrNotFound) {
		logRequest(ctx, "info", "User not found", zap.String("external_id", req.ExternalID))
		writeError(w, http.StatusNotFound, msgUserNotFound)
		return
	}
	if err != nil {
		writeFailure(ctx, w, "Failed to query user", err, zap.String("external_id", req.ExternalID))
		return
	}

	task, err := h.store.CreateTask(ctx, models.Task{
		UserID:      user.ID,
		Description: strings.TrimSpace(req.Description),
		Status:      status,
		Notes:       notes,
	})
	if err != nil {
		writeFailure(ctx, w, "Failed to create task", err, zap.Int("user_id", user.ID))
		return
	}

	logRequest(ctx, "info", "Task created successfully", zap.Int("task_id", task.ID))
	writeJSON(w, http.StatusCreated, models.CreateTaskResponse{Message: "Task created", TaskID: task.ID})
}

// GetTasks handles GET /api/tasks/{external_id} - tasks in creation order
func (h *TaskHandler) GetTasks(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	externalID := mux.Vars(r)["external_id"]

	if !h.rules.ValidExternalID(externalID) {
		logRequest(ctx, "error", "Invalid external id", zap.String("external_id", externalID))
		writeError(w, http.StatusBadRequest, msgInvalidExternalID)
		return
	}

	logRequest(ctx, "info", "Listing tasks", zap.String("external_id", externalID))

	user, err := h.store.GetUserByExternalID(ctx, externalID)
	if errors.Is(err, store.ErrNotFound) {
		logRequest(ctx, "info", "User not found", zap.String("external_id", externalID))
		writeError(w, http.StatusNotFound, msgUserNotFound)
		return
	}
	if err != nil {
		writeFailure(ctx, w, "Failed to query user", err, zap.String("external_id", externalID))
		return
	}

	tasks, err := h.store.ListTasks(ctx, user.ID)
	if err != nil {
		writeFailure(ctx, w, "Failed to list tasks", err, zap.Int("user_id", user.ID))
		return
	}

	logRequest(ctx, "info", "Tasks retrieved successfully", zap.Int("count", len(tasks)))
	writeJSON(w, http.StatusOK, models.TaskListResponse{Tasks: tasks})
}

// UpdateTask handles PUT /api/tasks/{id} - partial update, all or nothing
func (h *TaskHandler) UpdateTask(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	id, ok := parseTaskID(r)
	if !ok {
		logRequest(ctx, "info", "Invalid task ID", zap.String("id", mux.Vars(r)["id"]))
		writeError(w, http.StatusNotFound, msgTaskNotFound)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeFailure(ctx, w, "Failed to read request body", err)
		return
	}
	var fields map[string]json.RawMessage
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &fields); err != nil {
			logRequest(ctx, "error", "Invalid request body", zap.Error(err))
			writeError(w, http.StatusBadRequest, msgInvalidJSON)
			return
		}
	}
	if len(fields) == 0 {
		logRequest(ctx, "error", "No data provided for update", zap.Int("task_id", id))
		writeError(w, http.StatusBadRequest, "No data provided for update")
		return
	}

	upd, msg := parseTaskUpdate(fields)
	if msg != "" {
		logRequest(ctx, "error", "Invalid update", zap.Int("task_id", id), zap.String("reason", msg))
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	logRequest(ctx, "info", "Updating task", zap.Int("task_id", id))

	if _, err := h.store.UpdateTask(ctx, id, upd); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			logRequest(ctx, "info", "Task not found for update", zap.Int("task_id", id))
			writeError(w, http.StatusNotFound, msgTaskNotFound)
			return
		}
		writeFailure(ctx, w, "Failed to update task", err, zap.Int("task_id", id))
		return
	}

	logRequest(ctx, "info", "Task updated successfully", zap.Int("task_id", id))
	writeMessage(w, http.StatusOK, "Task updated successfully")
}

// DeleteTask handles DELETE /api/tasks/{id}
func (h *TaskHandler) DeleteTask(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	id, ok := parseTaskID(r)
	if !ok {
		logRequest(ctx, "info", "Invalid task ID", zap.String("id", mux.Vars(r)["id"]))
		writeError(w, http.StatusNotFound, msgTaskNotFound)
		return
	}

	logRequest(ctx, "info", "Deleting task", zap.Int("task_id", id))

	if err := h.store.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			logRequest(ctx, "info", "Task not found for deletion", zap.Int("task_id", id))
			writeError(w, http.StatusNotFound, msgTaskNotFound)
			return
		}
		writeFailure(ctx, w, "Failed to delete task", err, zap.Int("task_id", id))
		return
	}

	logRequest(ctx, "info", "Task deleted successfully", zap.Int("task_id", id))
	writeMessage(w, http.StatusOK, "Task deleted successfully")
}

// parseTaskUpdate validates every allowed field present in the body and
// returns the first validation message, if any.
func parseTaskUpdate(fields map[string]json.RawMessage) (models.TaskUpdate, string) {
	var upd models.TaskUpdate

	if raw, ok := fields["description"]; ok {
		desc, ok := rawString(raw)
		if !ok || !validation.ValidDescription(desc) {
			return models.TaskUpdate{}, msgInvalidDescription
		}
		desc = strings.TrimSpace(desc)
		upd.Description = &desc
	}
	if raw, ok := fields["status"]; ok {
		status, ok := rawString(raw)
		if !ok || !validation.ValidStatus(status) {
			return models.TaskUpdate{}, validation.StatusMessage()
		}
		upd.Status = &status
	}
	if raw, ok := fields["notes"]; ok {
		notes, ok := rawString(raw)
		if !ok {
			return models.TaskUpdate{}, msgInvalidNotes
		}
		upd.Notes = &notes
	}

	if upd.Empty() {
		return models.TaskUpdate{}, "No valid fields provided for update"
	}
	return upd, ""
}

// rawString decodes raw only when it is a JSON string; null is rejected.
func rawString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func parseTaskID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// decodeJSON decodes the request body into dst. An empty body leaves dst
// untouched so the caller's required-field checks report it.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
