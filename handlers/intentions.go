package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"
	"unicode/utf8"

	"canary-service/models"
	"canary-service/store"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// IntentionHandler handles intention-related operations
type IntentionHandler struct {
	store *store.Store
	now   func() time.Time
}

func NewIntentionHandler(s *store.Store) *IntentionHandler {
	return &IntentionHandler{
		store: s,
		now:   time.Now,
	}
}

// GetLatestIntention handles GET /api/intentions/{external_id}
func (h *IntentionHandler) GetLatestIntention(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	externalID := mux.Vars(r)["external_id"]
	logRequest(ctx, "info", "Getting latest intention", zap.String("external_id", externalID))

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

	intention, err := h.store.LatestIntention(ctx, user.ID)
	if errors.Is(err, store.ErrNotFound) {
		// no data yet is not an error for the caller
		writeMessage(w, http.StatusOK, "No intentions found for this user")
		return
	}
	if err != nil {
		writeFailure(ctx, w, "Failed to query intention", err, zap.Int("user_id", user.ID))
		return
	}

	logRequest(ctx, "info", "Intention retrieved successfully", zap.Int("intention_id", intention.ID))
	writeJSON(w, http.StatusOK, intention.Response())
}

// CreateIntention handles POST /api/intentions
func (h *IntentionHandler) CreateIntention(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req models.CreateIntentionRequest
	if err := decodeJSON(r, &req); err != nil {
		logRequest(ctx, "error", "Invalid request body", zap.Error(err))
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if req.ExternalID == "" || req.Text == "" {
		logRequest(ctx, "error", "Missing required fields", zap.String("external_id", req.ExternalID))
		writeError(w, http.StatusBadRequest, "external_id and text are required")
		return
	}
	if utf8.RuneCountInString(req.Text) > models.MaxIntentionTextLen {
		logRequest(ctx, "error", "Intention text too long", zap.Int("length", utf8.RuneCountInString(req.Text)))
		writeError(w, http.StatusBadRequest, "Text must be at most 512 characters")
		return
	}

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

	intention, err := h.store.CreateIntention(ctx, models.Intention{
		UserID:    user.ID,
		Text:      req.Text,
		Timestamp: h.now().UTC(),
	})
	if err != nil {
		writeFailure(ctx, w, "Failed to create intention", err, zap.Int("user_id", user.ID))
		return
	}

	logRequest(ctx, "info", "Intention created successfully", zap.Int("intention_id", intention.ID))
	writeJSON(w, http.StatusCreated, models.CreateIntentionResponse{Message: "Intention created", IntentionID: intention.ID})
}
