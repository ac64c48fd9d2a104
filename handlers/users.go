package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"canary-service/models"
	"canary-service/store"
	"canary-service/validation"

	"github.com/gorilla/mux"
	"github.com/umakantv/go-utils/cache"
	"go.uber.org/zap"
)

// UserHandler handles user-related operations
type UserHandler struct {
	store    *store.Store
	cache    cache.Cache // nil disables caching
	cacheTTL time.Duration
}

// NewUserHandler creates a new user handler
func NewUserHandler(s *store.Store, c cache.Cache, cacheTTL time.Duration) *UserHandler {
	return &UserHandler{
		store:    s,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func userCacheKey(externalID string) string {
	return "user:" + externalID
}

// GetUser handles GET /api/user/{external_id}
func (h *UserHandler) GetUser(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	externalID := mux.Vars(r)["external_id"]
	logRequest(ctx, "info", "Getting user", zap.String("external_id", externalID))

	if h.cache != nil {
		if cached, err := h.cache.Get(userCacheKey(externalID)); err == nil {
			if body, ok := cachedBytes(cached); ok {
				logRequest(ctx, "debug", "Serving user from cache", zap.String("external_id", externalID))
				w.Header().Set("Content-Type", "application/json")
				w.Write(body)
				return
			}
		}
	}

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

	response, err := json.Marshal(user)
	if err != nil {
		writeFailure(ctx, w, "Failed to encode user", err)
		return
	}
	if h.cache != nil {
		// stored as a string: the redis backend JSON-encodes values
		if err := h.cache.Set(userCacheKey(externalID), string(response), h.cacheTTL); err != nil {
			logRequest(ctx, "error", "Failed to cache user", zap.Error(err))
		}
	}

	logRequest(ctx, "info", "User retrieved successfully", zap.Int("user_id", user.ID))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(response)
}

// UpsertUser handles POST /api/user - create the user or overwrite its bedtime
func (h *UserHandler) UpsertUser(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req models.UpsertUserRequest
	if err := decodeJSON(r, &req); err != nil {
		logRequest(ctx, "error", "Invalid request body", zap.Error(err))
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if req.ExternalID == "" {
		logRequest(ctx, "error", "Missing external_id")
		writeError(w, http.StatusBadRequest, "external_id is required")
		return
	}
	if req.Bedtime != nil && !validation.ValidBedtime(*req.Bedtime) {
		logRequest(ctx, "error", "Invalid bedtime", zap.String("bedtime", *req.Bedtime))
		writeError(w, http.StatusBadRequest, "bedtime must be in HH:MM format")
		return
	}

	logRequest(ctx, "info", "Upserting user", zap.String("external_id", req.ExternalID))

	user, err := h.store.UpsertUser(ctx, req.ExternalID, req.Bedtime)
	if err != nil {
		writeFailure(ctx, w, "Failed to upsert user", err, zap.String("external_id", req.ExternalID))
		return
	}

	if h.cache != nil {
		h.cache.Delete(userCacheKey(req.ExternalID))
	}

	logRequest(ctx, "info", "User saved successfully", zap.Int("user_id", user.ID))
	writeJSON(w, http.StatusOK, user)
}

func cachedBytes(v interface{}) ([]byte, bool) {
	switch b := v.(type) {
	case []byte:
		return b, true
	case string:
		return []byte(b), true
	}
	return nil, false
}
