package handlers

import (
	"context"
	"net/http"

	"canary-service/models"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// placeholderPromptInterval is returned until real prompt scheduling exists.
const placeholderPromptInterval = 3600

// GetTimer handles GET /api/timer/{external_id}. It does not consult the
// store; the response shape is the contract clients depend on.
func GetTimer(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	externalID := mux.Vars(r)["external_id"]
	logRequest(ctx, "debug", "Timer requested", zap.String("external_id", externalID))

	writeJSON(w, http.StatusOK, models.TimerResponse{
		ExternalID:          externalID,
		NextPromptInSeconds: placeholderPromptInterval,
	})
}

// Liveness handles GET /
func Liveness(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Canary backend is running!"))
}
