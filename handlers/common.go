package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"canary-service/logging"
	"canary-service/store"

	"github.com/google/uuid"
	"github.com/umakantv/go-utils/httpserver"
	"go.uber.org/zap"
)

const (
	msgDatabaseError = "Database error occurred"
	msgInternalError = "An internal error occurred"
	msgInvalidJSON   = "Invalid JSON"
	msgUserNotFound  = "User not found"
)

type requestIDKey struct{}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// logRequest logs with the route details httpserver put in ctx
// (timestamp - route - method - path - request id - message).
func logRequest(ctx context.Context, level string, message string, fields ...zap.Field) {
	routeName := httpserver.GetRouteName(ctx)
	method := httpserver.GetRouteMethod(ctx)
	path := httpserver.GetRoutePath(ctx)
	requestID := requestIDFrom(ctx)

	logMsg := time.Now().Format("2006-01-02 15:04:05") + " - " + routeName + " - " + method + " - " + path
	if requestID != "" {
		logMsg += " - req:" + requestID
	}
	if message != "" {
		logMsg += " - " + message
	}

	allFields := append([]zap.Field{
		zap.String("route", routeName),
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
	}, fields...)

	switch level {
	case "info":
		logging.Info(logMsg, allFields...)
	case "error":
		logging.Error(logMsg, allFields...)
	case "debug":
		logging.Debug(logMsg, allFields...)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeFailure answers an unexpected error: 500 with a database message for
// store failures, a generic one otherwise. The cause is logged either way.
func writeFailure(ctx context.Context, w http.ResponseWriter, message string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	if store.IsDBError(err) {
		logRequest(ctx, "error", message+": database error", fields...)
		writeError(w, http.StatusInternalServerError, msgDatabaseError)
		return
	}
	logRequest(ctx, "error", message+": unexpected error", fields...)
	writeError(w, http.StatusInternalServerError, msgInternalError)
}

// Route binds an HTTP method and path to a handler.
type Route struct {
	Name    string
	Method  string
	Path    string
	Handler func(ctx context.Context, w http.ResponseWriter, r *http.Request)
}

// Serve runs the route handler with a fresh request id in ctx. A panic in
// the handler is logged and answered with a 500.
func (rt Route) Serve(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	ctx = withRequestID(ctx, uuid.NewString())

	defer func() {
		if p := recover(); p != nil {
			logRequest(ctx, "error", "Handler panicked", zap.String("panic", fmt.Sprint(p)), zap.Stack("stack"))
			writeError(w, http.StatusInternalServerError, msgInternalError)
		}
	}()

	rt.Handler(ctx, w, r)
}
