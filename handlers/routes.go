package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/umakantv/go-utils/httpserver"
)

// Routes lists every endpoint the service exposes.
func Routes(users *UserHandler, tasks *TaskHandler, intentions *IntentionHandler) []Route {
	return []Route{
		{Name: "Liveness", Method: http.MethodGet, Path: "/", Handler: Liveness},

		{Name: "GetUser", Method: http.MethodGet, Path: "/api/user/{external_id}", Handler: users.GetUser},
		{Name: "UpsertUser", Method: http.MethodPost, Path: "/api/user", Handler: users.UpsertUser},

		{Name: "CreateTask", Method: http.MethodPost, Path: "/api/tasks", Handler: tasks.CreateTask},
		{Name: "ListTasks", Method: http.MethodGet, Path: "/api/tasks/{external_id}", Handler: tasks.GetTasks},
		{Name: "UpdateTask", Method: http.MethodPut, Path: "/api/tasks/{id}", Handler: tasks.UpdateTask},
		{Name: "DeleteTask", Method: http.MethodDelete, Path: "/api/tasks/{id}", Handler: tasks.DeleteTask},

		{Name: "CreateIntention", Method: http.MethodPost, Path: "/api/intentions", Handler: intentions.CreateIntention},
		{Name: "GetLatestIntention", Method: http.MethodGet, Path: "/api/intentions/{external_id}", Handler: intentions.GetLatestIntention},

		{Name: "GetTimer", Method: http.MethodGet, Path: "/api/timer/{external_id}", Handler: GetTimer},
	}
}

// NewRouter mounts routes on a plain gorilla/mux router, putting the same
// route details in ctx that httpserver does.
func NewRouter(routes []Route) *mux.Router {
	router := mux.NewRouter()
	for _, rt := range routes {
		rt := rt
		router.HandleFunc(rt.Path, func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), httpserver.RouteNameKey, rt.Name)
			ctx = context.WithValue(ctx, httpserver.RouteMethodKey, rt.Method)
			ctx = context.WithValue(ctx, httpserver.RoutePathKey, rt.Path)
			ctx = context.WithValue(ctx, httpserver.AuthTypeKey, "none")
			rt.Serve(ctx, w, r)
		}).Methods(rt.Method).Name(rt.Name)
	}
	return router
}
