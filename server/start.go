package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	cachepackage "canary-service/cache"
	"canary-service/config"
	"canary-service/database"
	"canary-service/handlers"
	"canary-service/logging"
	"canary-service/scheduler"
	"canary-service/store"
	"canary-service/validation"

	"github.com/umakantv/go-utils/httpserver"
	"go.uber.org/zap"
)

// allowAll is the auth hook for httpserver; every route is public.
func allowAll(r *http.Request) (bool, httpserver.RequestAuth) {
	return true, httpserver.RequestAuth{Type: "none"}
}

// StartServer wires the service together and blocks until the server fails
// or the process receives SIGINT/SIGTERM.
func StartServer(cfg config.Config) error {
	rules, err := validation.NewRules(cfg.ExternalIDPattern)
	if err != nil {
		logging.Error("Invalid external id pattern", zap.Error(err))
		return err
	}

	logging.Info("Starting Canary Service...", zap.String("env", cfg.Env))

	dbConn := database.InitializeDatabase(cfg)
	defer dbConn.Close()

	cache, err := cachepackage.InitializeCache(cfg)
	if err != nil {
		return err
	}
	if cache != nil {
		defer cache.Close()
	}

	st := store.New(dbConn)

	userHandler := handlers.NewUserHandler(st, cache, cfg.UserCacheTTL)
	taskHandler := handlers.NewTaskHandler(st, rules)
	intentionHandler := handlers.NewIntentionHandler(st)

	srv := httpserver.New(cfg.Port, allowAll)
	for _, rt := range handlers.Routes(userHandler, taskHandler, intentionHandler) {
		srv.Register(httpserver.Route{
			Name:     rt.Name,
			Method:   rt.Method,
			Path:     rt.Path,
			AuthType: "none",
		}, httpserver.HandlerFunc(rt.Serve))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched := scheduler.New(cfg.SchedulerInterval, scheduler.NewHeartbeatJob(st))
	sched.Start(ctx)
	defer sched.Stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	logging.Info("Canary Service started", zap.String("port", cfg.Port))
	logging.Info("API endpoints: /api/user, /api/tasks, /api/intentions, /api/timer")

	select {
	case <-ctx.Done():
		logging.Info("Shutdown signal received")
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Server failed", zap.Error(err))
			return err
		}
		return nil
	}
}
