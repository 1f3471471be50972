package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "taskmanager/docs"
	"taskmanager/internal/config"
	"taskmanager/internal/handlers"
	"taskmanager/internal/logger"
	"taskmanager/internal/repository"
	"taskmanager/internal/repository/db"
	"taskmanager/internal/server"
	"taskmanager/internal/service"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title                       Task Manager API
// @version                     1.0
// @description                 Projects, tasks and labels per user, with bearer-token auth.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @securityDefinitions.basic   BasicAuth
func main() {
	cfg, err := config.Load("configs")
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.LogLevel)
	if cfg.LogLevel != logger.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	conn, err := db.InitDB(context.Background(), cfg.DBPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err, "path", cfg.DBPath)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, service.AuthConfig{
		SigningKey:    cfg.Auth.SigningKey,
		TokenTTL:      cfg.Auth.TokenTTL,
		ActivationTTL: cfg.Auth.ActivationTTL,
		AdminEmail:    cfg.AdminEmail,
	}, log)
	apiHandler := handlers.NewHandler(services, log.Named("http"))

	srv := server.New(cfg.Port, apiHandler.InitRoutes())
	runHTTPServer(srv, log)
	log.Infow("server started", "port", cfg.Port, "db", cfg.DBPath)

	waitForShutdown(srv, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, log *logger.Logger) {
	go func() {
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown blocks until SIGINT/SIGTERM, then drains in-flight requests.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
	_ = log.Sync()
}
