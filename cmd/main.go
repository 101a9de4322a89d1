package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"blog_api/internal/config"
	"blog_api/internal/handlers"
	"blog_api/internal/logger"
	"blog_api/internal/repository"
	"blog_api/internal/repository/db"
	"blog_api/internal/server"
	"blog_api/internal/service"
)

// @title                       Blog API
// @version                     1.0
// @description                 Authenticated CRUD over blog posts.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	gdb, err := db.Open(cfg.DB, logger.NewGormLogger(log, cfg.Log.Level, cfg.DB.SlowThreshold))
	if err != nil {
		log.Fatalw("failed to open database", "driver", cfg.DB.Driver, "err", err)
	}
	defer func() {
		if cerr := db.Close(gdb); cerr != nil {
			log.Errorw("failed to close database", "err", cerr)
		}
	}()

	if cfg.DB.AutoMigrate {
		if err := db.EnsureSchema(gdb); err != nil {
			log.Fatalw("failed to ensure schema", "err", err)
		}
	}

	// wire dependencies
	repos := repository.NewRepository(gdb)
	services := service.NewService(repos, cfg.Auth)
	apiHandler := handlers.NewHandler(services, log)

	srv := server.New(cfg.HTTP)
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(srv, cfg.HTTP, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		log.Infow("http server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown blocks until SIGINT/SIGTERM, then drains in-flight requests.
func waitForShutdown(srv *server.Server, cfg config.HTTPConfig, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
