package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"worldtour-tracker/internal/config"
	"worldtour-tracker/internal/database"
	"worldtour-tracker/internal/handlers"
	"worldtour-tracker/internal/logger"
	"worldtour-tracker/internal/middleware"
	"worldtour-tracker/internal/service"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	catalog := service.NewCatalog(db, log)
	characters := service.NewCharacters(db, log)
	loadouts := service.NewLoadouts(db, catalog, log)
	matches := service.NewMatches(db, log)
	api := handlers.NewAPI(catalog, characters, loadouts, matches, log)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(log))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RateLimit(cfg))

	handlers.SetupRoutes(r, api)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
		return
	}
	log.Info().Msg("server stopped gracefully")
}
