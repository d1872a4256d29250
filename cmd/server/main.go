package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"anitrack/internal/api/controller"
	"anitrack/internal/api/repository"
	"anitrack/internal/api/service"
	"anitrack/internal/config"
	"anitrack/internal/db"
	"anitrack/internal/logger"
	"anitrack/internal/notify"
	"anitrack/internal/server"
	"anitrack/internal/telemetry"

	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// .env is optional; the config layer has defaults for everything.
	_ = godotenv.Load()
	cfg := config.Load()

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel()
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init()

	// Initialize Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisConnString)
	if err != nil {
		log.Fatalf("failed to initialize redis: %v", err)
	}

	// Initialize SQLite DB
	if err := db.InitializeDB(cfg.SQLitePath); err != nil {
		log.Fatalf("failed to initialize sqlite db: %v", err)
	}
	DB, err := db.DBConnect(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("failed to get sqlite db connection: %v", err)
	}

	// Create repositories
	userRepo := repository.NewUserRepository(DB)
	animeRepo := repository.NewAnimeRepository(DB)
	listRepo := repository.NewWatchListRepository(DB)
	sessionRepo := repository.NewSessionRepository(rdb)

	// Create notification hub
	hub := notify.NewHub()
	go hub.Run()

	// Create services
	secret := []byte(cfg.Secret)
	userService := service.NewUserService(userRepo, sessionRepo, secret, cfg.TokenTTL)
	animeService := service.NewAnimeService(animeRepo, listRepo)
	listService := service.NewWatchListService(userRepo, animeRepo, listRepo, hub)

	// Create controllers
	userController := controller.NewUserController(userService)
	animeController := controller.NewAnimeController(animeService)
	listController := controller.NewWatchListController(listService)

	// Create the Gin-based server
	srv := server.NewServer(secret, sessionRepo, hub, userController, animeController, listController)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("http server started on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
