package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "agrivoice/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"agrivoice/internal/auth"
	"agrivoice/internal/cache"
	"agrivoice/internal/config"
	"agrivoice/internal/db"
	"agrivoice/internal/handler"
	"agrivoice/internal/media"
	"agrivoice/internal/model"
	"agrivoice/internal/repository"
	"agrivoice/internal/router"
	"agrivoice/internal/service"
	"agrivoice/internal/weather"
)

// @title AgriVoice API
// @version 1.0
// @description Voice-based farmer advisory backend: audio consultations, expert answers, weather alerts and a seasonal crop calendar.
// @host localhost:5000
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Consultation{},
		&model.AdvisoryEntry{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	mediaStore, err := newMediaStore(cfg)
	if err != nil {
		log.Fatalf("media store init: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	weatherClient := weather.NewClient(cfg.WeatherAPIKey, cfg.WeatherTimeout, weather.WithCache(cacheClient))

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	consultationRepo := repository.NewConsultationRepository(gormDB)
	advisoryRepo := repository.NewAdvisoryRepository(gormDB)

	// Initialize services
	userService := service.NewUserService(userRepo, auth.NewPlainCredentialStore())
	consultationService := service.NewConsultationService(consultationRepo, mediaStore)
	alertService := service.NewAlertService(advisoryRepo, weatherClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService)
	consultationHandler := handler.NewConsultationHandler(consultationService)
	alertHandler := handler.NewAlertHandler(alertService)
	mediaHandler := handler.NewMediaHandler(mediaStore)

	// Register routes
	router.Register(e, cfg, authHandler, consultationHandler, alertHandler, mediaHandler)

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	// Graceful shutdown: stop accepting requests, then release the pool.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := db.Close(gormDB); err != nil {
		log.Printf("close database: %v", err)
	}
}

func newMediaStore(cfg *config.Config) (media.Store, error) {
	if cfg.MediaBackend == "minio" {
		return media.NewMinioStore(context.Background(), media.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
		})
	}
	return media.NewDiskStore(cfg.UploadDir)
}
