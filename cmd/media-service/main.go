package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"cavemap-backend/internal/api/routes"
	"cavemap-backend/internal/clients"
	"cavemap-backend/internal/config"
	"cavemap-backend/internal/database"
	"cavemap-backend/internal/database/models"
	"cavemap-backend/internal/events"
	"cavemap-backend/internal/logger"
	"cavemap-backend/internal/repository"
	"cavemap-backend/internal/service"
	"cavemap-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	logger.Setup(cfg.LogLevel)
	appLog := logger.WithService(cfg.ServiceName)

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		Models: []interface{}{
			&models.MediaFile{},
			&models.MediaMetadata{},
		},
	})
	if err != nil {
		appLog.Fatal("Failed to initialize database: ", err)
	}

	store, err := storage.NewLocalStore(cfg.MediaStoragePath)
	if err != nil {
		appLog.Fatal("Failed to initialize blob storage: ", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	caveClient := clients.NewCaveClient(cfg.CaveServiceURL, cfg.ServiceToken)
	groupClient := clients.NewGroupClient(cfg.GroupServiceURL, cfg.ServiceToken)
	mediaRepo := repository.NewMediaRepository(db)
	mediaService := service.NewMediaService(mediaRepo, store, caveClient, groupClient)

	consumer := events.NewConsumer(cfg.RabbitMQURL, events.ExchangeCaveEvents, appLog)
	consumer.Register(events.EventCaveDeleted, mediaService.HandleCaveDeletedEvent)
	consumer.Start(ctx)
	defer consumer.Stop()

	router := routes.SetupMediaRoutes(db, cfg, mediaService)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		appLog.Infof("Starting media service on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	appLog.Info("Shutting down media service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLog.WithError(err).Error("Server shutdown failed")
	}
}
