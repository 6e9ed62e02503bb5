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

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
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
			&models.Cave{},
			&models.Entrance{},
			&models.CaveMedia{},
		},
	})
	if err != nil {
		appLog.Fatal("Failed to initialize database: ", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	publisher := events.NewPublisher(cfg.RabbitMQURL, events.ExchangeCaveEvents, appLog)
	defer publisher.Close()

	groupClient := clients.NewGroupClient(cfg.GroupServiceURL, cfg.ServiceToken)
	caveRepo := repository.NewCaveRepository(db)
	caveService := service.NewCaveService(caveRepo, publisher, groupClient, validator.New())
	ownershipService := service.NewCaveOwnershipService(caveRepo, caveService, groupClient)

	// An unreachable broker must not keep the service down; the consumer
	// reconnects on its own for as long as the process lives.
	consumer := events.NewConsumer(cfg.RabbitMQURL, events.ExchangeUserEvents, appLog)
	consumer.Register(events.EventUserDeleted, ownershipService.HandleUserDeletedEvent)
	consumer.Start(ctx)
	defer consumer.Stop()

	router := routes.SetupCaveRoutes(db, cfg, caveService)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		appLog.Infof("Starting cave service on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	appLog.Info("Shutting down cave service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLog.WithError(err).Error("Server shutdown failed")
	}
}
