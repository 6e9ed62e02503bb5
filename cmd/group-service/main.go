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
			&models.Group{},
			&models.GroupMember{},
			&models.GroupInvitation{},
			&models.GroupApplication{},
			&models.GroupCave{},
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

	caveClient := clients.NewCaveClient(cfg.CaveServiceURL, cfg.ServiceToken)
	userClient := clients.NewUserClient(cfg.UserServiceURL, cfg.ServiceToken)
	assignmentService := service.NewAssignmentService(
		repository.NewAssignmentRepository(db),
		repository.NewMemberRepository(db),
		repository.NewGroupRepository(db),
		caveClient,
		userClient,
		validator.New(),
	)
	userDeletionService := service.NewUserDeletionService(db)

	userConsumer := events.NewConsumer(cfg.RabbitMQURL, events.ExchangeUserEvents, appLog)
	userConsumer.Register(events.EventUserDeleted, userDeletionService.HandleUserDeletedEvent)
	userConsumer.Start(ctx)
	defer userConsumer.Stop()

	// Assignments of a deleted cave are cleaned up from the fan-out, not
	// only from the internal endpoint the cave service calls during a
	// user-deletion cascade.
	caveConsumer := events.NewConsumer(cfg.RabbitMQURL, events.ExchangeCaveEvents, appLog)
	caveConsumer.Register(events.EventCaveDeleted, assignmentService.HandleCaveDeletedEvent)
	caveConsumer.Start(ctx)
	defer caveConsumer.Stop()

	router := routes.SetupGroupRoutes(db, cfg, assignmentService)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		appLog.Infof("Starting group service on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	appLog.Info("Shutting down group service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLog.WithError(err).Error("Server shutdown failed")
	}
}
