package routes

import (
	"cavemap-backend/internal/api/handlers"
	"cavemap-backend/internal/api/middleware"
	"cavemap-backend/internal/auth"
	"cavemap-backend/internal/clients"
	"cavemap-backend/internal/config"
	"cavemap-backend/internal/repository"
	"cavemap-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// newRouter builds a gin engine with the shared middleware chain
func newRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	return router
}

// SetupCaveRoutes configures the cave service's routes
func SetupCaveRoutes(db *gorm.DB, cfg *config.Config, caveService *service.CaveService) *gin.Engine {
	router := newRouter(cfg)

	userAuth := auth.NewTokenVerifier(cfg.JWTSecret)

	healthHandler := handlers.NewHealthHandler(db, cfg.ServiceName)
	caveHandler := handlers.NewCaveHandler(caveService)

	router.GET("/health", healthHandler.Health)

	caves := router.Group("/caves")
	{
		caves.GET("", caveHandler.ListCaves)
		caves.GET("/:id", caveHandler.GetCave)
	}

	authorized := router.Group("/caves")
	authorized.Use(auth.RequireUser(userAuth))
	{
		authorized.POST("", caveHandler.CreateCave)
		authorized.PUT("/:id", caveHandler.UpdateCave)
		authorized.DELETE("/:id", caveHandler.DeleteCave)
	}

	return router
}

// SetupGroupRoutes configures the group service's routes. The
// service-token guarded endpoints answer the cave and media services'
// inheritance, cleanup, and permission queries. The assignment service is
// built by the caller, which also feeds it cave.deleted events.
func SetupGroupRoutes(db *gorm.DB, cfg *config.Config, assignmentService *service.AssignmentService) *gin.Engine {
	router := newRouter(cfg)

	validate := validator.New()
	userAuth := auth.NewTokenVerifier(cfg.JWTSecret)
	serviceAuth := auth.NewStaticTokenVerifier(cfg.ServiceToken)

	userClient := clients.NewUserClient(cfg.UserServiceURL, cfg.ServiceToken)

	groupRepo := repository.NewGroupRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	groupService := service.NewGroupService(groupRepo, memberRepo, userClient, validate)
	memberService := service.NewMemberService(groupRepo, memberRepo, userClient, validate)
	invitationService := service.NewInvitationService(groupRepo, memberRepo, invitationRepo, validate)
	applicationService := service.NewApplicationService(groupRepo, memberRepo, applicationRepo, validate)

	healthHandler := handlers.NewHealthHandler(db, cfg.ServiceName)
	groupHandler := handlers.NewGroupHandler(groupService)
	memberHandler := handlers.NewMemberHandler(memberService)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)

	router.GET("/health", healthHandler.Health)

	router.GET("/groups", groupHandler.ListGroups)
	router.GET("/groups/:id", groupHandler.GetGroup)
	router.GET("/caves/:cave_id/group", assignmentHandler.GetCaveGroup)

	authorized := router.Group("/")
	authorized.Use(auth.RequireUser(userAuth))
	{
		authorized.POST("/groups", groupHandler.CreateGroup)
		authorized.PUT("/groups/:id", groupHandler.UpdateGroup)
		authorized.DELETE("/groups/:id", groupHandler.DeleteGroup)

		authorized.GET("/groups/:id/members", memberHandler.ListMembers)
		authorized.POST("/groups/:id/members", memberHandler.AddMember)
		authorized.PUT("/groups/:id/members/:member_id", memberHandler.UpdateMemberRole)
		authorized.DELETE("/groups/:id/members/:member_id", memberHandler.RemoveMember)
		authorized.POST("/groups/:id/join", memberHandler.JoinGroup)
		authorized.POST("/groups/:id/leave", memberHandler.LeaveGroup)

		authorized.GET("/groups/:id/invitations", invitationHandler.ListGroupInvitations)
		authorized.POST("/groups/:id/invitations", invitationHandler.InviteUser)
		authorized.GET("/invitations", invitationHandler.ListMyInvitations)
		authorized.PUT("/invitations/:id", invitationHandler.RespondToInvitation)

		authorized.GET("/groups/:id/applications", applicationHandler.ListApplications)
		authorized.POST("/groups/:id/applications", applicationHandler.ApplyToGroup)
		authorized.PUT("/groups/:id/applications/:application_id", applicationHandler.ReviewApplication)

		authorized.GET("/groups/:id/caves", assignmentHandler.ListGroupCaves)
		authorized.POST("/groups/:id/caves", assignmentHandler.AssignCave)
		authorized.DELETE("/groups/:id/caves/:cave_id", assignmentHandler.UnassignCave)
	}

	internal := router.Group("/")
	internal.Use(auth.RequireService(serviceAuth))
	{
		internal.GET("/groups/caves/:cave_id/inheritance", assignmentHandler.ResolveCaveInheritance)
		internal.DELETE("/caves/:cave_id/assignments", assignmentHandler.DeleteCaveAssignments)
		internal.GET("/caves/:cave_id/permissions/:email", assignmentHandler.CheckCavePermission)
	}

	return router
}

// SetupMediaRoutes configures the media service's routes
func SetupMediaRoutes(db *gorm.DB, cfg *config.Config, mediaService *service.MediaService) *gin.Engine {
	router := newRouter(cfg)

	userAuth := auth.NewTokenVerifier(cfg.JWTSecret)

	healthHandler := handlers.NewHealthHandler(db, cfg.ServiceName)
	mediaHandler := handlers.NewMediaHandler(mediaService)

	router.GET("/health", healthHandler.Health)

	media := router.Group("/media")
	{
		media.GET("", mediaHandler.ListFiles)
		media.GET("/:id", mediaHandler.GetFile)
		media.GET("/:id/download", mediaHandler.DownloadFile)
	}

	authorized := router.Group("/media")
	authorized.Use(auth.RequireUser(userAuth))
	{
		authorized.POST("", mediaHandler.UploadFile)
		authorized.DELETE("/:id", mediaHandler.DeleteFile)
	}

	return router
}
