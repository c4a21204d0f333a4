package routes

import (
	"fmt"
	"net/http"

	"dealspace-backend/internal/api/handlers"
	"dealspace-backend/internal/api/middleware"
	"dealspace-backend/internal/auth"
	"dealspace-backend/internal/config"
	"dealspace-backend/internal/database/models"
	"dealspace-backend/internal/metrics"
	"dealspace-backend/internal/repository"
	"dealspace-backend/internal/service"
	"dealspace-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application. redisClient may
// be nil, in which case revoked tokens are tracked in memory.
func SetupRoutes(db *gorm.DB, cfg *config.Config, redisClient redis.Cmdable, store storage.Storage) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	validator := service.NewValidator()

	// Initialize repositories
	tenantRepo := repository.NewTenantRepository(db)
	userRepo := repository.NewUserRepository(db)
	stageRepo := repository.NewStageRepository(db)
	personRepo := repository.NewPersonRepository(db)
	emailRepo := repository.NewEmailRepository(db)
	phoneRepo := repository.NewPhoneRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	tagRepo := repository.NewTagRepository(db)
	collaboratorRepo := repository.NewCollaboratorRepository(db)
	fileRepo := repository.NewFileRepository(db)
	pondRepo := repository.NewPondRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	ruleRepo := repository.NewLeadFlowRuleRepository(db)

	// Initialize auth
	authConfig := auth.NewAuthConfig(cfg)
	var blacklist auth.Blacklist
	if redisClient != nil {
		blacklist = auth.NewRedisBlacklist(redisClient)
	}
	tokens, err := auth.NewTokenService(authConfig, blacklist)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	socialClient := auth.NewSocialClient(authConfig)

	// Initialize services
	authService := service.NewAuthService(tenantRepo, userRepo, tokens, socialClient, validator)
	authMiddleware := auth.NewAuthMiddleware(tokens, authService)
	userService := service.NewUserService(userRepo, tenantRepo, validator)
	stageService := service.NewStageService(stageRepo, validator)
	groupService := service.NewGroupService(groupRepo, userRepo, validator)
	pondService := service.NewPondService(pondRepo, userRepo, validator)
	leadFlowService := service.NewLeadFlowService(ruleRepo, personRepo, tagRepo, userRepo, pondRepo, groupRepo, stageRepo, groupService, validator)
	personService := service.NewPersonService(personRepo, tenantRepo, stageRepo, userRepo, pondRepo, groupRepo, leadFlowService, validator)
	emailService := service.NewEmailService(emailRepo, personRepo, validator)
	phoneService := service.NewPhoneService(phoneRepo, personRepo, validator)
	addressService := service.NewAddressService(addressRepo, personRepo, validator)
	tagService := service.NewTagService(tagRepo, personRepo, validator)
	collaboratorService := service.NewCollaboratorService(collaboratorRepo, personRepo, userRepo, validator)
	fileService := service.NewFileService(fileRepo, personRepo, store, cfg.MaxUploadBytes())
	enumService := service.NewEnumService()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, redisClient, Version)
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	stageHandler := handlers.NewStageHandler(stageService)
	personHandler := handlers.NewPersonHandler(personService)
	emailHandler := handlers.NewEmailHandler(emailService)
	phoneHandler := handlers.NewPhoneHandler(phoneService)
	addressHandler := handlers.NewAddressHandler(addressService)
	tagHandler := handlers.NewTagHandler(tagService)
	collaboratorHandler := handlers.NewCollaboratorHandler(collaboratorService)
	fileHandler := handlers.NewFileHandler(fileService)
	groupHandler := handlers.NewGroupHandler(groupService)
	pondHandler := handlers.NewPondHandler(pondService)
	leadFlowHandler := handlers.NewLeadFlowHandler(leadFlowService)
	enumHandler := handlers.NewEnumHandler(enumService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded files for the local driver
	if local, ok := store.(*storage.LocalStorage); ok {
		router.Static("/storage", local.Root())
	}

	managers := authMiddleware.RequireRole(string(models.UserRoleOwner), string(models.UserRoleAdmin))

	api := router.Group("/api")
	api.Use(middleware.BodyLimit(cfg.MaxUploadBytes() + 1<<20))
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/social-login", authHandler.SocialLogin)

			protected := authRoutes.Group("", authMiddleware.RequireAuth())
			protected.POST("/logout", authHandler.Logout)
			protected.GET("/me", authHandler.Me)
			protected.PUT("/update", authHandler.UpdateProfile)
		}

		secured := api.Group("", authMiddleware.RequireAuth())

		people := secured.Group("/people")
		{
			// Static segments before the :id routes
			stages := people.Group("/stages")
			{
				stages.GET("", stageHandler.ListStages)
				stages.GET("/:id", stageHandler.GetStage)
				stages.POST("", managers, stageHandler.CreateStage)
				stages.PUT("/:id", managers, stageHandler.UpdateStage)
				stages.DELETE("/:id", managers, stageHandler.DeleteStage)
			}
			people.POST("/import", personHandler.ImportPeople)
			people.GET("/download-template", personHandler.DownloadTemplate)
			people.DELETE("/bulk-delete", personHandler.BulkDeletePeople)
			people.POST("/bulk-export", personHandler.BulkExportPeople)

			people.GET("", personHandler.ListPeople)
			people.POST("", personHandler.CreatePerson)
			people.GET("/:id", personHandler.GetPerson)
			people.PUT("/:id", personHandler.UpdatePerson)
			people.DELETE("/:id", personHandler.DeletePerson)
			people.POST("/:id/claim", personHandler.ClaimPerson)

			emails := people.Group("/:id/emails")
			{
				emails.GET("", emailHandler.ListEmails)
				emails.POST("", emailHandler.CreateEmail)
				emails.GET("/:emailId", emailHandler.GetEmail)
				emails.PUT("/:emailId", emailHandler.UpdateEmail)
				emails.DELETE("/:emailId", emailHandler.DeleteEmail)
				emails.PUT("/:emailId/primary", emailHandler.SetPrimaryEmail)
			}

			phones := people.Group("/:id/phones")
			{
				phones.GET("", phoneHandler.ListPhones)
				phones.POST("", phoneHandler.CreatePhone)
				phones.GET("/:phoneId", phoneHandler.GetPhone)
				phones.PUT("/:phoneId", phoneHandler.UpdatePhone)
				phones.DELETE("/:phoneId", phoneHandler.DeletePhone)
				phones.PUT("/:phoneId/primary", phoneHandler.SetPrimaryPhone)
			}

			addresses := people.Group("/:id/addresses")
			{
				addresses.GET("", addressHandler.ListAddresses)
				addresses.POST("", addressHandler.CreateAddress)
				addresses.GET("/:addressId", addressHandler.GetAddress)
				addresses.PUT("/:addressId", addressHandler.UpdateAddress)
				addresses.DELETE("/:addressId", addressHandler.DeleteAddress)
				addresses.PUT("/:addressId/primary", addressHandler.SetPrimaryAddress)
			}

			tags := people.Group("/:id/tags")
			{
				tags.GET("", tagHandler.ListTags)
				tags.POST("", tagHandler.CreateTag)
				tags.GET("/:tagId", tagHandler.GetTag)
				tags.PUT("/:tagId", tagHandler.UpdateTag)
				tags.DELETE("/:tagId", tagHandler.DeleteTag)
			}

			collaborators := people.Group("/:id/collaborators")
			{
				collaborators.GET("", collaboratorHandler.ListCollaborators)
				collaborators.POST("", collaboratorHandler.CreateCollaborator)
				collaborators.DELETE("/:collaboratorId", collaboratorHandler.DeleteCollaborator)
			}

			files := people.Group("/:id/files")
			{
				files.GET("", fileHandler.ListFiles)
				files.POST("", fileHandler.CreateFile)
				files.GET("/:fileId", fileHandler.GetFile)
				files.PUT("/:fileId", fileHandler.UpdateFile)
				files.DELETE("/:fileId", fileHandler.DeleteFile)
			}
		}

		groups := secured.Group("/groups")
		{
			groups.GET("", groupHandler.ListGroups)
			groups.GET("/:id", groupHandler.GetGroup)
			groups.POST("", managers, groupHandler.CreateGroup)
			groups.PUT("/:id", managers, groupHandler.UpdateGroup)
			groups.DELETE("/:id", managers, groupHandler.DeleteGroup)
		}

		ponds := secured.Group("/ponds")
		{
			ponds.GET("", pondHandler.ListPonds)
			ponds.GET("/:id", pondHandler.GetPond)
			ponds.POST("", managers, pondHandler.CreatePond)
			ponds.PUT("/:id", managers, pondHandler.UpdatePond)
			ponds.DELETE("/:id", managers, pondHandler.DeletePond)
		}

		rules := secured.Group("/lead-flow-rules", managers)
		{
			rules.GET("", leadFlowHandler.ListRules)
			rules.POST("", leadFlowHandler.CreateRule)
			rules.GET("/:id", leadFlowHandler.GetRule)
			rules.PUT("/:id", leadFlowHandler.UpdateRule)
			rules.DELETE("/:id", leadFlowHandler.DeleteRule)
		}

		users := secured.Group("/users", managers)
		{
			users.DELETE("/bulk-delete", userHandler.BulkDeleteUsers)
			users.POST("/bulk-export", userHandler.BulkExportUsers)
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		enums := secured.Group("/enums")
		{
			enums.GET("", enumHandler.ListEnums)
			enums.GET("/:name", enumHandler.GetEnum)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":     false,
			"message":    "Endpoint not found",
			"data":       nil,
			"path":       c.Request.URL.Path,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, nil, Version)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
