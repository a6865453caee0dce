package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studenthub/profile-api/adapters/event"
	httpAdapter "github.com/studenthub/profile-api/adapters/http"
	"github.com/studenthub/profile-api/adapters/media_storage"
	"github.com/studenthub/profile-api/adapters/persistence"
	educationUC "github.com/studenthub/profile-api/internal/application/usecase/education"
	experienceUC "github.com/studenthub/profile-api/internal/application/usecase/experience"
	identityUC "github.com/studenthub/profile-api/internal/application/usecase/identity"
	mediaUC "github.com/studenthub/profile-api/internal/application/usecase/media"
	profileUC "github.com/studenthub/profile-api/internal/application/usecase/profile"
	projectUC "github.com/studenthub/profile-api/internal/application/usecase/project"
	"github.com/studenthub/profile-api/internal/config"
	"github.com/studenthub/profile-api/pkg/auth"
	"github.com/studenthub/profile-api/pkg/logger"
	"github.com/studenthub/profile-api/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting StudentHub Profile API server...")

	if cfg.Jaeger.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "profile-api")
		if err != nil {
			appLogger.Fatal("cannot init tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	viewCache := persistence.NewRedisProfileCache(redisClient, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("failed to initialize uploader", err)
	}

	// Use cases
	resolveUserUseCase := identityUC.NewResolveUserUseCase(userRepo, appLogger)
	createProfileUseCase := profileUC.NewCreateProfileUseCase(profileRepo, viewCache, kafkaClient, appLogger)
	getProfileUseCase := profileUC.NewGetProfileUseCase(profileRepo, educationRepo, experienceRepo, projectRepo, viewCache, appLogger)
	updateProfileUseCase := profileUC.NewUpdateProfileUseCase(profileRepo, viewCache, kafkaClient, appLogger)
	deleteProfileUseCase := profileUC.NewDeleteProfileUseCase(profileRepo, viewCache, kafkaClient, appLogger)
	addEducationUseCase := educationUC.NewAddEducationUseCase(educationRepo, profileRepo, viewCache, appLogger)
	updateEducationUseCase := educationUC.NewUpdateEducationUseCase(educationRepo, profileRepo, viewCache, appLogger)
	deleteEducationUseCase := educationUC.NewDeleteEducationUseCase(educationRepo, profileRepo, viewCache, appLogger)
	addExperienceUseCase := experienceUC.NewAddExperienceUseCase(experienceRepo, profileRepo, viewCache, appLogger)
	addProjectUseCase := projectUC.NewAddProjectUseCase(projectRepo, profileRepo, viewCache, appLogger)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo, profileRepo, appLogger)
	uploadImageUseCase := mediaUC.NewUploadImageUseCase(uploader, cfg.Cloudinary.UploadPreset, appLogger)
	deleteImageUseCase := mediaUC.NewDeleteImageUseCase(uploader, appLogger)

	// HTTP handlers
	profileHandler := httpAdapter.NewProfileHandler(
		resolveUserUseCase,
		createProfileUseCase,
		getProfileUseCase,
		updateProfileUseCase,
		deleteProfileUseCase,
		appLogger,
	)
	educationHandler := httpAdapter.NewEducationHandler(
		resolveUserUseCase,
		addEducationUseCase,
		updateEducationUseCase,
		deleteEducationUseCase,
		appLogger,
	)
	experienceHandler := httpAdapter.NewExperienceHandler(resolveUserUseCase, addExperienceUseCase, appLogger)
	projectHandler := httpAdapter.NewProjectHandler(resolveUserUseCase, addProjectUseCase, listProjectsUseCase, appLogger)
	mediaHandler := httpAdapter.NewMediaHandler(resolveUserUseCase, uploadImageUseCase, deleteImageUseCase, appLogger)

	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc, appLogger)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	router := gin.Default()
	router.Use(errorMiddleware)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			profile := private.Group("/profile")
			{
				profile.POST("", profileHandler.CreateProfile)
				profile.GET("", profileHandler.GetProfile)
				profile.PUT("", profileHandler.UpdateProfile)
				profile.DELETE("", profileHandler.DeleteProfile)

				profile.POST("/education", educationHandler.AddEducation)
				profile.PUT("/education/:id", educationHandler.UpdateEducation)
				profile.DELETE("/education/:id", educationHandler.DeleteEducation)

				profile.POST("/experience", experienceHandler.AddExperience)

				profile.POST("/projects", projectHandler.AddProject)
				profile.GET("/projects", projectHandler.ListProjects)
			}

			private.POST("/media/upload", mediaHandler.UploadImage)
			private.POST("/cloudinary/delete", mediaHandler.DeleteImage)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
