package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stratoview-taxonomy-api/internal/client"
	"stratoview-taxonomy-api/internal/handler"
	"stratoview-taxonomy-api/internal/metrics"
	"stratoview-taxonomy-api/internal/middleware"
	"stratoview-taxonomy-api/internal/repository"
	"stratoview-taxonomy-api/internal/service"
)

// Config holds router configuration
type Config struct {
	DB             *gorm.DB
	Redis          *redis.Client
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	JWTSecret      string
	BasePath       string
	AllowedOrigins []string
	Storage        client.StorageClient
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	healthHandler := handler.NewHealthHandler()
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Initialize repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	taxonomyRepo := repository.NewTaxonomyRepository(cfg.DB)
	contentRepo := repository.NewContentRepository(cfg.DB)
	projectRepo := repository.NewProjectRepository(cfg.DB)

	// Initialize services
	userService := service.NewUserService(userRepo, cfg.Logger)
	taxonomyService := service.NewTaxonomyService(taxonomyRepo, cfg.Redis, cfg.Logger)
	contentService := service.NewContentService(contentRepo, userRepo, taxonomyRepo, cfg.Storage, cfg.Metrics, cfg.Logger)
	projectService := service.NewProjectService(projectRepo, contentRepo, userRepo, cfg.Metrics, cfg.Logger)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	taxonomyHandler := handler.NewTaxonomyHandler(taxonomyService)
	contentHandler := handler.NewContentHandler(contentService)
	projectHandler := handler.NewProjectHandler(projectService)

	api := r.Group(cfg.BasePath)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RequireAdmin(userRepo)

	// Taxonomy routes: reads are open to authenticated users, writes
	// are admin only
	areas := api.Group("/areas")
	areas.Use(authMiddleware)
	{
		intelligence := areas.Group("/intelligence")
		{
			intelligence.GET("", taxonomyHandler.ListIntelligenceAreas)
			intelligence.GET("/:id", taxonomyHandler.GetIntelligenceArea)
			intelligence.POST("", adminOnly, taxonomyHandler.CreateIntelligenceArea)
			intelligence.PUT("/:id", adminOnly, taxonomyHandler.UpdateIntelligenceArea)
			intelligence.DELETE("/:id", adminOnly, taxonomyHandler.DeleteIntelligenceArea)
		}

		topics := areas.Group("/topics")
		{
			topics.GET("", taxonomyHandler.ListTopicAreas)
			topics.GET("/:id", taxonomyHandler.GetTopicArea)
			topics.POST("", adminOnly, taxonomyHandler.CreateTopicArea)
			topics.PUT("/:id", adminOnly, taxonomyHandler.UpdateTopicArea)
			topics.DELETE("/:id", adminOnly, taxonomyHandler.DeleteTopicArea)
		}

		geographic := areas.Group("/geographic")
		{
			geographic.GET("", taxonomyHandler.ListGeographicAreas)
			geographic.GET("/:id", taxonomyHandler.GetGeographicArea)
			geographic.POST("", adminOnly, taxonomyHandler.CreateGeographicArea)
			geographic.PUT("/:id", adminOnly, taxonomyHandler.UpdateGeographicArea)
			geographic.DELETE("/:id", adminOnly, taxonomyHandler.DeleteGeographicArea)
		}
	}

	// Content routes
	contents := api.Group("/contents")
	contents.Use(authMiddleware)
	{
		contents.POST("", contentHandler.CreateContent)
		contents.GET("", contentHandler.ListContents)
		contents.GET("/:id", contentHandler.GetContent)
		contents.PUT("/:id", contentHandler.UpdateContent)
		contents.DELETE("/:id", contentHandler.DeleteContent)
		contents.POST("/:id/images", contentHandler.AttachScenarioImage)
		contents.DELETE("/:id/images/:imageId", contentHandler.DeleteScenarioImage)
	}

	// Standalone image uploads (referenced by later content writes)
	images := api.Group("/images")
	images.Use(authMiddleware)
	{
		images.POST("/:kind", contentHandler.UploadImage)
	}

	// Project routes
	projects := api.Group("/projects")
	projects.Use(authMiddleware)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.ListProjects)
		projects.GET("/:id", projectHandler.GetProject)
		projects.PUT("/:id", projectHandler.UpdateProject)
		projects.DELETE("/:id", projectHandler.DeleteProject)
		projects.POST("/:id/blocks", projectHandler.AddContentBlock)
		projects.PUT("/:id/blocks/:blockId", projectHandler.UpdateContentBlock)
		projects.DELETE("/:id/blocks/:blockId", projectHandler.RemoveContentBlock)
	}

	// User routes: account management is admin only, self endpoints are not
	users := api.Group("/users")
	users.Use(authMiddleware)
	{
		users.GET("/me", userHandler.GetCurrentUser)
		users.POST("/me/login", userHandler.RecordLogin)
		users.POST("", adminOnly, userHandler.CreateUser)
		users.GET("", adminOnly, userHandler.ListUsers)
		users.GET("/:id", adminOnly, userHandler.GetUser)
	}

	return r
}
