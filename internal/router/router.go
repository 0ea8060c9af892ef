package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/4pillsAday/dive-globe/internal/client"
	"github.com/4pillsAday/dive-globe/internal/handler"
	"github.com/4pillsAday/dive-globe/internal/metrics"
	"github.com/4pillsAday/dive-globe/internal/middleware"
	"github.com/4pillsAday/dive-globe/internal/repository"
	"github.com/4pillsAday/dive-globe/internal/seed"
	"github.com/4pillsAday/dive-globe/internal/service"
	"github.com/4pillsAday/dive-globe/internal/util"
)

// Config holds the dependencies of the HTTP surface
type Config struct {
	DB       *gorm.DB
	Redis    *redis.Client // optional; disables stats caching and live updates when nil
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer // defaults to prometheus.DefaultGatherer

	Identity   client.IdentityProvider
	CookieName string
	BasePath   string

	S3Client    client.S3ClientInterface // optional; photo uploads answer 503 when nil
	CORSOrigins []string

	StatsCacheTTL  time.Duration
	PhotoUploadTTL time.Duration
	SiteCatalog    func() ([]seed.Site, error)
}

// Setup builds the gin engine with every route of the service
func Setup(cfg Config) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	if err := util.RegisterValidators(); err != nil {
		// binding on the reaction tag would panic without it
		logger.Fatal("Failed to register request validators", zap.Error(err))
	}

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Initialize repositories
	siteRepo := repository.NewSiteRepository(cfg.DB)
	reviewRepo := repository.NewReviewRepository(cfg.DB)
	reactionRepo := repository.NewReactionRepository(cfg.DB)
	photoRepo := repository.NewReviewPhotoRepository(cfg.DB)
	uploadRepo := repository.NewPhotoUploadRepository(cfg.DB)
	statsRepo := repository.NewSiteStatsRepository(cfg.DB)
	statsCache := repository.NewStatsCache(cfg.Redis, cfg.StatsCacheTTL)

	events := service.NewRedisEvents(cfg.Redis, logger)

	// Initialize services
	counterService := service.NewCounterService(siteRepo, reviewRepo, reactionRepo, statsRepo, statsCache, logger)
	reviewService := service.NewReviewService(service.ReviewServiceDeps{
		SiteRepo:     siteRepo,
		ReviewRepo:   reviewRepo,
		PhotoRepo:    photoRepo,
		UploadRepo:   uploadRepo,
		ReactionRepo: reactionRepo,
		Counters:     counterService,
		Events:       events,
		PhotoURL:     photoURLResolver(cfg.S3Client),
		Metrics:      cfg.Metrics,
		Logger:       logger,
	})
	reactionService := service.NewReactionService(siteRepo, reviewRepo, reactionRepo, counterService, events, cfg.Metrics, logger)
	siteService := service.NewSiteService(siteRepo, counterService, cfg.SiteCatalog, logger)
	photoService := service.NewPhotoService(siteRepo, uploadRepo, cfg.S3Client, cfg.PhotoUploadTTL, cfg.Metrics, logger)

	// Initialize handlers
	siteHandler := handler.NewSiteHandler(siteService, counterService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	reactionHandler := handler.NewReactionHandler(reactionService)
	photoHandler := handler.NewPhotoHandler(photoService)
	liveHandler := handler.NewLiveHandler(siteService, events, cfg.CORSOrigins, cfg.Metrics, logger)
	authHandler := handler.NewAuthHandler(cfg.Identity, cfg.CookieName, logger)
	healthHandler := handler.NewHealthHandler(cfg.DB, cfg.Redis)

	requireAuth := middleware.RequireAuth(cfg.Identity, cfg.CookieName)
	optionalAuth := middleware.OptionalAuth(cfg.Identity, cfg.CookieName, logger)

	// Health and metrics endpoints (no auth)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := r.Group(cfg.BasePath)
	{
		api.GET("/health", healthHandler.Health)
		api.GET("/ready", healthHandler.Ready)
		api.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
		api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

		api.POST("/auth/logout", authHandler.Logout)

		dives := api.Group("/dives")
		{
			// static routes are registered before /:slug
			dives.GET("", siteHandler.ListSites)
			dives.GET("/check", siteHandler.Check)
			dives.POST("/populate", requireAuth, siteHandler.Populate)

			dives.GET("/:slug", siteHandler.GetSite)
			dives.GET("/:slug/stats", siteHandler.GetStats)
			dives.GET("/:slug/live", liveHandler.Stream)

			dives.GET("/:slug/reviews", optionalAuth, reviewHandler.ListReviews)
			dives.POST("/:slug/reviews", requireAuth, reviewHandler.CreateReview)
			dives.POST("/:slug/reviews/:reviewId/react", requireAuth, reactionHandler.React)
			dives.DELETE("/:slug/reviews/:reviewId/react", requireAuth, reactionHandler.ClearReaction)

			dives.POST("/:slug/photos", requireAuth, photoHandler.UploadPhoto)
		}
	}

	return r
}

func photoURLResolver(s3Client client.S3ClientInterface) func(string) string {
	if s3Client == nil {
		return func(string) string { return "" }
	}
	return s3Client.GetFileURL
}
