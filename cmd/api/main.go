// @title           Dive Globe Review API
// @version         1.0
// @description     Dive site reviews, threaded replies and reactions

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/4pillsAday/dive-globe/docs" // Swagger docs import

	"github.com/4pillsAday/dive-globe/internal/client"
	"github.com/4pillsAday/dive-globe/internal/config"
	"github.com/4pillsAday/dive-globe/internal/database"
	"github.com/4pillsAday/dive-globe/internal/job"
	"github.com/4pillsAday/dive-globe/internal/metrics"
	"github.com/4pillsAday/dive-globe/internal/repository"
	"github.com/4pillsAday/dive-globe/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Dive Globe review service",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
	)

	m := metrics.NewWithLogger(logger)

	db, err := database.NewWithRetry(database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, 10, 5*time.Second, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.RegisterMetricsCallbacks(db, m); err != nil {
		logger.Warn("Failed to register database metrics callbacks", zap.Error(err))
	}
	if err := database.AutoMigrateWithRetry(db, logger, 3); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	database.StartDBStatsCollector(bgCtx, db, m, 15*time.Second)

	redisClient, err := database.NewRedis(cfg.Redis, logger)
	if err != nil {
		logger.Warn("Failed to connect to redis, stats cache and live updates disabled", zap.Error(err))
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// A typed nil *S3Client must not reach the interface
	var s3Client client.S3ClientInterface
	if cfg.S3.Bucket != "" && cfg.S3.Region != "" {
		c, err := client.NewS3Client(&cfg.S3)
		if err != nil {
			logger.Warn("Failed to initialize S3 client, photo uploads disabled", zap.Error(err))
		} else {
			s3Client = c
			logger.Info("S3 client initialized",
				zap.String("bucket", cfg.S3.Bucket),
				zap.String("region", cfg.S3.Region),
			)
		}
	} else {
		logger.Warn("S3 configuration incomplete, photo uploads disabled")
	}

	var identity client.IdentityProvider
	if cfg.Auth.ServiceURL != "" {
		identity = client.NewAuthClient(cfg.Auth.ServiceURL, cfg.Auth.Timeout, logger, m)
		logger.Info("Using identity service", zap.String("url", cfg.Auth.ServiceURL))
	} else {
		identity = client.NewLocalJWTValidator(cfg.JWT.Secret)
		logger.Info("Using local JWT validation")
	}

	r := router.Setup(router.Config{
		DB:             db,
		Redis:          redisClient,
		Logger:         logger,
		Metrics:        m,
		Identity:       identity,
		CookieName:     cfg.Auth.CookieName,
		BasePath:       cfg.Server.BasePath,
		S3Client:       s3Client,
		CORSOrigins:    cfg.CORS.Origins(),
		StatsCacheTTL:  cfg.App.StatsCacheTTL,
		PhotoUploadTTL: cfg.App.PhotoUploadTTL,
	})

	collector := metrics.NewBusinessMetricsCollector(db, m, logger)
	collector.Start()
	defer collector.Stop()

	if s3Client != nil {
		cleanup := job.NewPhotoCleanupJob(
			repository.NewPhotoUploadRepository(db),
			repository.NewReviewPhotoRepository(db),
			s3Client,
			m,
			logger,
		)
		scheduler, err := job.NewScheduler(cfg.App.CleanupSchedule, cleanup, logger)
		if err != nil {
			logger.Warn("Invalid cleanup schedule, photo cleanup disabled",
				zap.String("schedule", cfg.App.CleanupSchedule),
				zap.Error(err),
			)
		} else {
			scheduler.Start()
			defer func() { <-scheduler.Stop().Done() }()
			logger.Info("Photo cleanup scheduled", zap.String("schedule", cfg.App.CleanupSchedule))
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Dive Globe review service started",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s%s/swagger/index.html", cfg.Server.Port, cfg.Server.BasePath)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
