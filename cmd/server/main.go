package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"press-kit.backend/internal/config"
	"press-kit.backend/internal/infrastructure/repositories"
	"press-kit.backend/internal/infrastructure/storage"
	"press-kit.backend/internal/interfaces/http/handlers"
	"press-kit.backend/internal/interfaces/http/middleware"
	"press-kit.backend/internal/usecases"
	"press-kit.backend/pkg/jwt"
	"press-kit.backend/pkg/logger"
	"press-kit.backend/pkg/policy"
	"press-kit.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	}

	// Object store
	objectStore, err := storage.NewDiskStore(cfg.Storage.Root, cfg.Storage.PublicBaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize object store: %w", err)
	}

	// Authorization policy
	adminPolicy := policy.NewAllowList(cfg.Admin.Emails)

	// JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Repositories
	teamMemberRepo := repositories.NewTeamMemberRepository(db)
	pressReleaseRepo := repositories.NewPressReleaseRepository(db)
	assetRepo := repositories.NewAssetRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// Usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, adminPolicy)
	uploadUsecase := usecases.NewUploadUsecase(objectStore, assetRepo, cfg.Storage.MaxImageBytes, cfg.Storage.MaxAttachmentBytes)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	teamMemberHandler := handlers.NewTeamMemberHandler(teamMemberRepo)
	pressReleaseHandler := handlers.NewPressReleaseHandler(pressReleaseRepo)
	uploadHandler := handlers.NewUploadHandler(uploadUsecase)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	// Stored objects resolve through the same host the locators point at.
	r.Static("/media", cfg.Storage.Root)

	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		teamMemberHandler:   teamMemberHandler,
		pressReleaseHandler: pressReleaseHandler,
		uploadHandler:       uploadHandler,
		authMiddleware:      middleware.AuthMiddleware(jwtService),
		requireAdmin:        middleware.RequireAdmin(adminPolicy),
	})

	log.Printf("press-kit backend starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
