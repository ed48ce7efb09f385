package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/config"
	_ "portfolio-backend/docs" // swagger registration
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/repository/postgres"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/audit"
	"portfolio-backend/pkg/database"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/password"
	"portfolio-backend/pkg/redisclient"
	"portfolio-backend/pkg/upload"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     REST backend for a personal portfolio and blog site.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.IsProduction())
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port, "env", cfg.Env)

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Redis is optional; without it rate limiting and the login tracker fall
	// back to in-memory stores.
	rdb, err := redisclient.New(redisclient.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	if err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory fallbacks", "error", err)
		rdb = nil
	}

	// Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	aboutRepo := postgres.NewAboutRepository(dbPool)
	blogRepo := postgres.NewBlogRepository(dbPool)
	projectRepo := postgres.NewProjectRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	techRepo := postgres.NewTechnologyRepository(dbPool)
	expRepo := postgres.NewExperienceRepository(dbPool)
	eduRepo := postgres.NewEducationRepository(dbPool)
	contactRepo := postgres.NewContactRepository(dbPool)

	// Object storage: S3 for profile, about and project images; the local
	// optimizing store for blog featured images. Without S3 credentials
	// everything lands on local disk.
	blogStorage, err := upload.NewLocalStorage(cfg.UploadDir+"/blog-images", "/uploads/blog-images")
	if err != nil {
		logger.Log.Error("Failed to prepare upload directory", "error", err)
		os.Exit(1)
	}

	var objectStorage upload.Storage
	if cfg.S3.Bucket != "" {
		s3Storage, err := upload.NewS3Storage(context.Background(), cfg)
		if err != nil {
			logger.Log.Error("Failed to set up S3 storage", "error", err)
			os.Exit(1)
		}
		objectStorage = s3Storage
	} else {
		logger.Log.Warn("S3 not configured, storing all uploads locally")
		objectStorage = blogStorage
	}

	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured, contact notifications disabled")
	}

	auditLog, err := audit.NewLogger(cfg.IsProduction())
	if err != nil {
		logger.Log.Error("Failed to set up audit logger", "error", err)
		os.Exit(1)
	}
	defer auditLog.Sync()
	loginTracker := audit.NewLoginTracker(rdb, cfg.FailedLoginMaxAttempts, cfg.FailedLoginBlockMinutes)

	hasher := password.NewHasher(cfg.BcryptCost)

	// Usecases
	authUC := usecase.NewAuthUsecase(userRepo, hasher, loginTracker, auditLog, cfg.JWT)
	userUC := usecase.NewUserUsecase(userRepo, objectStorage)
	aboutUC := usecase.NewAboutUsecase(aboutRepo, userRepo, objectStorage)
	blogUC := usecase.NewBlogUsecase(blogRepo, blogStorage)
	projectUC := usecase.NewProjectUsecase(projectRepo, techRepo, objectStorage)
	skillUC := usecase.NewSkillUsecase(skillRepo, userRepo)
	techUC := usecase.NewTechnologyUsecase(techRepo)
	expUC := usecase.NewExperienceUsecase(expRepo, userRepo)
	eduUC := usecase.NewEducationUsecase(eduRepo, userRepo)
	contactUC := usecase.NewContactUsecase(contactRepo, emailService)

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		AboutUC:      aboutUC,
		BlogUC:       blogUC,
		ProjectUC:    projectUC,
		SkillUC:      skillUC,
		TechnologyUC: techUC,
		ExperienceUC: expUC,
		EducationUC:  eduUC,
		ContactUC:    contactUC,
		Redis:        rdb,
		Config:       cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exited")
}
