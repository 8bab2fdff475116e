package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bemove/bemove-backend/config"
	"github.com/bemove/bemove-backend/internal/app/controller"
	"github.com/bemove/bemove-backend/internal/app/repository"
	"github.com/bemove/bemove-backend/internal/app/service"
	"github.com/bemove/bemove-backend/internal/db"
	"github.com/bemove/bemove-backend/internal/middleware"
	"github.com/bemove/bemove-backend/internal/router"
	"github.com/bemove/bemove-backend/internal/scheduler"
	"github.com/bemove/bemove-backend/internal/storage"
	"github.com/bemove/bemove-backend/internal/ws"
	"github.com/bemove/bemove-backend/pkg/logger"
	"github.com/bemove/bemove-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting BEMOVE Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Seed database (optional)
	if err := db.Seed(); err != nil {
		logger.Warn("Failed to seed database", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Redis is optional. Without it, token revocation and the dashboard
	// cache are disabled but the API still works.
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, continuing without cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer func() {
		if err := redis.Close(); err != nil {
			logger.Error("Failed to close Redis connection", err)
		}
	}()

	// Notification hub
	hub := ws.NewHub()
	go hub.Run()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	memberRepo := repository.NewMemberRepository(db.GetDB())
	branchRepo := repository.NewBranchRepository(db.GetDB())
	targetRepo := repository.NewTargetRepository(db.GetDB())
	txnRepo := repository.NewTransactionRepository(db.GetDB())
	surveyRepo := repository.NewSurveyRepository(db.GetDB())
	equipmentRepo := repository.NewEquipmentRepository(db.GetDB())
	entryRepo := repository.NewEntryRepository(db.GetDB())
	scheduleRepo := repository.NewScheduleRepository(db.GetDB())
	notificationRepo := repository.NewNotificationRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		memberRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	branchService := service.NewBranchService(branchRepo)
	targetService := service.NewTargetService(targetRepo, branchRepo)
	staffService := service.NewStaffService(userRepo, branchRepo)
	memberService := service.NewMemberService(memberRepo)
	revenueService := service.NewRevenueService(txnRepo, memberRepo)
	achievementService := service.NewAchievementService(userRepo, txnRepo, branchRepo, surveyRepo, targetService)
	scheduleService := service.NewScheduleService(scheduleRepo, memberRepo)
	surveyService := service.NewSurveyService(surveyRepo, userRepo)
	equipmentService := service.NewEquipmentService(equipmentRepo)
	estimateService := service.NewEstimateService(&cfg.Estimate)
	entryService := service.NewEntryService(entryRepo, memberRepo, estimateService)
	notificationService := service.NewNotificationService(notificationRepo, hub)
	reportService := service.NewReportService(userRepo, txnRepo, achievementService)

	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize controllers
	authController := controller.NewAuthController(authService, cfg.JWT.RefreshTokenExpiry)
	branchController := controller.NewBranchController(branchService)
	targetController := controller.NewTargetController(targetService)
	staffController := controller.NewStaffController(staffService)
	memberController := controller.NewMemberController(memberService, authService)
	revenueController := controller.NewRevenueController(revenueService, hub)
	dashboardController := controller.NewDashboardController(achievementService)
	scheduleController := controller.NewScheduleController(scheduleService)
	surveyController := controller.NewSurveyController(surveyService, memberService, authService, hub)
	equipmentController := controller.NewEquipmentController(equipmentService)
	entryController := controller.NewEntryController(entryService, memberService, authService)
	notificationController := controller.NewNotificationController(notificationService, hub)
	reportController := controller.NewReportController(reportService)
	uploadController := controller.NewUploadController(s3Storage)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Dashboard cache refresh
	statsScheduler := scheduler.NewStatsScheduler(achievementService)
	if err := statsScheduler.Start(); err != nil {
		logger.Warn("Stats scheduler not started", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer statsScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		authController,
		branchController,
		targetController,
		staffController,
		memberController,
		revenueController,
		dashboardController,
		scheduleController,
		surveyController,
		equipmentController,
		entryController,
		notificationController,
		reportController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
