package router

import (
	"github.com/bemove/bemove-backend/config"
	"github.com/bemove/bemove-backend/internal/app/controller"
	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authController         *controller.AuthController
	branchController       *controller.BranchController
	targetController       *controller.TargetController
	staffController        *controller.StaffController
	memberController       *controller.MemberController
	revenueController      *controller.RevenueController
	dashboardController    *controller.DashboardController
	scheduleController     *controller.ScheduleController
	surveyController       *controller.SurveyController
	equipmentController    *controller.EquipmentController
	entryController        *controller.EntryController
	notificationController *controller.NotificationController
	reportController       *controller.ReportController
	uploadController       *controller.UploadController
	authMiddleware         *middleware.AuthMiddleware
	config                 *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	branchController *controller.BranchController,
	targetController *controller.TargetController,
	staffController *controller.StaffController,
	memberController *controller.MemberController,
	revenueController *controller.RevenueController,
	dashboardController *controller.DashboardController,
	scheduleController *controller.ScheduleController,
	surveyController *controller.SurveyController,
	equipmentController *controller.EquipmentController,
	entryController *controller.EntryController,
	notificationController *controller.NotificationController,
	reportController *controller.ReportController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:         authController,
		branchController:       branchController,
		targetController:       targetController,
		staffController:        staffController,
		memberController:       memberController,
		revenueController:      revenueController,
		dashboardController:    dashboardController,
		scheduleController:     scheduleController,
		surveyController:       surveyController,
		equipmentController:    equipmentController,
		entryController:        entryController,
		notificationController: notificationController,
		reportController:       reportController,
		uploadController:       uploadController,
		authMiddleware:         authMiddleware,
		config:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "BEMOVE API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.authController.Login)
			auth.POST("/register", r.authController.RegisterMember)
			auth.POST("/refresh", r.authController.RefreshToken)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.GetMe)
			auth.PUT("/me/password", r.authMiddleware.Authenticate(), r.authController.ChangePassword)
		}

		branches := v1.Group("/branches")
		branches.Use(r.authMiddleware.Authenticate())
		{
			branches.GET("", r.branchController.ListBranches)

			branches.POST("",
				r.authMiddleware.RequireRole(model.RoleAdmin),
				r.branchController.CreateBranch,
			)
			branches.PUT("/:id",
				r.authMiddleware.RequireRole(model.RoleAdmin),
				r.branchController.RenameBranch,
			)
			branches.DELETE("/:id",
				r.authMiddleware.RequireRole(model.RoleAdmin),
				r.branchController.DeleteBranch,
			)
		}

		targets := v1.Group("/targets")
		targets.Use(r.authMiddleware.Authenticate())
		targets.Use(r.authMiddleware.RequireRole(model.RoleAdmin))
		{
			targets.GET("", r.targetController.GetBranchTargets)
			targets.PUT("", r.targetController.SetTarget)
			targets.DELETE("", r.targetController.RemoveTarget)
		}

		staff := v1.Group("/staff")
		staff.Use(r.authMiddleware.Authenticate())
		staff.Use(r.authMiddleware.RequireRole(model.RoleAdmin))
		{
			staff.GET("", r.staffController.ListStaff)
			staff.POST("", r.staffController.CreateStaff)
			staff.GET("/:id", r.staffController.GetStaff)
			staff.PUT("/:id", r.staffController.UpdateStaff)
			staff.DELETE("/:id", r.staffController.DeleteStaff)
		}

		members := v1.Group("/members")
		members.Use(r.authMiddleware.Authenticate())
		{
			members.GET("/me", r.memberController.GetMyMemberRecord)

			members.GET("",
				r.authMiddleware.RequireRole(model.RoleTrainer, model.RoleManager, model.RoleAdmin),
				r.memberController.ListMembers,
			)
			members.GET("/:id",
				r.authMiddleware.RequireRole(model.RoleTrainer, model.RoleManager, model.RoleAdmin),
				r.memberController.GetMember,
			)
			members.POST("",
				r.authMiddleware.RequireRole(model.RoleTrainer, model.RoleManager, model.RoleAdmin),
				r.memberController.CreateMember,
			)
			members.PUT("/:id",
				r.authMiddleware.RequireRole(model.RoleTrainer, model.RoleManager, model.RoleAdmin),
				r.memberController.UpdateMember,
			)
			members.DELETE("/:id",
				r.authMiddleware.RequireRole(model.RoleManager, model.RoleAdmin),
				r.memberController.DeleteMember,
			)
		}

		revenue := v1.Group("/revenue")
		revenue.Use(r.authMiddleware.Authenticate())
		revenue.Use(r.authMiddleware.RequireRole(model.RoleTrainer, model.RoleManager, model.RoleAdmin))
		{
			revenue.POST("/sales", r.revenueController.RecordNewSale)
			revenue.POST("/renewals", r.revenueController.RecordRenewal)
			revenue.GET("/breakdown", r.revenueController.GetMonthlyBreakdown)
			revenue.GET("/sources", r.revenueController.GetRevenueBySource)
			revenue.GET("/trend", r.revenueController.GetTrailingSeries)
			revenue.GET("/transactions", r.revenueController.ListTransactions)
		}

		dashboard := v1.Group("/dashboard")
		dashboard.Use(r.authMiddleware.Authenticate())
		{
			dashboard.GET("/me",
				r.authMiddleware.RequireRole(model.RoleTrainer, model.RoleManager, model.RoleAdmin),
				r.dashboardController.GetMyAchievement,
			)
			dashboard.GET("/staff",
				r.authMiddleware.RequireRole(model.RoleManager, model.RoleAdmin),
				r.dashboardController.GetStaffAchievements,
			)
			dashboard.GET("/summary",
				r.authMiddleware.RequireRole(model.RoleManager, model.RoleAdmin),
				r.dashboardController.GetOrgSummary,
			)
			dashboard.GET("/branches",
				r.authMiddleware.RequireRole(model.RoleManager, model.RoleAdmin),
				r.dashboardController.GetBranchAchievements,
			)
			dashboard.GET("/branches/:name/trainers",
				r.authMiddleware.RequireRole(model.RoleManager, model.RoleAdmin),
				r.dashboardController.GetTrainerBreakdown,
			)
		}

		schedules := v1.Group("/schedules")
		schedules.Use(r.authMiddleware.Authenticate())
		schedules.Use(r.authMiddleware.RequireRole(model.RoleTrainer, model.RoleManager, model.RoleAdmin))
		{
			schedules.GET("", r.scheduleController.ListMySchedules)
			schedules.POST("", r.scheduleController.CreateSchedule)
			schedules.PUT("/:id/complete", r.scheduleController.CompleteSchedule)
			schedules.DELETE("/:id", r.scheduleController.DeleteSchedule)
		}

		surveys := v1.Group("/surveys")
		surveys.Use(r.authMiddleware.Authenticate())
		{
			surveys.POST("",
				r.authMiddleware.RequireRole(model.RoleMember),
				r.surveyController.SubmitSurvey,
			)
			surveys.GET("/me",
				r.authMiddleware.RequireRole(model.RoleTrainer, model.RoleManager, model.RoleAdmin),
				r.surveyController.ListMySurveys,
			)
			surveys.GET("/trainers/:id",
				r.authMiddleware.RequireRole(model.RoleManager, model.RoleAdmin),
				r.surveyController.ListTrainerSurveys,
			)
			surveys.GET("",
				r.authMiddleware.RequireRole(model.RoleAdmin),
				r.surveyController.ListAllSurveys,
			)
		}

		equipment := v1.Group("/equipment")
		equipment.Use(r.authMiddleware.Authenticate())
		{
			equipment.GET("", r.equipmentController.ListEquipment)

			equipment.POST("",
				r.authMiddleware.RequireRole(model.RoleManager, model.RoleAdmin),
				r.equipmentController.CreateEquipment,
			)
			equipment.DELETE("/:id",
				r.authMiddleware.RequireRole(model.RoleManager, model.RoleAdmin),
				r.equipmentController.DeleteEquipment,
			)
			equipment.POST("/reports",
				r.authMiddleware.RequireRole(model.RoleTrainer, model.RoleManager, model.RoleAdmin),
				r.equipmentController.ReportEquipment,
			)
			equipment.GET("/reports",
				r.authMiddleware.RequireRole(model.RoleManager, model.RoleAdmin),
				r.equipmentController.ListPendingReports,
			)
			equipment.PUT("/reports/:id/approve",
				r.authMiddleware.RequireRole(model.RoleManager, model.RoleAdmin),
				r.equipmentController.ApproveReport,
			)
			equipment.PUT("/reports/:id/reject",
				r.authMiddleware.RequireRole(model.RoleManager, model.RoleAdmin),
				r.equipmentController.RejectReport,
			)
		}

		entries := v1.Group("/entries")
		entries.Use(r.authMiddleware.Authenticate())
		{
			entries.POST("/diet", r.entryController.AddDietEntry)
			entries.GET("/diet", r.entryController.ListDietEntries)
			entries.POST("/workout", r.entryController.AddWorkoutEntry)
			entries.GET("/workout", r.entryController.ListWorkoutEntries)
			entries.POST("/body", r.entryController.AddBodyEntry)
			entries.GET("/body", r.entryController.ListBodyEntries)

			entries.PUT("/diet/:id/feedback",
				r.authMiddleware.RequireRole(model.RoleTrainer, model.RoleManager, model.RoleAdmin),
				r.entryController.SetDietFeedback,
			)
			entries.PUT("/workout/:id/feedback",
				r.authMiddleware.RequireRole(model.RoleTrainer, model.RoleManager, model.RoleAdmin),
				r.entryController.SetWorkoutFeedback,
			)
		}

		notifications := v1.Group("/notifications")
		notifications.Use(r.authMiddleware.Authenticate())
		{
			notifications.GET("", r.notificationController.ListNotifications)
			notifications.PUT("/:id/read", r.notificationController.MarkNotificationRead)
			notifications.GET("/ws", r.notificationController.HandleWebSocket)

			notifications.POST("",
				r.authMiddleware.RequireRole(model.RoleAdmin),
				r.notificationController.PublishNotification,
			)
		}

		reports := v1.Group("/reports")
		reports.Use(r.authMiddleware.Authenticate())
		reports.Use(r.authMiddleware.RequireRole(model.RoleAdmin))
		{
			reports.GET("/monthly", r.reportController.DownloadMonthlyReport)
		}

		upload := v1.Group("/upload")
		upload.Use(r.authMiddleware.Authenticate())
		{
			upload.POST("/presigned-url", r.uploadController.GeneratePresignedURL)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
