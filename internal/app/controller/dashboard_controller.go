package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bemove/bemove-backend/internal/app/service"
	apperrors "github.com/bemove/bemove-backend/internal/errors"
	"github.com/bemove/bemove-backend/internal/middleware"
	"github.com/bemove/bemove-backend/pkg/redis"
	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	achievementService service.AchievementService
}

func NewDashboardController(achievementService service.AchievementService) *DashboardController {
	return &DashboardController{achievementService: achievementService}
}

// GetMyAchievement returns the caller's target, revenue and achievement rate
// GET /api/v1/dashboard/me?month=YYYY-MM
func (ctrl *DashboardController) GetMyAchievement(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	monthKey := monthKeyFromQuery(c)
	achievement, err := ctrl.achievementService.StaffAchievement(userID, monthKey)
	if err != nil {
		log.Error("Failed to compute achievement", err, map[string]interface{}{
			"user_id": userID,
			"month":   monthKey,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get achievement")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month":       monthKey,
		"achievement": achievement,
	})
}

// GetStaffAchievements returns all staff ranked by achievement rate
// GET /api/v1/dashboard/staff?month=YYYY-MM
func (ctrl *DashboardController) GetStaffAchievements(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	monthKey := monthKeyFromQuery(c)
	achievements, err := ctrl.achievementService.AllStaffAchievements(monthKey)
	if err != nil {
		log.Error("Failed to compute staff achievements", err, map[string]interface{}{
			"month": monthKey,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get staff achievements")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month":        monthKey,
		"achievements": achievements,
		"count":        len(achievements),
	})
}

// GetOrgSummary returns the organization-wide rollup.
// The current month is served from cache when the scheduler has populated it.
// GET /api/v1/dashboard/summary?month=YYYY-MM
func (ctrl *DashboardController) GetOrgSummary(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	monthKey := monthKeyFromQuery(c)

	if monthKey == time.Now().Format("2006-01") {
		if cached, err := redis.GetDashboardSummary(c.Request.Context()); err == nil && cached != nil {
			var summary service.OrgAchievement
			if err := json.Unmarshal(cached, &summary); err == nil {
				c.JSON(http.StatusOK, gin.H{
					"month":   monthKey,
					"summary": summary,
					"cached":  true,
				})
				return
			}
		}
	}

	summary, err := ctrl.achievementService.OrgAchievement(monthKey)
	if err != nil {
		log.Error("Failed to compute org summary", err, map[string]interface{}{
			"month": monthKey,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get org summary")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month":   monthKey,
		"summary": summary,
	})
}

// GetBranchAchievements returns per-branch actuals plus estimated apportioned revenue
// GET /api/v1/dashboard/branches?month=YYYY-MM
func (ctrl *DashboardController) GetBranchAchievements(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	monthKey := monthKeyFromQuery(c)
	branches, err := ctrl.achievementService.BranchAchievements(monthKey)
	if err != nil {
		log.Error("Failed to compute branch achievements", err, map[string]interface{}{
			"month": monthKey,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get branch achievements")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month":    monthKey,
		"branches": branches,
	})
}

// GetTrainerBreakdown returns per-trainer summaries for a branch
// GET /api/v1/dashboard/branches/:name/trainers?month=YYYY-MM
func (ctrl *DashboardController) GetTrainerBreakdown(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	branchName := c.Param("name")
	monthKey := monthKeyFromQuery(c)

	trainers, err := ctrl.achievementService.TrainerBreakdown(branchName, monthKey)
	if err != nil {
		log.Error("Failed to compute trainer breakdown", err, map[string]interface{}{
			"branch_name": branchName,
			"month":       monthKey,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get trainer breakdown")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month":       monthKey,
		"branch_name": branchName,
		"trainers":    trainers,
	})
}
