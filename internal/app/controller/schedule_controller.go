package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/internal/app/service"
	apperrors "github.com/bemove/bemove-backend/internal/errors"
	"github.com/bemove/bemove-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ScheduleController struct {
	scheduleService service.ScheduleService
}

func NewScheduleController(scheduleService service.ScheduleService) *ScheduleController {
	return &ScheduleController{scheduleService: scheduleService}
}

type CreateScheduleRequest struct {
	MemberID        *uint              `json:"member_id"`
	MemberName      string             `json:"member_name"`
	Type            model.ScheduleType `json:"type"`
	StartTime       time.Time          `json:"start_time" binding:"required"`
	DurationMinutes int                `json:"duration_minutes"`
	Memo            string             `json:"memo"`
}

// CreateSchedule creates a PT session or consultation slot
// POST /api/v1/schedules
func (ctrl *ScheduleController) CreateSchedule(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	trainerID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	schedule, err := ctrl.scheduleService.CreateSchedule(service.ScheduleInput{
		TrainerID:       trainerID,
		MemberID:        req.MemberID,
		MemberName:      req.MemberName,
		Type:            req.Type,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Memo:            req.Memo,
	})
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			apperrors.NotFound(c, apperrors.MemberNotFound, "회원을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to create schedule", err, map[string]interface{}{
			"trainer_id": trainerID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create schedule")
		return
	}

	log.Info("Schedule created", map[string]interface{}{
		"schedule_id": schedule.ID,
		"trainer_id":  trainerID,
		"type":        schedule.Type,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Schedule created successfully",
		"schedule": schedule,
	})
}

// ListMySchedules returns the caller's schedules, optionally for a single day
// GET /api/v1/schedules?date=YYYY-MM-DD
func (ctrl *ScheduleController) ListMySchedules(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	trainerID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	var (
		schedules []model.Schedule
		err       error
	)
	if date := c.Query("date"); date != "" {
		day, parseErr := time.Parse("2006-01-02", date)
		if parseErr != nil {
			apperrors.BadRequest(c, apperrors.ValidationInvalidFormat, "날짜는 YYYY-MM-DD 형식이어야 합니다")
			return
		}
		schedules, err = ctrl.scheduleService.SchedulesByTrainerForDay(trainerID, day)
	} else {
		schedules, err = ctrl.scheduleService.SchedulesByTrainer(trainerID)
	}
	if err != nil {
		log.Error("Failed to list schedules", err, map[string]interface{}{
			"trainer_id": trainerID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list schedules")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"schedules": schedules,
		"count":     len(schedules),
	})
}

// CompleteSchedule marks a session completed, consuming a member session for PT
// PUT /api/v1/schedules/:id/complete
func (ctrl *ScheduleController) CompleteSchedule(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "유효하지 않은 일정 ID입니다")
		return
	}

	schedule, err := ctrl.scheduleService.CompleteSchedule(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrScheduleNotFound) {
			apperrors.NotFound(c, apperrors.ScheduleNotFound, "일정을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to complete schedule", err, map[string]interface{}{
			"schedule_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "complete schedule")
		return
	}

	log.Info("Schedule completed", map[string]interface{}{
		"schedule_id": schedule.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":  "Schedule completed",
		"schedule": schedule,
	})
}

// DeleteSchedule deletes a schedule
// DELETE /api/v1/schedules/:id
func (ctrl *ScheduleController) DeleteSchedule(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "유효하지 않은 일정 ID입니다")
		return
	}

	if err := ctrl.scheduleService.DeleteSchedule(uint(id)); err != nil {
		if errors.Is(err, service.ErrScheduleNotFound) {
			apperrors.NotFound(c, apperrors.ScheduleNotFound, "일정을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to delete schedule", err, map[string]interface{}{
			"schedule_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete schedule")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Schedule deleted successfully",
	})
}
