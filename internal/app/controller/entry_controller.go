package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/internal/app/service"
	apperrors "github.com/bemove/bemove-backend/internal/errors"
	"github.com/bemove/bemove-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type EntryController struct {
	entryService  service.EntryService
	memberService service.MemberService
	authService   service.AuthService
}

func NewEntryController(
	entryService service.EntryService,
	memberService service.MemberService,
	authService service.AuthService,
) *EntryController {
	return &EntryController{
		entryService:  entryService,
		memberService: memberService,
		authService:   authService,
	}
}

type DietEntryRequest struct {
	Date        string `json:"date" binding:"required"`
	MealType    string `json:"meal_type"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description" binding:"required"`
}

type WorkoutEntryRequest struct {
	Date            string  `json:"date" binding:"required"`
	ActivityName    string  `json:"activity_name" binding:"required"`
	DurationMinutes int     `json:"duration_minutes" binding:"required"`
	ConditionScore  int     `json:"condition_score"`
	SleepHours      float64 `json:"sleep_hours"`
	PainLevel       int     `json:"pain_level"`
	Memo            string  `json:"memo"`
}

type BodyEntryRequest struct {
	Date              string  `json:"date" binding:"required"`
	SheetImageURL     string  `json:"sheet_image_url"`
	SheetText         string  `json:"sheet_text"`
	Weight            float64 `json:"weight"`
	SkeletalMuscle    float64 `json:"skeletal_muscle"`
	BodyFatPercentage float64 `json:"body_fat_percentage"`
	Score             float64 `json:"score"`
}

type DietFeedbackRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

type WorkoutFeedbackRequest struct {
	Feedback string `json:"feedback"`
	NextGoal string `json:"next_goal"`
}

// resolveMemberID 회원 계정은 본인 회원 데이터, 직원은 ?member_id= 로 조회 대상을 정한다
func (ctrl *EntryController) resolveMemberID(c *gin.Context) (uint, bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return 0, false
	}

	viewer, err := ctrl.authService.GetUserByID(userID)
	if err != nil {
		apperrors.Unauthorized(c, "사용자 정보를 확인할 수 없습니다")
		return 0, false
	}

	if viewer.Role == model.RoleMember {
		member, err := ctrl.memberService.MemberForAccount(viewer)
		if err != nil {
			if errors.Is(err, service.ErrMemberRecordNotFound) {
				apperrors.NotFound(c, apperrors.MemberRecordNotFound, "계정에 연결된 회원 정보를 찾을 수 없습니다")
				return 0, false
			}
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "resolve member")
			return 0, false
		}
		return member.ID, true
	}

	raw := c.Query("member_id")
	if raw == "" {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "회원 ID가 필요합니다")
		return 0, false
	}
	memberID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "유효하지 않은 회원 ID입니다")
		return 0, false
	}

	// 기록 접근도 회원 목록과 같은 조회 범위를 따른다
	visible, err := ctrl.memberService.MemberVisibleTo(viewer, uint(memberID))
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			apperrors.NotFound(c, apperrors.MemberNotFound, "회원을 찾을 수 없습니다")
			return 0, false
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "resolve member")
		return 0, false
	}
	if !visible {
		apperrors.Forbidden(c, "담당하지 않는 회원의 기록에는 접근할 수 없습니다")
		return 0, false
	}
	return uint(memberID), true
}

// feedbackViewer 피드백은 직원 계정만 남길 수 있다
func (ctrl *EntryController) feedbackViewer(c *gin.Context) (*model.User, bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return nil, false
	}
	viewer, err := ctrl.authService.GetUserByID(userID)
	if err != nil {
		apperrors.Unauthorized(c, "사용자 정보를 확인할 수 없습니다")
		return nil, false
	}
	return viewer, true
}

// entryVisible 기록의 회원이 호출자 조회 범위 밖이면 403으로 끝낸다
func (ctrl *EntryController) entryVisible(c *gin.Context, viewer *model.User, memberID uint) bool {
	visible, err := ctrl.memberService.MemberVisibleTo(viewer, memberID)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "check member visibility")
		return false
	}
	if !visible {
		apperrors.Forbidden(c, "담당하지 않는 회원의 기록에는 접근할 수 없습니다")
		return false
	}
	return true
}

// AddDietEntry records a meal; nutrition is estimated from the description
// POST /api/v1/entries/diet
func (ctrl *EntryController) AddDietEntry(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	memberID, ok := ctrl.resolveMemberID(c)
	if !ok {
		return
	}

	var req DietEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	entry, err := ctrl.entryService.AddDietEntry(service.DietEntryInput{
		MemberID:    memberID,
		Date:        req.Date,
		MealType:    req.MealType,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidEntryDate) {
			apperrors.BadRequest(c, apperrors.EntryInvalidDate, "날짜는 YYYY-MM-DD 형식이어야 합니다")
			return
		}
		if errors.Is(err, service.ErrMemberNotFound) {
			apperrors.NotFound(c, apperrors.MemberNotFound, "회원을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to add diet entry", err, map[string]interface{}{
			"member_id": memberID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "add diet entry")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Diet entry added",
		"entry":   entry,
	})
}

// ListDietEntries returns diet entries for a member
// GET /api/v1/entries/diet?date=YYYY-MM-DD
func (ctrl *EntryController) ListDietEntries(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	memberID, ok := ctrl.resolveMemberID(c)
	if !ok {
		return
	}

	var (
		entries []model.DietEntry
		err     error
	)
	if date := c.Query("date"); date != "" {
		entries, err = ctrl.entryService.DietEntriesByDate(memberID, date)
	} else {
		entries, err = ctrl.entryService.DietEntries(memberID)
	}
	if err != nil {
		log.Error("Failed to list diet entries", err, map[string]interface{}{
			"member_id": memberID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list diet entries")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}

// SetDietFeedback attaches a trainer comment to a diet entry
// PUT /api/v1/entries/diet/:id/feedback
func (ctrl *EntryController) SetDietFeedback(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	viewer, ok := ctrl.feedbackViewer(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "유효하지 않은 기록 ID입니다")
		return
	}

	var req DietFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	entry, err := ctrl.entryService.DietEntryByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			apperrors.NotFound(c, apperrors.EntryNotFound, "기록을 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "set diet feedback")
		return
	}
	if !ctrl.entryVisible(c, viewer, entry.MemberID) {
		return
	}

	updated, err := ctrl.entryService.SetDietFeedback(uint(id), req.Feedback)
	if err != nil {
		log.Error("Failed to set diet feedback", err, map[string]interface{}{
			"entry_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "set diet feedback")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Feedback saved",
		"entry":   updated,
	})
}

// AddWorkoutEntry records a workout; calories are estimated from activity and duration
// POST /api/v1/entries/workout
func (ctrl *EntryController) AddWorkoutEntry(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	memberID, ok := ctrl.resolveMemberID(c)
	if !ok {
		return
	}

	var req WorkoutEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	entry, err := ctrl.entryService.AddWorkoutEntry(service.WorkoutEntryInput{
		MemberID:        memberID,
		Date:            req.Date,
		ActivityName:    req.ActivityName,
		DurationMinutes: req.DurationMinutes,
		ConditionScore:  req.ConditionScore,
		SleepHours:      req.SleepHours,
		PainLevel:       req.PainLevel,
		Memo:            req.Memo,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidEntryDate) {
			apperrors.BadRequest(c, apperrors.EntryInvalidDate, "날짜는 YYYY-MM-DD 형식이어야 합니다")
			return
		}
		log.Error("Failed to add workout entry", err, map[string]interface{}{
			"member_id": memberID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "add workout entry")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Workout entry added",
		"entry":   entry,
	})
}

// ListWorkoutEntries returns workout entries for a member
// GET /api/v1/entries/workout
func (ctrl *EntryController) ListWorkoutEntries(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	memberID, ok := ctrl.resolveMemberID(c)
	if !ok {
		return
	}

	entries, err := ctrl.entryService.WorkoutEntries(memberID)
	if err != nil {
		log.Error("Failed to list workout entries", err, map[string]interface{}{
			"member_id": memberID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list workout entries")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}

// SetWorkoutFeedback attaches a trainer comment and next goal to a workout entry
// PUT /api/v1/entries/workout/:id/feedback
func (ctrl *EntryController) SetWorkoutFeedback(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	viewer, ok := ctrl.feedbackViewer(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "유효하지 않은 기록 ID입니다")
		return
	}

	var req WorkoutFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	entry, err := ctrl.entryService.WorkoutEntryByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			apperrors.NotFound(c, apperrors.EntryNotFound, "기록을 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "set workout feedback")
		return
	}
	if !ctrl.entryVisible(c, viewer, entry.MemberID) {
		return
	}

	updated, err := ctrl.entryService.SetWorkoutFeedback(uint(id), req.Feedback, req.NextGoal)
	if err != nil {
		log.Error("Failed to set workout feedback", err, map[string]interface{}{
			"entry_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "set workout feedback")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Feedback saved",
		"entry":   updated,
	})
}

// AddBodyEntry records a body-composition measurement.
// If sheet text is provided, values are extracted from it.
// POST /api/v1/entries/body
func (ctrl *EntryController) AddBodyEntry(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	memberID, ok := ctrl.resolveMemberID(c)
	if !ok {
		return
	}

	var req BodyEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	entry, err := ctrl.entryService.AddBodyEntry(service.BodyEntryInput{
		MemberID:          memberID,
		Date:              req.Date,
		SheetImageURL:     req.SheetImageURL,
		SheetText:         req.SheetText,
		Weight:            req.Weight,
		SkeletalMuscle:    req.SkeletalMuscle,
		BodyFatPercentage: req.BodyFatPercentage,
		Score:             req.Score,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidEntryDate) {
			apperrors.BadRequest(c, apperrors.EntryInvalidDate, "날짜는 YYYY-MM-DD 형식이어야 합니다")
			return
		}
		log.Error("Failed to add body entry", err, map[string]interface{}{
			"member_id": memberID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "add body entry")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Body entry added",
		"entry":   entry,
	})
}

// ListBodyEntries returns body-composition history for a member
// GET /api/v1/entries/body
func (ctrl *EntryController) ListBodyEntries(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	memberID, ok := ctrl.resolveMemberID(c)
	if !ok {
		return
	}

	entries, err := ctrl.entryService.BodyEntries(memberID)
	if err != nil {
		log.Error("Failed to list body entries", err, map[string]interface{}{
			"member_id": memberID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list body entries")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}
