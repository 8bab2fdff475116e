package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bemove/bemove-backend/internal/app/service"
	apperrors "github.com/bemove/bemove-backend/internal/errors"
	"github.com/bemove/bemove-backend/internal/middleware"
	"github.com/bemove/bemove-backend/internal/ws"
	"github.com/gin-gonic/gin"
)

type SurveyController struct {
	surveyService service.SurveyService
	memberService service.MemberService
	authService   service.AuthService
	hub           *ws.Hub
}

func NewSurveyController(
	surveyService service.SurveyService,
	memberService service.MemberService,
	authService service.AuthService,
	hub *ws.Hub,
) *SurveyController {
	return &SurveyController{
		surveyService: surveyService,
		memberService: memberService,
		authService:   authService,
		hub:           hub,
	}
}

type SubmitSurveyRequest struct {
	TrainerID          uint   `json:"trainer_id" binding:"required"`
	Punctuality        int    `json:"punctuality" binding:"required"`
	GoalAchievement    int    `json:"goal_achievement" binding:"required"`
	Kindness           int    `json:"kindness" binding:"required"`
	Professionalism    int    `json:"professionalism" binding:"required"`
	Appearance         int    `json:"appearance" binding:"required"`
	DurationCompliance int    `json:"duration_compliance" binding:"required"`
	FeedbackReflection int    `json:"feedback_reflection" binding:"required"`
	Focus              int    `json:"focus" binding:"required"`
	Comment            string `json:"comment"`
	PrivateComment     string `json:"private_comment"`
}

// SubmitSurvey accepts a satisfaction survey from a member account
// POST /api/v1/surveys
func (ctrl *SurveyController) SubmitSurvey(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	viewer, err := ctrl.authService.GetUserByID(userID)
	if err != nil {
		apperrors.Unauthorized(c, "사용자 정보를 확인할 수 없습니다")
		return
	}

	// 설문은 본인 회원 데이터 기준으로만 제출할 수 있다
	member, err := ctrl.memberService.MemberForAccount(viewer)
	if err != nil {
		if errors.Is(err, service.ErrMemberRecordNotFound) {
			apperrors.NotFound(c, apperrors.MemberRecordNotFound, "계정에 연결된 회원 정보를 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "submit survey")
		return
	}

	var req SubmitSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	survey, err := ctrl.surveyService.SubmitSurvey(service.SurveyInput{
		MemberID:           member.ID,
		MemberName:         member.Name,
		TrainerID:          req.TrainerID,
		Punctuality:        req.Punctuality,
		GoalAchievement:    req.GoalAchievement,
		Kindness:           req.Kindness,
		Professionalism:    req.Professionalism,
		Appearance:         req.Appearance,
		DurationCompliance: req.DurationCompliance,
		FeedbackReflection: req.FeedbackReflection,
		Focus:              req.Focus,
		Comment:            req.Comment,
		PrivateComment:     req.PrivateComment,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSurveyScore):
			apperrors.BadRequest(c, apperrors.SurveyInvalidScore, "점수는 1-5 사이여야 합니다")
		case errors.Is(err, service.ErrStaffNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "트레이너를 찾을 수 없습니다")
		default:
			log.Error("Failed to submit survey", err, map[string]interface{}{
				"member_id":  member.ID,
				"trainer_id": req.TrainerID,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "submit survey")
		}
		return
	}

	log.Info("Survey submitted", map[string]interface{}{
		"survey_id":  survey.ID,
		"trainer_id": req.TrainerID,
		"rating":     survey.Rating,
	})

	// 비공개 코멘트는 이벤트에 싣지 않는다
	_ = ctrl.hub.Broadcast(map[string]interface{}{
		"type":       "survey.submitted",
		"trainer_id": survey.TrainerID,
		"rating":     survey.Rating,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Survey submitted successfully",
		"survey":  survey,
	})
}

// ListMySurveys returns surveys about the calling trainer, private comments removed
// GET /api/v1/surveys/me
func (ctrl *SurveyController) ListMySurveys(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	trainerID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	surveys, err := ctrl.surveyService.SurveysForTrainer(trainerID)
	if err != nil {
		log.Error("Failed to list surveys", err, map[string]interface{}{
			"trainer_id": trainerID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list surveys")
		return
	}

	rating, count, err := ctrl.surveyService.TrainerRating(trainerID)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list surveys")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"surveys":        surveys,
		"count":          len(surveys),
		"average_rating": rating,
		"survey_count":   count,
	})
}

// ListTrainerSurveys returns full surveys for a trainer, private comments included.
// Restricted to managers and admins.
// GET /api/v1/surveys/trainers/:id
func (ctrl *SurveyController) ListTrainerSurveys(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "유효하지 않은 트레이너 ID입니다")
		return
	}

	surveys, err := ctrl.surveyService.SurveysByTrainer(uint(id))
	if err != nil {
		log.Error("Failed to list trainer surveys", err, map[string]interface{}{
			"trainer_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list trainer surveys")
		return
	}

	rating, count, err := ctrl.surveyService.TrainerRating(uint(id))
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list trainer surveys")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"surveys":        surveys,
		"count":          len(surveys),
		"average_rating": rating,
		"survey_count":   count,
	})
}

// ListAllSurveys returns every survey. Admin only.
// GET /api/v1/surveys
func (ctrl *SurveyController) ListAllSurveys(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	surveys, err := ctrl.surveyService.AllSurveys()
	if err != nil {
		log.Error("Failed to list all surveys", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list surveys")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"surveys": surveys,
		"count":   len(surveys),
	})
}
