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

type MemberController struct {
	memberService service.MemberService
	authService   service.AuthService
}

func NewMemberController(memberService service.MemberService, authService service.AuthService) *MemberController {
	return &MemberController{
		memberService: memberService,
		authService:   authService,
	}
}

type CreateMemberRequest struct {
	Name            string                `json:"name" binding:"required"`
	PhoneNumber     string                `json:"phone_number"`
	Age             int                   `json:"age"`
	Gender          string                `json:"gender"`
	Height          float64               `json:"height"`
	InitialWeight   float64               `json:"initial_weight"`
	Goal            string                `json:"goal"`
	JoinDate        string                `json:"join_date"`
	TrainerID       *uint                 `json:"trainer_id"`
	TotalSessions   int                   `json:"total_sessions"`
	Source          model.SalesSource     `json:"source"`
	BehavioralStage model.BehavioralStage `json:"behavioral_stage"`
}

type UpdateMemberRequest struct {
	Name            *string                `json:"name"`
	PhoneNumber     *string                `json:"phone_number"`
	Age             *int                   `json:"age"`
	Gender          *string                `json:"gender"`
	Height          *float64               `json:"height"`
	InitialWeight   *float64               `json:"initial_weight"`
	Goal            *string                `json:"goal"`
	Status          *model.MemberStatus    `json:"status"`
	TrainerID       *uint                  `json:"trainer_id"`
	Unassign        bool                   `json:"unassign"`
	BehavioralStage *model.BehavioralStage `json:"behavioral_stage"`
}

// viewer는 역할별 회원 조회 범위 판단에 필요하다
func (ctrl *MemberController) currentUser(c *gin.Context) (*model.User, bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return nil, false
	}
	user, err := ctrl.authService.GetUserByID(userID)
	if err != nil {
		apperrors.Unauthorized(c, "사용자 정보를 확인할 수 없습니다")
		return nil, false
	}
	return user, true
}

// ListMembers returns members visible to the caller.
// Trainers see their own and unassigned members, managers and admins see all.
// GET /api/v1/members
func (ctrl *MemberController) ListMembers(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	viewer, ok := ctrl.currentUser(c)
	if !ok {
		return
	}

	members, err := ctrl.memberService.MembersForViewer(viewer)
	if err != nil {
		log.Error("Failed to list members", err, map[string]interface{}{
			"viewer_id": viewer.ID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list members")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"members": members,
		"count":   len(members),
	})
}

// GetMyMemberRecord returns the member record linked to the caller's account
// GET /api/v1/members/me
func (ctrl *MemberController) GetMyMemberRecord(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	viewer, ok := ctrl.currentUser(c)
	if !ok {
		return
	}

	member, err := ctrl.memberService.MemberForAccount(viewer)
	if err != nil {
		if errors.Is(err, service.ErrMemberRecordNotFound) {
			apperrors.NotFound(c, apperrors.MemberRecordNotFound, "계정에 연결된 회원 정보를 찾을 수 없습니다")
			return
		}
		log.Error("Failed to load member record", err, map[string]interface{}{
			"user_id": viewer.ID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get member record")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"member": member,
	})
}

// GetMember returns a single member
// GET /api/v1/members/:id
func (ctrl *MemberController) GetMember(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "유효하지 않은 회원 ID입니다")
		return
	}

	member, err := ctrl.memberService.GetMember(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			apperrors.NotFound(c, apperrors.MemberNotFound, "회원을 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get member")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"member": member,
	})
}

// CreateMember registers a member without a sale (e.g. consultation-only)
// POST /api/v1/members
func (ctrl *MemberController) CreateMember(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	member, err := ctrl.memberService.CreateMember(&model.Member{
		Name:            req.Name,
		PhoneNumber:     req.PhoneNumber,
		Age:             req.Age,
		Gender:          req.Gender,
		Height:          req.Height,
		InitialWeight:   req.InitialWeight,
		Goal:            req.Goal,
		JoinDate:        req.JoinDate,
		TrainerID:       req.TrainerID,
		TotalSessions:   req.TotalSessions,
		Source:          req.Source,
		BehavioralStage: req.BehavioralStage,
	})
	if err != nil {
		log.Error("Failed to create member", err, map[string]interface{}{
			"name": req.Name,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create member")
		return
	}

	log.Info("Member created", map[string]interface{}{
		"member_id": member.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Member created successfully",
		"member":  member,
	})
}

// UpdateMember updates a member
// PUT /api/v1/members/:id
func (ctrl *MemberController) UpdateMember(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "유효하지 않은 회원 ID입니다")
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	member, err := ctrl.memberService.UpdateMember(uint(id), service.MemberUpdateInput{
		Name:            req.Name,
		PhoneNumber:     req.PhoneNumber,
		Age:             req.Age,
		Gender:          req.Gender,
		Height:          req.Height,
		InitialWeight:   req.InitialWeight,
		Goal:            req.Goal,
		Status:          req.Status,
		TrainerID:       req.TrainerID,
		Unassign:        req.Unassign,
		BehavioralStage: req.BehavioralStage,
	})
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			apperrors.NotFound(c, apperrors.MemberNotFound, "회원을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to update member", err, map[string]interface{}{
			"member_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update member")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Member updated successfully",
		"member":  member,
	})
}

// DeleteMember soft-deletes a member
// DELETE /api/v1/members/:id
func (ctrl *MemberController) DeleteMember(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "유효하지 않은 회원 ID입니다")
		return
	}

	if err := ctrl.memberService.DeleteMember(uint(id)); err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			apperrors.NotFound(c, apperrors.MemberNotFound, "회원을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to delete member", err, map[string]interface{}{
			"member_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete member")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Member deleted successfully",
	})
}
