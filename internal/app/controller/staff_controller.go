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

type StaffController struct {
	staffService service.StaffService
}

func NewStaffController(staffService service.StaffService) *StaffController {
	return &StaffController{staffService: staffService}
}

type CreateStaffRequest struct {
	Email      string         `json:"email" binding:"required,email"`
	Password   string         `json:"password" binding:"required,min=6"`
	Name       string         `json:"name" binding:"required"`
	Position   string         `json:"position"`
	BranchName string         `json:"branch_name"`
	Role       model.UserRole `json:"role" binding:"required"`
}

type UpdateStaffRequest struct {
	Name       *string         `json:"name"`
	Position   *string         `json:"position"`
	BranchName *string         `json:"branch_name"`
	Role       *model.UserRole `json:"role"`
}

func staffResponse(user *model.User) gin.H {
	return gin.H{
		"id":          user.ID,
		"email":       user.Email,
		"name":        user.Name,
		"role":        user.Role,
		"position":    user.Position,
		"branch_name": user.BranchName,
		"created_at":  user.CreatedAt,
	}
}

// ListStaff returns all staff accounts
// GET /api/v1/staff
func (ctrl *StaffController) ListStaff(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	branchName := c.Query("branch_name")

	var (
		staff []model.User
		err   error
	)
	if branchName != "" {
		staff, err = ctrl.staffService.ListStaffByBranch(branchName)
	} else {
		staff, err = ctrl.staffService.ListStaff()
	}
	if err != nil {
		log.Error("Failed to list staff", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list staff")
		return
	}

	responses := make([]gin.H, 0, len(staff))
	for i := range staff {
		responses = append(responses, staffResponse(&staff[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"staff": responses,
		"count": len(responses),
	})
}

// CreateStaff creates a staff account
// POST /api/v1/staff
func (ctrl *StaffController) CreateStaff(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	user, err := ctrl.staffService.CreateStaff(req.Email, req.Password, req.Name, req.Position, req.BranchName, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStaffRole):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "직원 권한이 올바르지 않습니다")
		case errors.Is(err, service.ErrInvalidPosition):
			apperrors.BadRequest(c, apperrors.TargetInvalidPosition, "유효하지 않은 직책입니다")
		case errors.Is(err, service.ErrUnknownBranchName):
			apperrors.NotFound(c, apperrors.BranchNotFound, "지점을 찾을 수 없습니다")
		default:
			log.Error("Failed to create staff", err, map[string]interface{}{
				"email": req.Email,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create staff")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Staff created successfully",
		"staff":   staffResponse(user),
	})
}

// GetStaff returns a single staff account
// GET /api/v1/staff/:id
func (ctrl *StaffController) GetStaff(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "유효하지 않은 직원 ID입니다")
		return
	}

	user, err := ctrl.staffService.GetStaff(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrStaffNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "직원을 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get staff")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"staff": staffResponse(user),
	})
}

// UpdateStaff updates a staff account
// PUT /api/v1/staff/:id
func (ctrl *StaffController) UpdateStaff(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "유효하지 않은 직원 ID입니다")
		return
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	user, err := ctrl.staffService.UpdateStaff(uint(id), service.StaffUpdateInput{
		Name:       req.Name,
		Position:   req.Position,
		BranchName: req.BranchName,
		Role:       req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStaffNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "직원을 찾을 수 없습니다")
		case errors.Is(err, service.ErrInvalidPosition):
			apperrors.BadRequest(c, apperrors.TargetInvalidPosition, "유효하지 않은 직책입니다")
		case errors.Is(err, service.ErrUnknownBranchName):
			apperrors.NotFound(c, apperrors.BranchNotFound, "지점을 찾을 수 없습니다")
		default:
			log.Error("Failed to update staff", err, map[string]interface{}{
				"staff_id": id,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update staff")
		}
		return
	}

	log.Info("Staff updated", map[string]interface{}{
		"staff_id": user.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Staff updated successfully",
		"staff":   staffResponse(user),
	})
}

// DeleteStaff deletes a staff account
// DELETE /api/v1/staff/:id
func (ctrl *StaffController) DeleteStaff(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "유효하지 않은 직원 ID입니다")
		return
	}

	if err := ctrl.staffService.DeleteStaff(uint(id)); err != nil {
		if errors.Is(err, service.ErrStaffNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "직원을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to delete staff", err, map[string]interface{}{
			"staff_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete staff")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Staff deleted successfully",
	})
}
