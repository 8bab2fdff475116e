package controller

import (
	"errors"
	"net/http"

	"github.com/bemove/bemove-backend/internal/app/service"
	apperrors "github.com/bemove/bemove-backend/internal/errors"
	"github.com/bemove/bemove-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type TargetController struct {
	targetService service.TargetService
}

func NewTargetController(targetService service.TargetService) *TargetController {
	return &TargetController{targetService: targetService}
}

type SetTargetRequest struct {
	BranchName string `json:"branch_name" binding:"required"`
	Position   string `json:"position" binding:"required"`
	Amount     int64  `json:"amount"`
}

type RemoveTargetRequest struct {
	BranchName string `json:"branch_name" binding:"required"`
	Position   string `json:"position" binding:"required"`
}

// GetBranchTargets returns the effective target per position for a branch
// GET /api/v1/targets?branch_name=야음점
func (ctrl *TargetController) GetBranchTargets(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	branchName := c.Query("branch_name")
	if branchName == "" {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "지점 이름이 필요합니다")
		return
	}

	targets, err := ctrl.targetService.BranchTargets(branchName)
	if err != nil {
		if errors.Is(err, service.ErrBranchNotFound) {
			apperrors.NotFound(c, apperrors.BranchNotFound, "지점을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to resolve branch targets", err, map[string]interface{}{
			"branch_name": branchName,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get branch targets")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"branch_name": branchName,
		"targets":     targets,
	})
}

// SetTarget creates or replaces a branch/position target override
// PUT /api/v1/targets
func (ctrl *TargetController) SetTarget(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req SetTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	override, err := ctrl.targetService.SetTarget(req.BranchName, req.Position, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTargetAmount):
			apperrors.BadRequest(c, apperrors.TargetInvalidAmount, "목표 금액은 0 이상이어야 합니다")
		case errors.Is(err, service.ErrInvalidPosition):
			apperrors.BadRequest(c, apperrors.TargetInvalidPosition, "유효하지 않은 직책입니다")
		case errors.Is(err, service.ErrBranchNotFound):
			apperrors.NotFound(c, apperrors.BranchNotFound, "지점을 찾을 수 없습니다")
		default:
			log.Error("Failed to set target", err, map[string]interface{}{
				"branch_name": req.BranchName,
				"position":    req.Position,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "set target")
		}
		return
	}

	log.Info("Target override set", map[string]interface{}{
		"branch_name": req.BranchName,
		"position":    req.Position,
		"amount":      req.Amount,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Target set successfully",
		"target":  override,
	})
}

// RemoveTarget removes an override so the position falls back to its default
// DELETE /api/v1/targets
func (ctrl *TargetController) RemoveTarget(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RemoveTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	if err := ctrl.targetService.RemoveTarget(req.BranchName, req.Position); err != nil {
		log.Error("Failed to remove target", err, map[string]interface{}{
			"branch_name": req.BranchName,
			"position":    req.Position,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "remove target")
		return
	}

	log.Info("Target override removed", map[string]interface{}{
		"branch_name": req.BranchName,
		"position":    req.Position,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Target removed successfully",
	})
}
