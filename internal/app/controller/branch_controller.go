package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bemove/bemove-backend/internal/app/service"
	apperrors "github.com/bemove/bemove-backend/internal/errors"
	"github.com/bemove/bemove-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type BranchController struct {
	branchService service.BranchService
}

func NewBranchController(branchService service.BranchService) *BranchController {
	return &BranchController{branchService: branchService}
}

type BranchRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListBranches returns all branches
// GET /api/v1/branches
func (ctrl *BranchController) ListBranches(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	branches, err := ctrl.branchService.ListBranches()
	if err != nil {
		log.Error("Failed to list branches", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list branches")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"branches": branches,
		"count":    len(branches),
	})
}

// CreateBranch creates a new branch
// POST /api/v1/branches
func (ctrl *BranchController) CreateBranch(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	branch, err := ctrl.branchService.CreateBranch(req.Name)
	if err != nil {
		if errors.Is(err, service.ErrBranchNameRequired) {
			apperrors.BadRequest(c, apperrors.BranchNameRequired, "지점 이름을 입력해주세요")
			return
		}
		log.Error("Failed to create branch", err, map[string]interface{}{
			"name": req.Name,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create branch")
		return
	}

	log.Info("Branch created", map[string]interface{}{
		"branch_id": branch.ID,
		"name":      branch.Name,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Branch created successfully",
		"branch":  branch,
	})
}

// RenameBranch renames a branch and propagates the change
// PUT /api/v1/branches/:id
func (ctrl *BranchController) RenameBranch(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "유효하지 않은 지점 ID입니다")
		return
	}

	var req BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	branch, err := ctrl.branchService.RenameBranch(uint(id), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBranchNotFound):
			apperrors.NotFound(c, apperrors.BranchNotFound, "지점을 찾을 수 없습니다")
		case errors.Is(err, service.ErrBranchExists):
			apperrors.Conflict(c, apperrors.BranchAlreadyExists, "이미 사용 중인 지점 이름입니다")
		case errors.Is(err, service.ErrBranchNameRequired):
			apperrors.BadRequest(c, apperrors.BranchNameRequired, "지점 이름을 입력해주세요")
		default:
			log.Error("Failed to rename branch", err, map[string]interface{}{
				"branch_id": id,
				"new_name":  req.Name,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "rename branch")
		}
		return
	}

	log.Info("Branch renamed", map[string]interface{}{
		"branch_id": branch.ID,
		"new_name":  branch.Name,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Branch renamed successfully",
		"branch":  branch,
	})
}

// DeleteBranch deletes a branch, unassigning its staff
// DELETE /api/v1/branches/:id
func (ctrl *BranchController) DeleteBranch(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "유효하지 않은 지점 ID입니다")
		return
	}

	if err := ctrl.branchService.DeleteBranch(uint(id)); err != nil {
		if errors.Is(err, service.ErrBranchNotFound) {
			apperrors.NotFound(c, apperrors.BranchNotFound, "지점을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to delete branch", err, map[string]interface{}{
			"branch_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete branch")
		return
	}

	log.Info("Branch deleted", map[string]interface{}{
		"branch_id": id,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Branch deleted successfully",
	})
}
