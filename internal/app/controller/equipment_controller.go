package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bemove/bemove-backend/internal/app/service"
	apperrors "github.com/bemove/bemove-backend/internal/errors"
	"github.com/bemove/bemove-backend/internal/middleware"
	"github.com/bemove/bemove-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

type EquipmentController struct {
	equipmentService service.EquipmentService
}

func NewEquipmentController(equipmentService service.EquipmentService) *EquipmentController {
	return &EquipmentController{equipmentService: equipmentService}
}

type EquipmentRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	ImageURL string `json:"image_url"`
	Usage    string `json:"usage"`
}

func respondEquipmentError(c *gin.Context, log *logger.Logger, err error, context string) {
	switch {
	case errors.Is(err, service.ErrEquipmentNotFound):
		apperrors.NotFound(c, apperrors.EquipmentNotFound, "기구를 찾을 수 없습니다")
	case errors.Is(err, service.ErrEquipmentExists):
		apperrors.Conflict(c, apperrors.EquipmentAlreadyExists, "이미 등록된 기구 이름입니다")
	case errors.Is(err, service.ErrInvalidCategory):
		apperrors.BadRequest(c, apperrors.EquipmentInvalidCategory, "유효하지 않은 기구 분류입니다")
	case errors.Is(err, service.ErrEquipmentReportNotFound):
		apperrors.NotFound(c, apperrors.EquipmentReportNotFound, "등록 요청을 찾을 수 없습니다")
	case errors.Is(err, service.ErrReportAlreadyHandled):
		apperrors.Conflict(c, apperrors.EquipmentReportHandled, "이미 처리된 등록 요청입니다")
	default:
		log.Error("Equipment operation failed", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, context)
	}
}

// ListEquipment returns the equipment catalog, optionally filtered by category
// GET /api/v1/equipment?category=하체
func (ctrl *EquipmentController) ListEquipment(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	equipment, err := ctrl.equipmentService.ListEquipment(c.Query("category"))
	if err != nil {
		respondEquipmentError(c, log, err, "list equipment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"equipment": equipment,
		"count":     len(equipment),
	})
}

// CreateEquipment adds a catalog entry directly (manager/admin)
// POST /api/v1/equipment
func (ctrl *EquipmentController) CreateEquipment(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req EquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	equipment, err := ctrl.equipmentService.CreateEquipment(req.Name, req.Category, req.ImageURL, req.Usage)
	if err != nil {
		respondEquipmentError(c, log, err, "create equipment")
		return
	}

	log.Info("Equipment created", map[string]interface{}{
		"equipment_id": equipment.ID,
		"name":         equipment.Name,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Equipment created successfully",
		"equipment": equipment,
	})
}

// DeleteEquipment removes a catalog entry
// DELETE /api/v1/equipment/:id
func (ctrl *EquipmentController) DeleteEquipment(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "유효하지 않은 기구 ID입니다")
		return
	}

	if err := ctrl.equipmentService.DeleteEquipment(uint(id)); err != nil {
		respondEquipmentError(c, log, err, "delete equipment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Equipment deleted successfully",
	})
}

// ReportEquipment files a new-equipment request for approval (trainer)
// POST /api/v1/equipment/reports
func (ctrl *EquipmentController) ReportEquipment(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	reporterID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	var req EquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	report, err := ctrl.equipmentService.ReportEquipment(reporterID, req.Name, req.Category, req.ImageURL, req.Usage)
	if err != nil {
		respondEquipmentError(c, log, err, "report equipment")
		return
	}

	log.Info("Equipment report filed", map[string]interface{}{
		"report_id":   report.ID,
		"reporter_id": reporterID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Equipment report submitted",
		"report":  report,
	})
}

// ListPendingReports returns unhandled equipment reports (manager/admin)
// GET /api/v1/equipment/reports
func (ctrl *EquipmentController) ListPendingReports(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	reports, err := ctrl.equipmentService.PendingReports()
	if err != nil {
		respondEquipmentError(c, log, err, "list equipment reports")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reports": reports,
		"count":   len(reports),
	})
}

// ApproveReport approves a report and creates the catalog entry
// PUT /api/v1/equipment/reports/:id/approve
func (ctrl *EquipmentController) ApproveReport(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "유효하지 않은 요청 ID입니다")
		return
	}

	equipment, err := ctrl.equipmentService.ApproveReport(uint(id))
	if err != nil {
		respondEquipmentError(c, log, err, "approve equipment report")
		return
	}

	log.Info("Equipment report approved", map[string]interface{}{
		"report_id":    id,
		"equipment_id": equipment.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":   "Report approved",
		"equipment": equipment,
	})
}

// RejectReport rejects an equipment report
// PUT /api/v1/equipment/reports/:id/reject
func (ctrl *EquipmentController) RejectReport(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "유효하지 않은 요청 ID입니다")
		return
	}

	if err := ctrl.equipmentService.RejectReport(uint(id)); err != nil {
		respondEquipmentError(c, log, err, "reject equipment report")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Report rejected",
	})
}
