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
	"github.com/bemove/bemove-backend/internal/ws"
	"github.com/gin-gonic/gin"
)

type RevenueController struct {
	revenueService service.RevenueService
	hub            *ws.Hub
}

func NewRevenueController(revenueService service.RevenueService, hub *ws.Hub) *RevenueController {
	return &RevenueController{
		revenueService: revenueService,
		hub:            hub,
	}
}

type NewSaleRequest struct {
	MemberName  string            `json:"member_name" binding:"required"`
	PhoneNumber string            `json:"phone_number"`
	Amount      int64             `json:"amount" binding:"required"`
	Sessions    int               `json:"sessions"`
	Source      model.SalesSource `json:"source" binding:"required"`
	Date        string            `json:"date" binding:"required"`
}

type RenewalRequest struct {
	MemberID uint   `json:"member_id" binding:"required"`
	Amount   int64  `json:"amount" binding:"required"`
	Sessions int    `json:"sessions"`
	Date     string `json:"date" binding:"required"`
}

// 기본은 현재 월, ?month=YYYY-MM 으로 조회 월 지정
func monthKeyFromQuery(c *gin.Context) string {
	if month := c.Query("month"); month != "" {
		return month
	}
	return time.Now().Format("2006-01")
}

func respondSaleError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, service.ErrInvalidSaleAmount):
		apperrors.BadRequest(c, apperrors.SalesInvalidAmount, "매출 금액은 0보다 커야 합니다")
	case errors.Is(err, service.ErrInvalidSource):
		apperrors.BadRequest(c, apperrors.SalesInvalidSource, "유효하지 않은 유입 경로입니다")
	case errors.Is(err, service.ErrInvalidSaleDate):
		apperrors.BadRequest(c, apperrors.SalesInvalidDate, "날짜는 YYYY-MM-DD 형식이어야 합니다")
	case errors.Is(err, service.ErrMemberNotFound):
		apperrors.NotFound(c, apperrors.MemberNotFound, "회원을 찾을 수 없습니다")
	default:
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, context)
	}
}

// RecordNewSale records a new-member sale, creating the member in the same transaction
// POST /api/v1/revenue/sales
func (ctrl *RevenueController) RecordNewSale(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	trainerID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	var req NewSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	txn, member, err := ctrl.revenueService.RecordNewSale(service.NewSaleInput{
		TrainerID:   trainerID,
		MemberName:  req.MemberName,
		PhoneNumber: req.PhoneNumber,
		Amount:      req.Amount,
		Sessions:    req.Sessions,
		Source:      req.Source,
		Date:        req.Date,
	})
	if err != nil {
		log.Warn("New sale rejected", map[string]interface{}{
			"trainer_id": trainerID,
			"error":      err.Error(),
		})
		respondSaleError(c, err, "record new sale")
		return
	}

	log.Info("New sale recorded", map[string]interface{}{
		"trainer_id":     trainerID,
		"transaction_id": txn.ID,
		"member_id":      member.ID,
		"amount":         txn.Amount,
	})

	// 접속 중인 직원에게 매출 이벤트를 흘려보낸다
	_ = ctrl.hub.Broadcast(map[string]interface{}{
		"type":        "transaction.recorded",
		"transaction": txn,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Sale recorded successfully",
		"transaction": txn,
		"member":      member,
	})
}

// RecordRenewal records a renewal sale for an existing member
// POST /api/v1/revenue/renewals
func (ctrl *RevenueController) RecordRenewal(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	trainerID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	var req RenewalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	txn, err := ctrl.revenueService.RecordRenewal(service.RenewalInput{
		TrainerID: trainerID,
		MemberID:  req.MemberID,
		Amount:    req.Amount,
		Sessions:  req.Sessions,
		Date:      req.Date,
	})
	if err != nil {
		log.Warn("Renewal rejected", map[string]interface{}{
			"trainer_id": trainerID,
			"member_id":  req.MemberID,
			"error":      err.Error(),
		})
		respondSaleError(c, err, "record renewal")
		return
	}

	log.Info("Renewal recorded", map[string]interface{}{
		"trainer_id":     trainerID,
		"transaction_id": txn.ID,
		"amount":         txn.Amount,
	})

	_ = ctrl.hub.Broadcast(map[string]interface{}{
		"type":        "transaction.recorded",
		"transaction": txn,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Renewal recorded successfully",
		"transaction": txn,
	})
}

// GetMonthlyBreakdown returns the caller's revenue breakdown for a month
// GET /api/v1/revenue/breakdown?month=YYYY-MM
func (ctrl *RevenueController) GetMonthlyBreakdown(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	trainerID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	monthKey := monthKeyFromQuery(c)
	breakdown, err := ctrl.revenueService.Breakdown(trainerID, monthKey)
	if err != nil {
		log.Error("Failed to compute revenue breakdown", err, map[string]interface{}{
			"trainer_id": trainerID,
			"month":      monthKey,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get revenue breakdown")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month":     monthKey,
		"breakdown": breakdown,
	})
}

// GetRevenueBySource returns new-member counts and revenue per acquisition source
// GET /api/v1/revenue/sources?month=YYYY-MM
func (ctrl *RevenueController) GetRevenueBySource(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	trainerID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	monthKey := monthKeyFromQuery(c)
	stats, err := ctrl.revenueService.RevenueBySource(trainerID, monthKey)
	if err != nil {
		log.Error("Failed to compute source stats", err, map[string]interface{}{
			"trainer_id": trainerID,
			"month":      monthKey,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get revenue by source")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month":   monthKey,
		"sources": stats,
	})
}

// GetTrailingSeries returns the caller's monthly revenue for the trailing N months
// GET /api/v1/revenue/trend?months=6
func (ctrl *RevenueController) GetTrailingSeries(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	trainerID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	months := 6
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 24 {
			apperrors.BadRequest(c, apperrors.ValidationInvalidRange, "조회 기간은 1~24개월이어야 합니다")
			return
		}
		months = parsed
	}

	series, err := ctrl.revenueService.TrailingSeries(trainerID, months)
	if err != nil {
		log.Error("Failed to compute trailing series", err, map[string]interface{}{
			"trainer_id": trainerID,
			"months":     months,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get revenue trend")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"series": series,
	})
}

// ListTransactions returns the caller's sale records
// GET /api/v1/revenue/transactions
func (ctrl *RevenueController) ListTransactions(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	trainerID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	txns, err := ctrl.revenueService.TransactionsByTrainer(trainerID)
	if err != nil {
		log.Error("Failed to list transactions", err, map[string]interface{}{
			"trainer_id": trainerID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list transactions")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": txns,
		"count":        len(txns),
	})
}
