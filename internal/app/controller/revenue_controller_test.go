package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/internal/app/repository"
	"github.com/bemove/bemove-backend/internal/app/service"
	"github.com/bemove/bemove-backend/internal/db"
	"github.com/bemove/bemove-backend/internal/middleware"
	"github.com/bemove/bemove-backend/internal/ws"
	"github.com/bemove/bemove-backend/pkg/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRevenueControllerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	txnRepo := repository.NewTransactionRepository(testDB)
	memberRepo := repository.NewMemberRepository(testDB)
	revenueService := service.NewRevenueService(txnRepo, memberRepo)

	ctrl := NewRevenueController(revenueService, ws.NewHub())
	authMiddleware := middleware.NewAuthMiddleware("test-secret")

	router := gin.New()
	authed := router.Group("/revenue")
	authed.Use(authMiddleware.Authenticate())
	authed.Use(authMiddleware.RequireRole(model.RoleTrainer, model.RoleManager, model.RoleAdmin))
	{
		authed.POST("/sales", ctrl.RecordNewSale)
		authed.POST("/renewals", ctrl.RecordRenewal)
		authed.GET("/breakdown", ctrl.GetMonthlyBreakdown)
		authed.GET("/transactions", ctrl.ListTransactions)
	}

	return router, testDB
}

func trainerWithToken(t *testing.T, testDB *gorm.DB) (*model.User, string) {
	trainer := &model.User{
		Email:        "trainer@bemove.kr",
		PasswordHash: "hash",
		Name:         "김트레이너",
		Role:         model.RoleTrainer,
		Position:     "트레이너",
		BranchName:   "야음점",
	}
	require.NoError(t, testDB.Create(trainer).Error)

	tokens, err := util.GenerateTokenPair(trainer.ID, trainer.Email, string(trainer.Role), "test-secret", 15*time.Minute, time.Hour)
	require.NoError(t, err)
	return trainer, tokens.AccessToken
}

func TestRevenueController_RecordNewSale_Success(t *testing.T) {
	router, testDB := setupRevenueControllerTest(t)
	_, token := trainerWithToken(t, testDB)

	reqBody := NewSaleRequest{
		MemberName: "이재민",
		Amount:     1200000,
		Sessions:   10,
		Source:     model.SourceReferral,
		Date:       "2026-08-12",
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/revenue/sales", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.NotNil(t, response["transaction"])
	assert.NotNil(t, response["member"])

	// 신규 매출은 회원 생성까지 같이 이뤄진다
	var memberCount int64
	testDB.Model(&model.Member{}).Count(&memberCount)
	assert.Equal(t, int64(1), memberCount)
}

func TestRevenueController_RecordNewSale_InvalidAmount(t *testing.T) {
	router, testDB := setupRevenueControllerTest(t)
	_, token := trainerWithToken(t, testDB)

	reqBody := NewSaleRequest{
		MemberName: "이재민",
		Amount:     -5000,
		Source:     model.SourceOT,
		Date:       "2026-08-12",
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/revenue/sales", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "SALES_INVALID_AMOUNT")
}

func TestRevenueController_RecordRenewal_UnknownMember(t *testing.T) {
	router, testDB := setupRevenueControllerTest(t)
	_, token := trainerWithToken(t, testDB)

	reqBody := RenewalRequest{
		MemberID: 9999,
		Amount:   800000,
		Sessions: 8,
		Date:     "2026-08-15",
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/revenue/renewals", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRevenueController_GetMonthlyBreakdown(t *testing.T) {
	router, testDB := setupRevenueControllerTest(t)
	trainer, token := trainerWithToken(t, testDB)

	testDB.Create(&model.Transaction{
		TrainerID:  trainer.ID,
		MemberName: "이재민",
		Type:       model.TransactionNew,
		Amount:     1000000,
		Source:     model.SourceOT,
		Date:       "2026-08-03",
	})
	testDB.Create(&model.Transaction{
		TrainerID:  trainer.ID,
		MemberName: "박서준",
		Type:       model.TransactionRenewal,
		Amount:     500000,
		Source:     model.SourceReferral,
		Date:       "2026-08-20",
	})

	req := httptest.NewRequest("GET", "/revenue/breakdown?month=2026-08", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "2026-08", response["month"])
	breakdown := response["breakdown"].(map[string]interface{})
	assert.Equal(t, float64(1500000), breakdown["total"])
	assert.Equal(t, float64(1000000), breakdown["new_revenue"])
	assert.Equal(t, float64(500000), breakdown["renewal_revenue"])
}

func TestRevenueController_ListTransactions_RequiresStaffRole(t *testing.T) {
	router, testDB := setupRevenueControllerTest(t)

	member := &model.User{
		Email:        "member@bemove.kr",
		PasswordHash: "hash",
		Name:         "회원",
		Role:         model.RoleMember,
	}
	require.NoError(t, testDB.Create(member).Error)

	tokens, err := util.GenerateTokenPair(member.ID, member.Email, string(member.Role), "test-secret", 15*time.Minute, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/revenue/transactions", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
