package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bemove/bemove-backend/config"
	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/internal/app/repository"
	"github.com/bemove/bemove-backend/internal/app/service"
	"github.com/bemove/bemove-backend/internal/db"
	"github.com/bemove/bemove-backend/internal/middleware"
	"github.com/bemove/bemove-backend/pkg/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupEntryControllerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	memberRepo := repository.NewMemberRepository(testDB)
	entryRepo := repository.NewEntryRepository(testDB)

	authService := service.NewAuthService(userRepo, memberRepo, "test-secret", 15*time.Minute, time.Hour)
	memberService := service.NewMemberService(memberRepo)
	estimates := service.NewEstimateService(&config.EstimateConfig{Timeout: 5 * time.Second})
	entryService := service.NewEntryService(entryRepo, memberRepo, estimates)

	ctrl := NewEntryController(entryService, memberService, authService)
	authMiddleware := middleware.NewAuthMiddleware("test-secret")

	router := gin.New()
	entries := router.Group("/entries")
	entries.Use(authMiddleware.Authenticate())
	{
		entries.POST("/diet", ctrl.AddDietEntry)
		entries.GET("/diet", ctrl.ListDietEntries)
		entries.PUT("/diet/:id/feedback",
			authMiddleware.RequireRole(model.RoleTrainer, model.RoleManager, model.RoleAdmin),
			ctrl.SetDietFeedback,
		)
	}

	return router, testDB
}

func createEntryTrainer(t *testing.T, testDB *gorm.DB, email string) (*model.User, string) {
	trainer := &model.User{
		Email:        email,
		PasswordHash: "hash",
		Name:         "트레이너",
		Role:         model.RoleTrainer,
		Position:     "트레이너",
		BranchName:   "야음점",
	}
	require.NoError(t, testDB.Create(trainer).Error)

	tokens, err := util.GenerateTokenPair(trainer.ID, trainer.Email, string(trainer.Role), "test-secret", 15*time.Minute, time.Hour)
	require.NoError(t, err)
	return trainer, tokens.AccessToken
}

func TestEntryController_ListDietEntries_OtherTrainersMemberForbidden(t *testing.T) {
	router, testDB := setupEntryControllerTest(t)

	owner, _ := createEntryTrainer(t, testDB, "owner@bemove.kr")
	_, token := createEntryTrainer(t, testDB, "other@bemove.kr")

	member := &model.Member{Name: "이재민", TrainerID: &owner.ID}
	require.NoError(t, testDB.Create(member).Error)
	require.NoError(t, testDB.Create(&model.DietEntry{
		MemberID:    member.ID,
		Date:        "2026-08-10",
		Description: "비공개 식단",
	}).Error)

	// 다른 트레이너 담당 회원의 기록은 조회할 수 없다
	req := httptest.NewRequest("GET", fmt.Sprintf("/entries/diet?member_id=%d", member.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "비공개 식단")
}

func TestEntryController_ListDietEntries_OwnMember(t *testing.T) {
	router, testDB := setupEntryControllerTest(t)

	owner, token := createEntryTrainer(t, testDB, "owner@bemove.kr")

	member := &model.Member{Name: "이재민", TrainerID: &owner.ID}
	require.NoError(t, testDB.Create(member).Error)
	require.NoError(t, testDB.Create(&model.DietEntry{
		MemberID:    member.ID,
		Date:        "2026-08-10",
		Description: "닭가슴살 샐러드",
	}).Error)

	req := httptest.NewRequest("GET", fmt.Sprintf("/entries/diet?member_id=%d", member.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "닭가슴살 샐러드")
}

func TestEntryController_AddDietEntry_OtherTrainersMemberForbidden(t *testing.T) {
	router, testDB := setupEntryControllerTest(t)

	owner, _ := createEntryTrainer(t, testDB, "owner@bemove.kr")
	_, token := createEntryTrainer(t, testDB, "other@bemove.kr")

	member := &model.Member{Name: "이재민", TrainerID: &owner.ID}
	require.NoError(t, testDB.Create(member).Error)

	body, _ := json.Marshal(DietEntryRequest{
		Date:        "2026-08-10",
		Description: "샐러드",
	})
	req := httptest.NewRequest("POST", fmt.Sprintf("/entries/diet?member_id=%d", member.ID), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	testDB.Model(&model.DietEntry{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestEntryController_SetDietFeedback_OtherTrainersMemberForbidden(t *testing.T) {
	router, testDB := setupEntryControllerTest(t)

	owner, _ := createEntryTrainer(t, testDB, "owner@bemove.kr")
	_, token := createEntryTrainer(t, testDB, "other@bemove.kr")

	member := &model.Member{Name: "이재민", TrainerID: &owner.ID}
	require.NoError(t, testDB.Create(member).Error)
	entry := &model.DietEntry{MemberID: member.ID, Date: "2026-08-10", Description: "샐러드"}
	require.NoError(t, testDB.Create(entry).Error)

	body, _ := json.Marshal(DietFeedbackRequest{Feedback: "코멘트"})
	req := httptest.NewRequest("PUT", fmt.Sprintf("/entries/diet/%d/feedback", entry.ID), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var stored model.DietEntry
	require.NoError(t, testDB.First(&stored, entry.ID).Error)
	assert.Empty(t, stored.TrainerFeedback)
}

func TestEntryController_SetDietFeedback_OwnMember(t *testing.T) {
	router, testDB := setupEntryControllerTest(t)

	owner, token := createEntryTrainer(t, testDB, "owner@bemove.kr")

	member := &model.Member{Name: "이재민", TrainerID: &owner.ID}
	require.NoError(t, testDB.Create(member).Error)
	entry := &model.DietEntry{MemberID: member.ID, Date: "2026-08-10", Description: "샐러드"}
	require.NoError(t, testDB.Create(entry).Error)

	body, _ := json.Marshal(DietFeedbackRequest{Feedback: "단백질을 더 챙기세요"})
	req := httptest.NewRequest("PUT", fmt.Sprintf("/entries/diet/%d/feedback", entry.ID), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var stored model.DietEntry
	require.NoError(t, testDB.First(&stored, entry.ID).Error)
	assert.Equal(t, "단백질을 더 챙기세요", stored.TrainerFeedback)
}
