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
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAuthControllerTest(t *testing.T) (*gin.Engine, service.AuthService, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(testDB)
	memberRepo := repository.NewMemberRepository(testDB)
	authService := service.NewAuthService(
		userRepo,
		memberRepo,
		"test-secret",
		15*time.Minute,
		7*24*time.Hour,
	)

	ctrl := NewAuthController(authService, 7*24*time.Hour)
	authMiddleware := middleware.NewAuthMiddleware("test-secret")

	router := gin.New()
	router.POST("/register", ctrl.RegisterMember)
	router.POST("/login", ctrl.Login)
	router.GET("/me", authMiddleware.Authenticate(), ctrl.GetMe)

	return router, authService, testDB
}

func createTestMember(t *testing.T, testDB *gorm.DB, name string) *model.Member {
	member := &model.Member{
		Name:     name,
		JoinDate: "2026-01-05",
		Status:   model.MemberActive,
	}
	require.NoError(t, testDB.Create(member).Error)
	return member
}

func TestAuthController_RegisterMember_Success(t *testing.T) {
	router, _, testDB := setupAuthControllerTest(t)

	member := createTestMember(t, testDB, "김민지")

	reqBody := RegisterMemberRequest{
		Email:    "minji@example.com",
		Password: "password123",
		Name:     "김민지",
		MemberID: member.ID,
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "Member account registered successfully", response["message"])
	assert.NotNil(t, response["user"])
	assert.NotNil(t, response["tokens"])

	userMap := response["user"].(map[string]interface{})
	assert.Equal(t, string(model.RoleMember), userMap["role"])
}

func TestAuthController_RegisterMember_UnknownMember(t *testing.T) {
	router, _, _ := setupAuthControllerTest(t)

	reqBody := RegisterMemberRequest{
		Email:    "minji@example.com",
		Password: "password123",
		Name:     "김민지",
		MemberID: 9999,
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthController_RegisterMember_DuplicateEmail(t *testing.T) {
	router, authService, testDB := setupAuthControllerTest(t)

	member := createTestMember(t, testDB, "김민지")
	_, _, err := authService.RegisterMemberAccount("minji@example.com", "password123", "김민지", member.ID)
	require.NoError(t, err)

	other := createTestMember(t, testDB, "박서준")
	reqBody := RegisterMemberRequest{
		Email:    "minji@example.com",
		Password: "password456",
		Name:     "박서준",
		MemberID: other.ID,
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthController_Login_Success(t *testing.T) {
	router, authService, testDB := setupAuthControllerTest(t)

	member := createTestMember(t, testDB, "김민지")
	_, _, err := authService.RegisterMemberAccount("minji@example.com", "password123", "김민지", member.ID)
	require.NoError(t, err)

	reqBody := LoginRequest{
		Email:    "minji@example.com",
		Password: "password123",
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "Login successful", response["message"])
	assert.NotNil(t, response["tokens"])
}

func TestAuthController_Login_WrongPassword(t *testing.T) {
	router, authService, testDB := setupAuthControllerTest(t)

	member := createTestMember(t, testDB, "김민지")
	_, _, err := authService.RegisterMemberAccount("minji@example.com", "password123", "김민지", member.ID)
	require.NoError(t, err)

	reqBody := LoginRequest{
		Email:    "minji@example.com",
		Password: "wrongpassword",
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthController_GetMe_Success(t *testing.T) {
	router, authService, testDB := setupAuthControllerTest(t)

	member := createTestMember(t, testDB, "김민지")
	user, tokens, err := authService.RegisterMemberAccount("minji@example.com", "password123", "김민지", member.ID)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	userMap := response["user"].(map[string]interface{})
	assert.Equal(t, user.Email, userMap["email"])
	assert.Equal(t, user.Name, userMap["name"])
}

func TestAuthController_GetMe_Unauthorized(t *testing.T) {
	router, _, _ := setupAuthControllerTest(t)

	req := httptest.NewRequest("GET", "/me", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthController_RegisterMember_MissingFields(t *testing.T) {
	router, _, _ := setupAuthControllerTest(t)

	tests := []struct {
		name    string
		reqBody RegisterMemberRequest
	}{
		{
			name: "Missing email",
			reqBody: RegisterMemberRequest{
				Password: "password123",
				Name:     "김민지",
				MemberID: 1,
			},
		},
		{
			name: "Short password",
			reqBody: RegisterMemberRequest{
				Email:    "minji@example.com",
				Password: "123",
				Name:     "김민지",
				MemberID: 1,
			},
		},
		{
			name: "Missing member ID",
			reqBody: RegisterMemberRequest{
				Email:    "minji@example.com",
				Password: "password123",
				Name:     "김민지",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
