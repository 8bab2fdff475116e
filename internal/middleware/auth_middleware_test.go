package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/pkg/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-jwt-secret-for-middleware"

func setupMiddlewareTest() (*gin.Engine, *AuthMiddleware) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	middleware := NewAuthMiddleware(testJWTSecret)
	return router, middleware
}

func generateTestToken(t *testing.T, userID uint, email string, role model.UserRole) string {
	tokens, err := util.GenerateTokenPair(
		userID,
		email,
		string(role),
		testJWTSecret,
		15*time.Minute,
		7*24*time.Hour,
	)
	require.NoError(t, err)
	return tokens.AccessToken
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	router, authMiddleware := setupMiddlewareTest()

	token := generateTestToken(t, 1, "trainer@bemove.kr", model.RoleTrainer)

	router.GET("/test", authMiddleware.Authenticate(), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		email, _ := GetUserEmail(c)
		role, _ := GetUserRole(c)

		c.JSON(http.StatusOK, gin.H{
			"user_id": userID,
			"email":   email,
			"role":    role,
		})
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "trainer@bemove.kr")
}

func TestAuthMiddleware_Authenticate_QueryToken(t *testing.T) {
	router, authMiddleware := setupMiddlewareTest()

	token := generateTestToken(t, 1, "trainer@bemove.kr", model.RoleTrainer)

	// WebSocket 업그레이드 요청은 쿼리 파라미터 토큰을 쓴다
	router.GET("/ws", authMiddleware.Authenticate(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "connected"})
	})

	req := httptest.NewRequest("GET", "/ws?token="+token, nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_Authenticate_NoToken(t *testing.T) {
	router, authMiddleware := setupMiddlewareTest()

	router.GET("/test", authMiddleware.Authenticate(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_Authenticate_InvalidFormat(t *testing.T) {
	router, authMiddleware := setupMiddlewareTest()

	router.GET("/test", authMiddleware.Authenticate(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	tests := []struct {
		name   string
		header string
	}{
		{
			name:   "Missing Bearer prefix",
			header: "invalid-token",
		},
		{
			name:   "Wrong prefix",
			header: "Basic token123",
		},
		{
			name:   "Empty token",
			header: "Bearer ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set("Authorization", tt.header)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	router, authMiddleware := setupMiddlewareTest()

	router.GET("/test", authMiddleware.Authenticate(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer invalid.jwt.token")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_Authenticate_RefreshTokenRejected(t *testing.T) {
	router, authMiddleware := setupMiddlewareTest()

	tokens, err := util.GenerateTokenPair(
		1, "trainer@bemove.kr", string(model.RoleTrainer),
		testJWTSecret, 15*time.Minute, 7*24*time.Hour,
	)
	require.NoError(t, err)

	router.GET("/test", authMiddleware.Authenticate(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	// 리프레시 토큰으로는 API에 접근할 수 없다
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.RefreshToken)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	router, authMiddleware := setupMiddlewareTest()

	router.GET("/admin",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(model.RoleAdmin, model.RoleManager),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "access granted"})
		},
	)

	tests := []struct {
		name           string
		role           model.UserRole
		expectedStatus int
	}{
		{
			name:           "Admin role",
			role:           model.RoleAdmin,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Manager role",
			role:           model.RoleManager,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Trainer role",
			role:           model.RoleTrainer,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Member role",
			role:           model.RoleMember,
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := generateTestToken(t, 1, "test@bemove.kr", tt.role)

			req := httptest.NewRequest("GET", "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestGetUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	userID, exists := GetUserID(c)
	assert.False(t, exists)
	assert.Equal(t, uint(0), userID)

	c.Set(UserIDKey, uint(123))
	userID, exists = GetUserID(c)
	assert.True(t, exists)
	assert.Equal(t, uint(123), userID)
}

func TestGetUserRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	role, exists := GetUserRole(c)
	assert.False(t, exists)
	assert.Empty(t, role)

	c.Set(UserRoleKey, model.RoleAdmin)
	role, exists = GetUserRole(c)
	assert.True(t, exists)
	assert.Equal(t, model.RoleAdmin, role)
}
