package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/bemove/bemove-backend/internal/app/service"
	apperrors "github.com/bemove/bemove-backend/internal/errors"
	"github.com/bemove/bemove-backend/internal/middleware"
	"github.com/bemove/bemove-backend/pkg/redis"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService   service.AuthService
	refreshExpiry time.Duration
}

func NewAuthController(authService service.AuthService, refreshExpiry time.Duration) *AuthController {
	return &AuthController{
		authService:   authService,
		refreshExpiry: refreshExpiry,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterMemberRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	MemberID uint   `json:"member_id" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// Login handles user login
// POST /api/v1/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid login request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	user, tokens, err := ctrl.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Warn("Login failed: invalid credentials", map[string]interface{}{
				"email": req.Email,
			})
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "이메일 또는 비밀번호가 올바르지 않습니다")
			return
		}
		log.Error("Login failed", err, map[string]interface{}{
			"email": req.Email,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "login")
		return
	}

	log.Info("Login successful", map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user": gin.H{
			"id":          user.ID,
			"email":       user.Email,
			"name":        user.Name,
			"role":        user.Role,
			"position":    user.Position,
			"branch_name": user.BranchName,
			"member_id":   user.MemberID,
		},
		"tokens": tokens,
	})
}

// RegisterMember handles member self-service account registration
// POST /api/v1/auth/register
func (ctrl *AuthController) RegisterMember(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RegisterMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid member registration request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	user, tokens, err := ctrl.authService.RegisterMemberAccount(req.Email, req.Password, req.Name, req.MemberID)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			apperrors.Conflict(c, apperrors.AuthEmailAlreadyExists, "이미 사용 중인 이메일입니다")
			return
		}
		if errors.Is(err, service.ErrMemberNotFound) {
			apperrors.NotFound(c, apperrors.MemberNotFound, "연결할 회원을 찾을 수 없습니다")
			return
		}
		log.Error("Member registration failed", err, map[string]interface{}{
			"email":     req.Email,
			"member_id": req.MemberID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "register member account")
		return
	}

	log.Info("Member account registered", map[string]interface{}{
		"user_id":   user.ID,
		"member_id": req.MemberID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Member account registered successfully",
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"name":      user.Name,
			"role":      user.Role,
			"member_id": user.MemberID,
		},
		"tokens": tokens,
	})
}

// RefreshToken handles token refresh
// POST /api/v1/auth/refresh
func (ctrl *AuthController) RefreshToken(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	tokens, err := ctrl.authService.Refresh(req.RefreshToken)
	if err != nil {
		log.Warn("Token refresh failed", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthTokenInvalid, "유효하지 않은 리프레시 토큰입니다. 다시 로그인해주세요")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token refreshed successfully",
		"tokens":  tokens,
	})
}

// Logout revokes the refresh token
// POST /api/v1/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	// 리프레시 토큰을 블랙리스트에 올린다. 실패해도 로그아웃 자체는 성공 처리한다
	if err := redis.BlacklistToken(c.Request.Context(), req.RefreshToken, ctrl.refreshExpiry); err != nil {
		log.Error("Failed to blacklist refresh token", err, nil)
	}
	if token, ok := middleware.GetToken(c); ok {
		if err := redis.BlacklistToken(c.Request.Context(), token, ctrl.refreshExpiry); err != nil {
			log.Error("Failed to blacklist access token", err, nil)
		}
	}

	if userID, exists := middleware.GetUserID(c); exists {
		log.Info("User logged out", map[string]interface{}{
			"user_id": userID,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetMe returns current user information
// GET /api/v1/auth/me
func (ctrl *AuthController) GetMe(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	user, err := ctrl.authService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "사용자를 찾을 수 없습니다")
			return
		}
		log.Error("Failed to get user information", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":          user.ID,
			"email":       user.Email,
			"name":        user.Name,
			"role":        user.Role,
			"position":    user.Position,
			"branch_name": user.BranchName,
			"member_id":   user.MemberID,
		},
	})
}

// ChangePassword updates the current user's password
// PUT /api/v1/auth/me/password
func (ctrl *AuthController) ChangePassword(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	if err := ctrl.authService.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "현재 비밀번호가 올바르지 않습니다")
			return
		}
		log.Error("Failed to change password", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "change password")
		return
	}

	log.Info("Password changed", map[string]interface{}{
		"user_id": userID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Password changed successfully",
	})
}
