package middleware

import (
	"net/http"
	"strings"

	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/internal/errors"
	"github.com/bemove/bemove-backend/pkg/redis"
	"github.com/bemove/bemove-backend/pkg/util"
	"github.com/gin-gonic/gin"
)

// Context keys for user information
const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
	UserRoleKey  = "user_role"
)

type AuthMiddleware struct {
	jwtSecret string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret: jwtSecret,
	}
}

// Authenticate validates JWT token (required)
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Warn("Invalid authorization header format", map[string]interface{}{
					"path": c.Request.URL.Path,
				})
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "인증 형식이 올바르지 않습니다")
				c.Abort()
				return
			}
			token = parts[1]
		} else {
			// WebSocket 연결은 헤더를 못 쓰므로 쿼리 파라미터를 허용한다
			token = c.Query("token")
			if token == "" {
				log.Warn("Missing authorization header", map[string]interface{}{
					"path": c.Request.URL.Path,
				})
				errors.Unauthorized(c, "로그인이 필요합니다")
				c.Abort()
				return
			}
		}

		// 로그아웃으로 무효화된 토큰 차단
		if blacklisted, err := redis.IsTokenBlacklisted(c.Request.Context(), token); err == nil && blacklisted {
			log.Warn("Blacklisted token rejected", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "로그아웃된 토큰입니다")
			c.Abort()
			return
		}

		claims, err := util.ValidateToken(token, m.jwtSecret)
		if err != nil {
			log.Warn("Token validation failed", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})

			if err == util.ErrExpiredToken {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenExpired, "로그인이 만료되었습니다")
			} else {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "유효하지 않은 인증 토큰입니다")
			}
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "액세스 토큰이 아닙니다")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Set(UserRoleKey, model.UserRole(claims.Role))
		c.Set("token", token)

		log.Debug("User authenticated successfully", map[string]interface{}{
			"user_id": claims.UserID,
			"email":   claims.Email,
			"role":    claims.Role,
		})

		c.Next()
	}
}

// RequireRole checks if user has one of the required roles
func (m *AuthMiddleware) RequireRole(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		userRole, exists := c.Get(UserRoleKey)
		if !exists {
			log.Warn("Role information not found in context", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.RespondWithError(c, http.StatusForbidden, errors.AuthzRoleNotFound, "권한 정보를 찾을 수 없습니다")
			c.Abort()
			return
		}

		role := userRole.(model.UserRole)
		userID, _ := GetUserID(c)

		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}

		log.Warn("Insufficient permissions", map[string]interface{}{
			"user_id":        userID,
			"user_role":      role,
			"required_roles": roles,
			"path":           c.Request.URL.Path,
		})
		errors.Forbidden(c, "접근 권한이 없습니다")
		c.Abort()
	}
}

// GetUserID extracts user ID from context
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	return userID.(uint), true
}

// GetUserEmail extracts user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(UserEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}

// GetUserRole extracts user role from context
func GetUserRole(c *gin.Context) (model.UserRole, bool) {
	role, exists := c.Get(UserRoleKey)
	if !exists {
		return "", false
	}
	return role.(model.UserRole), true
}

// GetToken extracts the raw bearer token from context
func GetToken(c *gin.Context) (string, bool) {
	token, exists := c.Get("token")
	if !exists {
		return "", false
	}
	return token.(string), true
}
