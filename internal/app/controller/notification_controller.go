package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bemove/bemove-backend/internal/app/service"
	apperrors "github.com/bemove/bemove-backend/internal/errors"
	"github.com/bemove/bemove-backend/internal/middleware"
	"github.com/bemove/bemove-backend/internal/ws"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type NotificationController struct {
	notificationService service.NotificationService
	hub                 *ws.Hub
	upgrader            websocket.Upgrader
}

func NewNotificationController(notificationService service.NotificationService, hub *ws.Hub) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
		hub:                 hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// CORS는 라우터 레벨에서 처리한다
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

type PublishNotificationRequest struct {
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
	Category string `json:"category"`
}

// PublishNotification stores a notice and pushes it to connected staff
// POST /api/v1/notifications
func (ctrl *NotificationController) PublishNotification(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req PublishNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	notification, err := ctrl.notificationService.Publish(req.Title, req.Body, req.Category)
	if err != nil {
		log.Error("Failed to publish notification", err, map[string]interface{}{
			"title": req.Title,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "publish notification")
		return
	}

	log.Info("Notification published", map[string]interface{}{
		"notification_id": notification.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Notification published",
		"notification": notification,
	})
}

// ListNotifications returns recent notifications
// GET /api/v1/notifications?limit=50
func (ctrl *NotificationController) ListNotifications(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			apperrors.BadRequest(c, apperrors.ValidationInvalidRange, "limit은 1 이상이어야 합니다")
			return
		}
		limit = parsed
	}

	notifications, err := ctrl.notificationService.RecentNotifications(limit)
	if err != nil {
		log.Error("Failed to list notifications", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list notifications")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"count":         len(notifications),
	})
}

// MarkNotificationRead marks a notification read for the caller
// PUT /api/v1/notifications/:id/read
func (ctrl *NotificationController) MarkNotificationRead(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "유효하지 않은 알림 ID입니다")
		return
	}

	if err := ctrl.notificationService.MarkRead(uint(id), userID); err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			apperrors.NotFound(c, apperrors.NotificationNotFound, "알림을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to mark notification read", err, map[string]interface{}{
			"notification_id": id,
			"user_id":         userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "mark notification read")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Notification marked as read",
	})
}

// HandleWebSocket upgrades the connection and streams notifications
// GET /api/v1/notifications/ws?token=...
func (ctrl *NotificationController) HandleWebSocket(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}
	role, _ := middleware.GetUserRole(c)

	conn, err := ctrl.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WebSocket upgrade failed", err, map[string]interface{}{
			"user_id": userID,
		})
		return
	}

	client := &ws.Client{
		Hub:    ctrl.hub,
		Conn:   &ws.Conn{Conn: conn},
		UserID: userID,
		Role:   string(role),
		Send:   make(chan []byte, 64),
	}
	ctrl.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()

	log.Info("Notification stream connected", map[string]interface{}{
		"user_id": userID,
		"role":    role,
	})
}
