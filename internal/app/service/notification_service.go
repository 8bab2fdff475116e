package service

import (
	"errors"

	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/internal/app/repository"
	"github.com/bemove/bemove-backend/internal/ws"
	"github.com/bemove/bemove-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("알림을 찾을 수 없습니다")

// NotificationService 직원 알림. 저장 후 접속 중인 세션에 웹소켓으로 밀어준다.
type NotificationService interface {
	Publish(title, body, category string) (*model.Notification, error)
	RecentNotifications(limit int) ([]model.Notification, error)
	MarkRead(id, userID uint) error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	hub              *ws.Hub
}

func NewNotificationService(notificationRepo repository.NotificationRepository, hub *ws.Hub) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		hub:              hub,
	}
}

func (s *notificationService) Publish(title, body, category string) (*model.Notification, error) {
	notification := &model.Notification{
		Title:    title,
		Body:     body,
		Category: category,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, err
	}

	// 전송 실패는 허용한다. 저장된 알림은 목록 조회로 복구된다.
	if s.hub != nil {
		_ = s.hub.Broadcast(map[string]interface{}{
			"type":     "notification",
			"id":       notification.ID,
			"title":    title,
			"body":     body,
			"category": category,
		})
	}

	logger.Info("Notification published", map[string]interface{}{
		"notification_id": notification.ID,
		"category":        category,
	})
	return notification, nil
}

func (s *notificationService) RecentNotifications(limit int) ([]model.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.notificationRepo.FindRecent(limit)
}

func (s *notificationService) MarkRead(id, userID uint) error {
	if err := s.notificationRepo.MarkRead(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}
