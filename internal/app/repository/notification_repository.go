package repository

import (
	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/pkg/logger"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *model.Notification) error
	FindRecent(limit int) ([]model.Notification, error)
	MarkRead(id uint, userID uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *model.Notification) error {
	logger.Debug("Creating notification in database", map[string]interface{}{
		"title":    notification.Title,
		"category": notification.Category,
	})

	if err := r.db.Create(notification).Error; err != nil {
		logger.Error("Failed to create notification in database", err, map[string]interface{}{
			"title": notification.Title,
		})
		return err
	}
	return nil
}

func (r *notificationRepository) FindRecent(limit int) ([]model.Notification, error) {
	var notifications []model.Notification
	if err := r.db.Order("created_at DESC").Limit(limit).
		Find(&notifications).Error; err != nil {
		logger.Error("Failed to find recent notifications in database", err, nil)
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) MarkRead(id uint, userID uint) error {
	var notification model.Notification
	if err := r.db.First(&notification, id).Error; err != nil {
		return err
	}

	for _, read := range notification.ReadBy {
		if read == int64(userID) {
			return nil
		}
	}

	notification.ReadBy = append(notification.ReadBy, int64(userID))
	if err := r.db.Save(&notification).Error; err != nil {
		logger.Error("Failed to mark notification as read in database", err, map[string]interface{}{
			"notification_id": id,
			"user_id":         userID,
		})
		return err
	}
	return nil
}
