package repository

import (
	"time"

	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/pkg/logger"
	"gorm.io/gorm"
)

type ScheduleRepository interface {
	Create(schedule *model.Schedule) error
	FindByID(id uint) (*model.Schedule, error)
	FindByTrainerID(trainerID uint) ([]model.Schedule, error)
	FindByMemberID(memberID uint) ([]model.Schedule, error)
	FindByTrainerAndRange(trainerID uint, from, to time.Time) ([]model.Schedule, error)
	Update(schedule *model.Schedule) error
	CompleteWithSessionUse(id uint) (*model.Schedule, error)
	Delete(id uint) error
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(schedule *model.Schedule) error {
	logger.Debug("Creating schedule in database", map[string]interface{}{
		"trainer_id": schedule.TrainerID,
		"start_time": schedule.StartTime,
	})

	if err := r.db.Create(schedule).Error; err != nil {
		logger.Error("Failed to create schedule in database", err, map[string]interface{}{
			"trainer_id": schedule.TrainerID,
		})
		return err
	}
	return nil
}

func (r *scheduleRepository) FindByID(id uint) (*model.Schedule, error) {
	var schedule model.Schedule
	if err := r.db.First(&schedule, id).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) FindByTrainerID(trainerID uint) ([]model.Schedule, error) {
	var schedules []model.Schedule
	if err := r.db.Where("trainer_id = ?", trainerID).
		Order("start_time ASC").Find(&schedules).Error; err != nil {
		logger.Error("Failed to find schedules by trainer ID in database", err, map[string]interface{}{
			"trainer_id": trainerID,
		})
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) FindByMemberID(memberID uint) ([]model.Schedule, error) {
	var schedules []model.Schedule
	if err := r.db.Where("member_id = ?", memberID).
		Order("start_time ASC").Find(&schedules).Error; err != nil {
		logger.Error("Failed to find schedules by member ID in database", err, map[string]interface{}{
			"member_id": memberID,
		})
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) FindByTrainerAndRange(trainerID uint, from, to time.Time) ([]model.Schedule, error) {
	var schedules []model.Schedule
	if err := r.db.Where("trainer_id = ? AND start_time >= ? AND start_time < ?", trainerID, from, to).
		Order("start_time ASC").Find(&schedules).Error; err != nil {
		logger.Error("Failed to find schedules by trainer and range in database", err, map[string]interface{}{
			"trainer_id": trainerID,
		})
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) Update(schedule *model.Schedule) error {
	if err := r.db.Save(schedule).Error; err != nil {
		logger.Error("Failed to update schedule in database", err, map[string]interface{}{
			"schedule_id": schedule.ID,
		})
		return err
	}
	return nil
}

// CompleteWithSessionUse 일정 완료 처리와 회원 세션 차감을 한 트랜잭션으로 묶는다.
// 이미 완료된 일정은 그대로 반환한다.
func (r *scheduleRepository) CompleteWithSessionUse(id uint) (*model.Schedule, error) {
	var schedule model.Schedule
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&schedule, id).Error; err != nil {
			return err
		}
		if schedule.Completed {
			return nil
		}

		schedule.Completed = true
		if err := tx.Save(&schedule).Error; err != nil {
			return err
		}

		if schedule.MemberID != nil && schedule.Type == model.SchedulePT {
			if err := tx.Model(&model.Member{}).Where("id = ?", *schedule.MemberID).
				Updates(map[string]interface{}{
					"used_sessions":         gorm.Expr("used_sessions + 1"),
					"monthly_session_count": gorm.Expr("monthly_session_count + 1"),
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to complete schedule in database", err, map[string]interface{}{
			"schedule_id": id,
		})
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Schedule{}, id).Error; err != nil {
		logger.Error("Failed to delete schedule from database", err, map[string]interface{}{
			"schedule_id": id,
		})
		return err
	}
	return nil
}
