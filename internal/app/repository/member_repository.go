package repository

import (
	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/pkg/logger"
	"gorm.io/gorm"
)

type MemberRepository interface {
	Create(member *model.Member) error
	FindByID(id uint) (*model.Member, error)
	FindAll() ([]model.Member, error)
	FindByTrainerID(trainerID uint) ([]model.Member, error)
	FindAssignedOrUnassigned(trainerID uint) ([]model.Member, error)
	Update(member *model.Member) error
	Delete(id uint) error
	BulkCreate(members []model.Member, batchSize int) error
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(member *model.Member) error {
	logger.Debug("Creating member in database", map[string]interface{}{
		"name": member.Name,
	})

	if err := r.db.Create(member).Error; err != nil {
		logger.Error("Failed to create member in database", err, map[string]interface{}{
			"name": member.Name,
		})
		return err
	}

	logger.Debug("Member created in database", map[string]interface{}{
		"member_id": member.ID,
		"name":      member.Name,
	})
	return nil
}

func (r *memberRepository) FindByID(id uint) (*model.Member, error) {
	var member model.Member
	if err := r.db.First(&member, id).Error; err != nil {
		logger.Error("Failed to find member by ID in database", err, map[string]interface{}{
			"member_id": id,
		})
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindAll() ([]model.Member, error) {
	var members []model.Member
	if err := r.db.Order("name ASC").Find(&members).Error; err != nil {
		logger.Error("Failed to find all members in database", err, nil)
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) FindByTrainerID(trainerID uint) ([]model.Member, error) {
	var members []model.Member
	if err := r.db.Where("trainer_id = ?", trainerID).
		Order("name ASC").Find(&members).Error; err != nil {
		logger.Error("Failed to find members by trainer ID in database", err, map[string]interface{}{
			"trainer_id": trainerID,
		})
		return nil, err
	}
	return members, nil
}

// FindAssignedOrUnassigned 트레이너 화면 범위: 본인 담당 회원 + 미배정 회원
func (r *memberRepository) FindAssignedOrUnassigned(trainerID uint) ([]model.Member, error) {
	var members []model.Member
	if err := r.db.Where("trainer_id = ? OR trainer_id IS NULL", trainerID).
		Order("name ASC").Find(&members).Error; err != nil {
		logger.Error("Failed to find members for trainer scope in database", err, map[string]interface{}{
			"trainer_id": trainerID,
		})
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) Update(member *model.Member) error {
	logger.Debug("Updating member in database", map[string]interface{}{
		"member_id": member.ID,
	})

	if err := r.db.Save(member).Error; err != nil {
		logger.Error("Failed to update member in database", err, map[string]interface{}{
			"member_id": member.ID,
		})
		return err
	}
	return nil
}

func (r *memberRepository) BulkCreate(members []model.Member, batchSize int) error {
	logger.Info("Bulk creating members in database", map[string]interface{}{
		"count":      len(members),
		"batch_size": batchSize,
	})

	if err := r.db.CreateInBatches(members, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create members in database", err, map[string]interface{}{
			"count": len(members),
		})
		return err
	}
	return nil
}

func (r *memberRepository) Delete(id uint) error {
	logger.Debug("Deleting member from database", map[string]interface{}{
		"member_id": id,
	})

	if err := r.db.Delete(&model.Member{}, id).Error; err != nil {
		logger.Error("Failed to delete member from database", err, map[string]interface{}{
			"member_id": id,
		})
		return err
	}
	return nil
}
