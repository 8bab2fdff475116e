package repository

import (
	"errors"

	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/pkg/logger"
	"gorm.io/gorm"
)

type TargetRepository interface {
	Upsert(branchName, position string, amount int64) (*model.TargetOverride, error)
	FindByBranchAndPosition(branchName, position string) (*model.TargetOverride, error)
	FindByBranch(branchName string) ([]model.TargetOverride, error)
	FindAll() ([]model.TargetOverride, error)
	DeleteByBranchAndPosition(branchName, position string) error
}

type targetRepository struct {
	db *gorm.DB
}

func NewTargetRepository(db *gorm.DB) TargetRepository {
	return &targetRepository{db: db}
}

func (r *targetRepository) Upsert(branchName, position string, amount int64) (*model.TargetOverride, error) {
	logger.Debug("Upserting target override in database", map[string]interface{}{
		"branch_name": branchName,
		"position":    position,
		"amount":      amount,
	})

	var override model.TargetOverride
	err := r.db.Where("branch_name = ? AND position = ?", branchName, position).
		First(&override).Error
	switch {
	case err == nil:
		override.Amount = amount
		if err := r.db.Save(&override).Error; err != nil {
			logger.Error("Failed to update target override in database", err, map[string]interface{}{
				"branch_name": branchName,
				"position":    position,
			})
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		override = model.TargetOverride{
			BranchName: branchName,
			Position:   position,
			Amount:     amount,
		}
		if err := r.db.Create(&override).Error; err != nil {
			logger.Error("Failed to create target override in database", err, map[string]interface{}{
				"branch_name": branchName,
				"position":    position,
			})
			return nil, err
		}
	default:
		logger.Error("Failed to look up target override in database", err, map[string]interface{}{
			"branch_name": branchName,
			"position":    position,
		})
		return nil, err
	}

	return &override, nil
}

func (r *targetRepository) FindByBranchAndPosition(branchName, position string) (*model.TargetOverride, error) {
	var override model.TargetOverride
	if err := r.db.Where("branch_name = ? AND position = ?", branchName, position).
		First(&override).Error; err != nil {
		return nil, err
	}
	return &override, nil
}

func (r *targetRepository) FindByBranch(branchName string) ([]model.TargetOverride, error) {
	var overrides []model.TargetOverride
	if err := r.db.Where("branch_name = ?", branchName).Find(&overrides).Error; err != nil {
		logger.Error("Failed to find target overrides by branch in database", err, map[string]interface{}{
			"branch_name": branchName,
		})
		return nil, err
	}
	return overrides, nil
}

func (r *targetRepository) FindAll() ([]model.TargetOverride, error) {
	var overrides []model.TargetOverride
	if err := r.db.Find(&overrides).Error; err != nil {
		logger.Error("Failed to find all target overrides in database", err, nil)
		return nil, err
	}
	return overrides, nil
}

func (r *targetRepository) DeleteByBranchAndPosition(branchName, position string) error {
	logger.Debug("Deleting target override from database", map[string]interface{}{
		"branch_name": branchName,
		"position":    position,
	})

	if err := r.db.Where("branch_name = ? AND position = ?", branchName, position).
		Delete(&model.TargetOverride{}).Error; err != nil {
		logger.Error("Failed to delete target override from database", err, map[string]interface{}{
			"branch_name": branchName,
			"position":    position,
		})
		return err
	}
	return nil
}
