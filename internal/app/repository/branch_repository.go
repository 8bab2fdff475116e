package repository

import (
	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/pkg/logger"
	"gorm.io/gorm"
)

type BranchRepository interface {
	Create(branch *model.Branch) error
	FindByID(id uint) (*model.Branch, error)
	FindByName(name string) (*model.Branch, error)
	FindAll() ([]model.Branch, error)
	RenameCascade(id uint, newName string) (*model.Branch, error)
	DeleteCascade(id uint) error
}

type branchRepository struct {
	db *gorm.DB
}

func NewBranchRepository(db *gorm.DB) BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) Create(branch *model.Branch) error {
	logger.Debug("Creating branch in database", map[string]interface{}{
		"name": branch.Name,
	})

	if err := r.db.Create(branch).Error; err != nil {
		logger.Error("Failed to create branch in database", err, map[string]interface{}{
			"name": branch.Name,
		})
		return err
	}
	return nil
}

func (r *branchRepository) FindByID(id uint) (*model.Branch, error) {
	var branch model.Branch
	if err := r.db.First(&branch, id).Error; err != nil {
		logger.Error("Failed to find branch by ID in database", err, map[string]interface{}{
			"branch_id": id,
		})
		return nil, err
	}
	return &branch, nil
}

func (r *branchRepository) FindByName(name string) (*model.Branch, error) {
	var branch model.Branch
	if err := r.db.Where("name = ?", name).First(&branch).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *branchRepository) FindAll() ([]model.Branch, error) {
	var branches []model.Branch
	if err := r.db.Order("name ASC").Find(&branches).Error; err != nil {
		logger.Error("Failed to find all branches in database", err, nil)
		return nil, err
	}
	return branches, nil
}

// RenameCascade 지점명을 변경하고 이름으로 참조하는 직원/목표 오버라이드를
// 한 트랜잭션에서 새 이름으로 옮긴다. 새 이름에 이미 오버라이드가 있으면
// 기존 지점의 값으로 덮어쓴다.
func (r *branchRepository) RenameCascade(id uint, newName string) (*model.Branch, error) {
	logger.Debug("Renaming branch in database", map[string]interface{}{
		"branch_id": id,
		"new_name":  newName,
	})

	var branch model.Branch
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&branch, id).Error; err != nil {
			return err
		}
		oldName := branch.Name

		if err := tx.Model(&branch).Update("name", newName).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.User{}).
			Where("branch_name = ?", oldName).
			Update("branch_name", newName).Error; err != nil {
			return err
		}

		var overrides []model.TargetOverride
		if err := tx.Where("branch_name = ?", oldName).Find(&overrides).Error; err != nil {
			return err
		}
		for _, o := range overrides {
			// 충돌 시 이동하는 쪽이 이긴다
			if err := tx.Where("branch_name = ? AND position = ?", newName, o.Position).
				Delete(&model.TargetOverride{}).Error; err != nil {
				return err
			}
			if err := tx.Model(&model.TargetOverride{}).Where("id = ?", o.ID).
				Update("branch_name", newName).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to rename branch in database", err, map[string]interface{}{
			"branch_id": id,
			"new_name":  newName,
		})
		return nil, err
	}

	branch.Name = newName
	return &branch, nil
}

// DeleteCascade 지점을 삭제하고 소속 직원을 미배정으로 돌리며
// 해당 지점의 목표 오버라이드를 모두 제거한다.
func (r *branchRepository) DeleteCascade(id uint) error {
	logger.Debug("Deleting branch from database", map[string]interface{}{
		"branch_id": id,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var branch model.Branch
		if err := tx.First(&branch, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.User{}).
			Where("branch_name = ?", branch.Name).
			Update("branch_name", "").Error; err != nil {
			return err
		}

		if err := tx.Where("branch_name = ?", branch.Name).
			Delete(&model.TargetOverride{}).Error; err != nil {
			return err
		}

		return tx.Delete(&branch).Error
	})
	if err != nil {
		logger.Error("Failed to delete branch from database", err, map[string]interface{}{
			"branch_id": id,
		})
		return err
	}
	return nil
}
