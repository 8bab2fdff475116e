package repository

import (
	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/pkg/logger"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindByMemberID(memberID uint) (*model.User, error)
	FindAll() ([]model.User, error)
	FindStaff() ([]model.User, error)
	FindStaffByBranch(branchName string) ([]model.User, error)
	Update(user *model.User) error
	Delete(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	logger.Debug("Creating user in database", map[string]interface{}{
		"email": user.Email,
	})

	if err := r.db.Create(user).Error; err != nil {
		logger.Error("Failed to create user in database", err, map[string]interface{}{
			"email": user.Email,
		})
		return err
	}

	logger.Debug("User created in database", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return nil
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		logger.Error("Failed to find user by ID in database", err, map[string]interface{}{
			"user_id": id,
		})
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		logger.Error("Failed to find user by email in database", err, map[string]interface{}{
			"email": email,
		})
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByMemberID(memberID uint) (*model.User, error) {
	var user model.User
	if err := r.db.Where("member_id = ?", memberID).First(&user).Error; err != nil {
		logger.Error("Failed to find user by member ID in database", err, map[string]interface{}{
			"member_id": memberID,
		})
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll() ([]model.User, error) {
	var users []model.User
	if err := r.db.Order("name ASC").Find(&users).Error; err != nil {
		logger.Error("Failed to find all users in database", err, nil)
		return nil, err
	}
	return users, nil
}

// FindStaff 회원 계정을 제외한 직원 목록
func (r *userRepository) FindStaff() ([]model.User, error) {
	var users []model.User
	if err := r.db.Where("role IN ?", []model.UserRole{
		model.RoleAdmin, model.RoleManager, model.RoleTrainer,
	}).Order("name ASC").Find(&users).Error; err != nil {
		logger.Error("Failed to find staff in database", err, nil)
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindStaffByBranch(branchName string) ([]model.User, error) {
	var users []model.User
	if err := r.db.Where("branch_name = ? AND role IN ?", branchName, []model.UserRole{
		model.RoleAdmin, model.RoleManager, model.RoleTrainer,
	}).Order("name ASC").Find(&users).Error; err != nil {
		logger.Error("Failed to find staff by branch in database", err, map[string]interface{}{
			"branch_name": branchName,
		})
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(user *model.User) error {
	logger.Debug("Updating user in database", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})

	if err := r.db.Save(user).Error; err != nil {
		logger.Error("Failed to update user in database", err, map[string]interface{}{
			"user_id": user.ID,
			"email":   user.Email,
		})
		return err
	}
	return nil
}

func (r *userRepository) Delete(id uint) error {
	logger.Debug("Deleting user from database", map[string]interface{}{
		"user_id": id,
	})

	if err := r.db.Delete(&model.User{}, id).Error; err != nil {
		logger.Error("Failed to delete user from database", err, map[string]interface{}{
			"user_id": id,
		})
		return err
	}
	return nil
}
