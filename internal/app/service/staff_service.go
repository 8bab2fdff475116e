package service

import (
	"errors"

	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/internal/app/repository"
	"github.com/bemove/bemove-backend/pkg/logger"
	"github.com/bemove/bemove-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrStaffNotFound     = errors.New("직원을 찾을 수 없습니다")
	ErrInvalidStaffRole  = errors.New("잘못된 권한입니다")
	ErrUnknownBranchName = errors.New("지점을 찾을 수 없습니다")
)

// StaffUpdateInput 직원 정보 수정 입력. nil 필드는 변경하지 않는다.
type StaffUpdateInput struct {
	Name       *string
	Position   *string
	BranchName *string
	Role       *model.UserRole
}

type StaffService interface {
	CreateStaff(email, password, name, position, branchName string, role model.UserRole) (*model.User, error)
	GetStaff(id uint) (*model.User, error)
	ListStaff() ([]model.User, error)
	ListStaffByBranch(branchName string) ([]model.User, error)
	UpdateStaff(id uint, input StaffUpdateInput) (*model.User, error)
	DeleteStaff(id uint) error
}

type staffService struct {
	userRepo   repository.UserRepository
	branchRepo repository.BranchRepository
}

func NewStaffService(userRepo repository.UserRepository, branchRepo repository.BranchRepository) StaffService {
	return &staffService{
		userRepo:   userRepo,
		branchRepo: branchRepo,
	}
}

func (s *staffService) CreateStaff(email, password, name, position, branchName string, role model.UserRole) (*model.User, error) {
	if role != model.RoleAdmin && role != model.RoleManager && role != model.RoleTrainer {
		return nil, ErrInvalidStaffRole
	}
	if position != "" && !isValidPosition(position) {
		return nil, ErrInvalidPosition
	}
	if branchName != "" {
		if _, err := s.branchRepo.FindByName(branchName); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUnknownBranchName
			}
			return nil, err
		}
	}

	hashedPassword, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	// 지점장 직책은 지점장 권한을 수반한다
	if position == model.PositionBranchManager {
		role = model.RoleManager
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hashedPassword,
		Name:         name,
		Role:         role,
		Position:     position,
		BranchName:   branchName,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	logger.Info("Staff created", map[string]interface{}{
		"user_id":     user.ID,
		"email":       email,
		"role":        role,
		"branch_name": branchName,
	})
	return user, nil
}

func (s *staffService) GetStaff(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *staffService) ListStaff() ([]model.User, error) {
	return s.userRepo.FindStaff()
}

func (s *staffService) ListStaffByBranch(branchName string) ([]model.User, error) {
	return s.userRepo.FindStaffByBranch(branchName)
}

func (s *staffService) UpdateStaff(id uint, input StaffUpdateInput) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Position != nil {
		if *input.Position != "" && !isValidPosition(*input.Position) {
			return nil, ErrInvalidPosition
		}
		user.Position = *input.Position
	}
	if input.BranchName != nil {
		if *input.BranchName != "" {
			if _, err := s.branchRepo.FindByName(*input.BranchName); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrUnknownBranchName
				}
				return nil, err
			}
		}
		user.BranchName = *input.BranchName
	}
	if input.Role != nil {
		user.Role = *input.Role
	}

	// 지점장 직책으로 바꾸면 권한도 지점장으로 강제된다
	if user.Position == model.PositionBranchManager {
		user.Role = model.RoleManager
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	logger.Info("Staff updated", map[string]interface{}{
		"user_id":     user.ID,
		"position":    user.Position,
		"branch_name": user.BranchName,
		"role":        user.Role,
	})
	return user, nil
}

func (s *staffService) DeleteStaff(id uint) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStaffNotFound
		}
		return err
	}
	return s.userRepo.Delete(id)
}
