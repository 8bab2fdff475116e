package service

import (
	"errors"
	"strings"

	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/internal/app/repository"
	"github.com/bemove/bemove-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrBranchNameRequired = errors.New("지점명은 필수 항목입니다")
	ErrBranchExists       = errors.New("이미 존재하는 지점입니다")
)

type BranchService interface {
	CreateBranch(name string) (*model.Branch, error)
	GetBranch(id uint) (*model.Branch, error)
	ListBranches() ([]model.Branch, error)
	RenameBranch(id uint, newName string) (*model.Branch, error)
	DeleteBranch(id uint) error
}

type branchService struct {
	branchRepo repository.BranchRepository
}

func NewBranchService(branchRepo repository.BranchRepository) BranchService {
	return &branchService{branchRepo: branchRepo}
}

// CreateBranch 같은 이름의 지점이 이미 있으면 그 지점을 그대로 반환한다.
func (s *branchService) CreateBranch(name string) (*model.Branch, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrBranchNameRequired
	}

	existing, err := s.branchRepo.FindByName(name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	branch := &model.Branch{Name: name}
	if err := s.branchRepo.Create(branch); err != nil {
		return nil, err
	}

	logger.Info("Branch created", map[string]interface{}{
		"branch_id": branch.ID,
		"name":      name,
	})
	return branch, nil
}

func (s *branchService) GetBranch(id uint) (*model.Branch, error) {
	branch, err := s.branchRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}
	return branch, nil
}

func (s *branchService) ListBranches() ([]model.Branch, error) {
	return s.branchRepo.FindAll()
}

// RenameBranch 지점명 변경. 소속 직원과 목표 오버라이드의 지점명 참조가
// 한 트랜잭션에서 함께 갱신된다.
func (s *branchService) RenameBranch(id uint, newName string) (*model.Branch, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, ErrBranchNameRequired
	}

	if existing, err := s.branchRepo.FindByName(newName); err == nil && existing.ID != id {
		return nil, ErrBranchExists
	}

	branch, err := s.branchRepo.RenameCascade(id, newName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}

	logger.Info("Branch renamed", map[string]interface{}{
		"branch_id": id,
		"new_name":  newName,
	})
	return branch, nil
}

// DeleteBranch 지점 삭제. 소속 직원은 미배정 상태가 되고
// 해당 지점의 목표 오버라이드는 제거된다 (이후 기본 목표가 적용된다).
func (s *branchService) DeleteBranch(id uint) error {
	if err := s.branchRepo.DeleteCascade(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBranchNotFound
		}
		return err
	}

	logger.Info("Branch deleted", map[string]interface{}{
		"branch_id": id,
	})
	return nil
}
