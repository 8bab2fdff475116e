package service

import (
	"errors"

	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/internal/app/repository"
	"github.com/bemove/bemove-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrInvalidTargetAmount = errors.New("목표 금액은 0 이상이어야 합니다")
	ErrInvalidPosition     = errors.New("잘못된 직책입니다")
	ErrBranchNotFound      = errors.New("지점을 찾을 수 없습니다")
)

// TargetService (지점, 직책) 기준 월 매출 목표 결정.
// 우선순위: 지점장 0 > 지점별 오버라이드 > 직책 기본값 > 0
type TargetService interface {
	ResolveTarget(branchName, position string) (int64, error)
	ResolveForUser(user *model.User) (int64, error)
	SetTarget(branchName, position string, amount int64) (*model.TargetOverride, error)
	RemoveTarget(branchName, position string) error
	BranchTargets(branchName string) (map[string]int64, error)
}

type targetService struct {
	targetRepo repository.TargetRepository
	branchRepo repository.BranchRepository
}

func NewTargetService(targetRepo repository.TargetRepository, branchRepo repository.BranchRepository) TargetService {
	return &targetService{
		targetRepo: targetRepo,
		branchRepo: branchRepo,
	}
}

func (s *targetService) ResolveTarget(branchName, position string) (int64, error) {
	// 소속/직책이 없으면 집계 대상이 아니다
	if branchName == "" || position == "" {
		return 0, nil
	}

	// 지점장은 개인 목표를 갖지 않는다 (오버라이드보다 우선)
	if position == model.PositionBranchManager {
		return 0, nil
	}

	override, err := s.targetRepo.FindByBranchAndPosition(branchName, position)
	if err == nil {
		return override.Amount, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to resolve target override", err, map[string]interface{}{
			"branch_name": branchName,
			"position":    position,
		})
		return 0, err
	}

	if amount, ok := model.DefaultTargets[position]; ok {
		return amount, nil
	}
	return 0, nil
}

func (s *targetService) ResolveForUser(user *model.User) (int64, error) {
	if user == nil || !user.IsStaff() {
		return 0, nil
	}
	return s.ResolveTarget(user.BranchName, user.Position)
}

func (s *targetService) SetTarget(branchName, position string, amount int64) (*model.TargetOverride, error) {
	if amount < 0 {
		return nil, ErrInvalidTargetAmount
	}
	if !isValidPosition(position) {
		return nil, ErrInvalidPosition
	}

	if _, err := s.branchRepo.FindByName(branchName); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}

	override, err := s.targetRepo.Upsert(branchName, position, amount)
	if err != nil {
		return nil, err
	}

	logger.Info("Target override set", map[string]interface{}{
		"branch_name": branchName,
		"position":    position,
		"amount":      amount,
	})
	return override, nil
}

func (s *targetService) RemoveTarget(branchName, position string) error {
	return s.targetRepo.DeleteByBranchAndPosition(branchName, position)
}

// BranchTargets 지점의 직책별 최종 목표 (오버라이드 반영)
func (s *targetService) BranchTargets(branchName string) (map[string]int64, error) {
	if _, err := s.branchRepo.FindByName(branchName); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}

	targets := make(map[string]int64, len(model.Positions))
	for _, position := range model.Positions {
		amount, err := s.ResolveTarget(branchName, position)
		if err != nil {
			return nil, err
		}
		targets[position] = amount
	}
	return targets, nil
}

func isValidPosition(position string) bool {
	for _, p := range model.Positions {
		if p == position {
			return true
		}
	}
	return false
}
