package service

import (
	"errors"
	"time"

	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/internal/app/repository"
	"github.com/bemove/bemove-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrScheduleNotFound = errors.New("일정을 찾을 수 없습니다")

type ScheduleInput struct {
	TrainerID       uint
	MemberID        *uint
	MemberName      string
	Type            model.ScheduleType
	StartTime       time.Time
	DurationMinutes int
	Memo            string
}

type ScheduleService interface {
	CreateSchedule(input ScheduleInput) (*model.Schedule, error)
	GetSchedule(id uint) (*model.Schedule, error)
	SchedulesByTrainer(trainerID uint) ([]model.Schedule, error)
	SchedulesByTrainerForDay(trainerID uint, day time.Time) ([]model.Schedule, error)
	SchedulesByMember(memberID uint) ([]model.Schedule, error)
	CompleteSchedule(id uint) (*model.Schedule, error)
	DeleteSchedule(id uint) error
}

type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
	memberRepo   repository.MemberRepository
}

func NewScheduleService(scheduleRepo repository.ScheduleRepository, memberRepo repository.MemberRepository) ScheduleService {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		memberRepo:   memberRepo,
	}
}

func (s *scheduleService) CreateSchedule(input ScheduleInput) (*model.Schedule, error) {
	memberName := input.MemberName
	if input.MemberID != nil {
		member, err := s.memberRepo.FindByID(*input.MemberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrMemberNotFound
			}
			return nil, err
		}
		memberName = member.Name
	}

	if input.Type == "" {
		input.Type = model.SchedulePT
	}
	if input.DurationMinutes <= 0 {
		input.DurationMinutes = 50
	}

	schedule := &model.Schedule{
		TrainerID:       input.TrainerID,
		MemberID:        input.MemberID,
		MemberName:      memberName,
		Type:            input.Type,
		StartTime:       input.StartTime,
		DurationMinutes: input.DurationMinutes,
		Memo:            input.Memo,
	}
	if err := s.scheduleRepo.Create(schedule); err != nil {
		return nil, err
	}

	logger.Info("Schedule created", map[string]interface{}{
		"schedule_id": schedule.ID,
		"trainer_id":  input.TrainerID,
		"type":        schedule.Type,
	})
	return schedule, nil
}

func (s *scheduleService) GetSchedule(id uint) (*model.Schedule, error) {
	schedule, err := s.scheduleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return schedule, nil
}

func (s *scheduleService) SchedulesByTrainer(trainerID uint) ([]model.Schedule, error) {
	return s.scheduleRepo.FindByTrainerID(trainerID)
}

func (s *scheduleService) SchedulesByTrainerForDay(trainerID uint, day time.Time) ([]model.Schedule, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return s.scheduleRepo.FindByTrainerAndRange(trainerID, from, from.AddDate(0, 0, 1))
}

func (s *scheduleService) SchedulesByMember(memberID uint) ([]model.Schedule, error) {
	return s.scheduleRepo.FindByMemberID(memberID)
}

// CompleteSchedule PT 일정 완료 처리. 연결된 회원의 세션이 차감된다.
func (s *scheduleService) CompleteSchedule(id uint) (*model.Schedule, error) {
	schedule, err := s.scheduleRepo.CompleteWithSessionUse(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return schedule, nil
}

func (s *scheduleService) DeleteSchedule(id uint) error {
	if _, err := s.scheduleRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScheduleNotFound
		}
		return err
	}
	return s.scheduleRepo.Delete(id)
}
