package service

import (
	"errors"
	"time"

	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/internal/app/repository"
	"github.com/bemove/bemove-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrInvalidEntryDate = errors.New("날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)")
	ErrEntryNotFound    = errors.New("기록을 찾을 수 없습니다")
)

type DietEntryInput struct {
	MemberID    uint
	Date        string
	MealType    string
	ImageURL    string
	Description string // 식사 내용 (분석 입력)
}

type WorkoutEntryInput struct {
	MemberID        uint
	Date            string
	ActivityName    string
	DurationMinutes int
	ConditionScore  int
	SleepHours      float64
	PainLevel       int
	Memo            string
}

type BodyEntryInput struct {
	MemberID          uint
	Date              string
	SheetImageURL     string
	SheetText         string // 결과지 텍스트 (추출 입력, 직접 입력 시 빈 값)
	Weight            float64
	SkeletalMuscle    float64
	BodyFatPercentage float64
	Score             float64
}

// EntryService 회원 활동 기록. 영양/칼로리/체성분 추정은 분석 서비스에 위임하며
// 분석 실패가 기록 자체를 막지 않는다.
type EntryService interface {
	AddDietEntry(input DietEntryInput) (*model.DietEntry, error)
	DietEntryByID(id uint) (*model.DietEntry, error)
	DietEntries(memberID uint) ([]model.DietEntry, error)
	DietEntriesByDate(memberID uint, date string) ([]model.DietEntry, error)
	SetDietFeedback(id uint, feedback string) (*model.DietEntry, error)
	DeleteDietEntry(id uint) error

	AddWorkoutEntry(input WorkoutEntryInput) (*model.WorkoutEntry, error)
	WorkoutEntryByID(id uint) (*model.WorkoutEntry, error)
	WorkoutEntries(memberID uint) ([]model.WorkoutEntry, error)
	SetWorkoutFeedback(id uint, feedback, nextGoal string) (*model.WorkoutEntry, error)
	DeleteWorkoutEntry(id uint) error

	AddBodyEntry(input BodyEntryInput) (*model.BodyEntry, error)
	BodyEntries(memberID uint) ([]model.BodyEntry, error)
	UpdateBodyEntry(entry *model.BodyEntry) (*model.BodyEntry, error)
	DeleteBodyEntry(id uint) error
}

type entryService struct {
	entryRepo  repository.EntryRepository
	memberRepo repository.MemberRepository
	estimates  EstimateService
}

func NewEntryService(
	entryRepo repository.EntryRepository,
	memberRepo repository.MemberRepository,
	estimates EstimateService,
) EntryService {
	return &entryService{
		entryRepo:  entryRepo,
		memberRepo: memberRepo,
		estimates:  estimates,
	}
}

func (s *entryService) AddDietEntry(input DietEntryInput) (*model.DietEntry, error) {
	if !isValidEntryDate(input.Date) {
		return nil, ErrInvalidEntryDate
	}
	if err := s.ensureMember(input.MemberID); err != nil {
		return nil, err
	}

	analysis := s.estimates.AnalyzeMeal(input.Description)

	entry := &model.DietEntry{
		MemberID:    input.MemberID,
		Date:        input.Date,
		MealType:    input.MealType,
		ImageURL:    input.ImageURL,
		Description: analysis.Description,
		Calories:    analysis.Calories,
		Carbs:       analysis.Carbs,
		Protein:     analysis.Protein,
		Fat:         analysis.Fat,
	}
	if err := s.entryRepo.CreateDiet(entry); err != nil {
		return nil, err
	}

	logger.Info("Diet entry added", map[string]interface{}{
		"entry_id":  entry.ID,
		"member_id": input.MemberID,
		"calories":  entry.Calories,
	})
	return entry, nil
}

func (s *entryService) DietEntryByID(id uint) (*model.DietEntry, error) {
	entry, err := s.entryRepo.FindDietByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (s *entryService) DietEntries(memberID uint) ([]model.DietEntry, error) {
	return s.entryRepo.FindDietByMember(memberID)
}

func (s *entryService) DietEntriesByDate(memberID uint, date string) ([]model.DietEntry, error) {
	if !isValidEntryDate(date) {
		return nil, ErrInvalidEntryDate
	}
	return s.entryRepo.FindDietByMemberAndDate(memberID, date)
}

// SetDietFeedback 담당 트레이너가 식단에 코멘트를 남긴다.
func (s *entryService) SetDietFeedback(id uint, feedback string) (*model.DietEntry, error) {
	entry, err := s.entryRepo.FindDietByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	entry.TrainerFeedback = feedback
	if err := s.entryRepo.UpdateDiet(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *entryService) DeleteDietEntry(id uint) error {
	return s.entryRepo.DeleteDiet(id)
}

func (s *entryService) AddWorkoutEntry(input WorkoutEntryInput) (*model.WorkoutEntry, error) {
	if !isValidEntryDate(input.Date) {
		return nil, ErrInvalidEntryDate
	}
	if err := s.ensureMember(input.MemberID); err != nil {
		return nil, err
	}

	calories := s.estimates.EstimateWorkoutCalories(input.ActivityName, input.DurationMinutes)

	entry := &model.WorkoutEntry{
		MemberID:        input.MemberID,
		Date:            input.Date,
		ActivityName:    input.ActivityName,
		DurationMinutes: input.DurationMinutes,
		CaloriesBurned:  calories,
		ConditionScore:  input.ConditionScore,
		SleepHours:      input.SleepHours,
		PainLevel:       input.PainLevel,
		Memo:            input.Memo,
	}
	if err := s.entryRepo.CreateWorkout(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *entryService) WorkoutEntryByID(id uint) (*model.WorkoutEntry, error) {
	entry, err := s.entryRepo.FindWorkoutByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (s *entryService) WorkoutEntries(memberID uint) ([]model.WorkoutEntry, error) {
	return s.entryRepo.FindWorkoutByMember(memberID)
}

// SetWorkoutFeedback 담당 트레이너가 운동 기록에 코멘트와 다음 목표를 남긴다.
func (s *entryService) SetWorkoutFeedback(id uint, feedback, nextGoal string) (*model.WorkoutEntry, error) {
	entry, err := s.entryRepo.FindWorkoutByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	entry.Feedback = feedback
	entry.NextGoal = nextGoal
	if err := s.entryRepo.UpdateWorkout(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *entryService) DeleteWorkoutEntry(id uint) error {
	return s.entryRepo.DeleteWorkout(id)
}

// AddBodyEntry 결과지 텍스트가 있으면 추출을 시도하고, 없으면 입력값을 그대로 쓴다.
func (s *entryService) AddBodyEntry(input BodyEntryInput) (*model.BodyEntry, error) {
	if !isValidEntryDate(input.Date) {
		return nil, ErrInvalidEntryDate
	}
	if err := s.ensureMember(input.MemberID); err != nil {
		return nil, err
	}

	weight := input.Weight
	muscle := input.SkeletalMuscle
	fat := input.BodyFatPercentage
	score := input.Score
	if input.SheetText != "" {
		composition := s.estimates.ExtractBodyComposition(input.SheetText)
		weight = composition.Weight
		muscle = composition.SkeletalMuscle
		fat = composition.BodyFatPercentage
		score = composition.Score
	}

	entry := &model.BodyEntry{
		MemberID:          input.MemberID,
		Date:              input.Date,
		Weight:            weight,
		SkeletalMuscle:    muscle,
		BodyFatPercentage: fat,
		Score:             score,
		SheetImageURL:     input.SheetImageURL,
	}
	if err := s.entryRepo.CreateBody(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *entryService) BodyEntries(memberID uint) ([]model.BodyEntry, error) {
	return s.entryRepo.FindBodyByMember(memberID)
}

func (s *entryService) UpdateBodyEntry(entry *model.BodyEntry) (*model.BodyEntry, error) {
	if err := s.entryRepo.UpdateBody(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *entryService) DeleteBodyEntry(id uint) error {
	return s.entryRepo.DeleteBody(id)
}

func (s *entryService) ensureMember(memberID uint) error {
	if _, err := s.memberRepo.FindByID(memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	return nil
}

func isValidEntryDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
