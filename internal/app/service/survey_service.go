package service

import (
	"errors"

	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/internal/app/repository"
	"github.com/bemove/bemove-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrSurveyNotFound     = errors.New("설문을 찾을 수 없습니다")
	ErrInvalidSurveyScore = errors.New("점수는 1-5 사이여야 합니다")
	ErrSurveyForbidden    = errors.New("설문 조회 권한이 없습니다")
)

// SurveyInput 만족도 설문 제출 입력. 8개 항목 모두 1~5점이다.
type SurveyInput struct {
	MemberID           uint
	MemberName         string // 제출 시점 회원명 스냅샷
	TrainerID          uint
	Punctuality        int
	GoalAchievement    int
	Kindness           int
	Professionalism    int
	Appearance         int
	DurationCompliance int
	FeedbackReflection int
	Focus              int
	Comment            string
	PrivateComment     string
}

type SurveyService interface {
	SubmitSurvey(input SurveyInput) (*model.Survey, error)
	// SurveysForTrainer 트레이너 본인 조회. 비공개 코멘트가 제거된 투영을 반환한다.
	SurveysForTrainer(trainerID uint) ([]model.TrainerSurveyView, error)
	// SurveysByTrainer 지점장/관리자 조회. 비공개 코멘트가 포함된다.
	SurveysByTrainer(trainerID uint) ([]model.Survey, error)
	AllSurveys() ([]model.Survey, error)
	TrainerRating(trainerID uint) (float64, int64, error)
}

type surveyService struct {
	surveyRepo repository.SurveyRepository
	userRepo   repository.UserRepository
}

func NewSurveyService(surveyRepo repository.SurveyRepository, userRepo repository.UserRepository) SurveyService {
	return &surveyService{
		surveyRepo: surveyRepo,
		userRepo:   userRepo,
	}
}

func (s *surveyService) SubmitSurvey(input SurveyInput) (*model.Survey, error) {
	survey := &model.Survey{
		MemberID:           input.MemberID,
		MemberName:         input.MemberName,
		TrainerID:          input.TrainerID,
		Punctuality:        input.Punctuality,
		GoalAchievement:    input.GoalAchievement,
		Kindness:           input.Kindness,
		Professionalism:    input.Professionalism,
		Appearance:         input.Appearance,
		DurationCompliance: input.DurationCompliance,
		FeedbackReflection: input.FeedbackReflection,
		Focus:              input.Focus,
		Comment:            input.Comment,
		PrivateComment:     input.PrivateComment,
	}

	var sum int
	for _, score := range survey.Scores() {
		if score < 1 || score > 5 {
			return nil, ErrInvalidSurveyScore
		}
		sum += score
	}
	// 평점은 제출 시점에 확정하고 이후 변경하지 않는다
	survey.Rating = float64(sum) / float64(len(survey.Scores()))

	if _, err := s.userRepo.FindByID(input.TrainerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}

	if err := s.surveyRepo.Create(survey); err != nil {
		return nil, err
	}

	logger.Info("Survey submitted", map[string]interface{}{
		"survey_id":  survey.ID,
		"member_id":  input.MemberID,
		"trainer_id": input.TrainerID,
		"rating":     survey.Rating,
	})
	return survey, nil
}

func (s *surveyService) SurveysForTrainer(trainerID uint) ([]model.TrainerSurveyView, error) {
	surveys, err := s.surveyRepo.FindByTrainerID(trainerID)
	if err != nil {
		return nil, err
	}

	views := make([]model.TrainerSurveyView, 0, len(surveys))
	for _, survey := range surveys {
		views = append(views, survey.ToTrainerView())
	}
	return views, nil
}

func (s *surveyService) SurveysByTrainer(trainerID uint) ([]model.Survey, error) {
	return s.surveyRepo.FindByTrainerID(trainerID)
}

func (s *surveyService) AllSurveys() ([]model.Survey, error) {
	return s.surveyRepo.FindAll()
}

func (s *surveyService) TrainerRating(trainerID uint) (float64, int64, error) {
	return s.surveyRepo.AverageRatingByTrainer(trainerID)
}
