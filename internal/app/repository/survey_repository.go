package repository

import (
	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/pkg/logger"
	"gorm.io/gorm"
)

type SurveyRepository interface {
	Create(survey *model.Survey) error
	FindByID(id uint) (*model.Survey, error)
	FindAll() ([]model.Survey, error)
	FindByTrainerID(trainerID uint) ([]model.Survey, error)
	FindByMemberID(memberID uint) ([]model.Survey, error)
	AverageRatingByTrainer(trainerID uint) (float64, int64, error)
}

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) Create(survey *model.Survey) error {
	logger.Debug("Creating survey in database", map[string]interface{}{
		"member_id":  survey.MemberID,
		"trainer_id": survey.TrainerID,
	})

	if err := r.db.Create(survey).Error; err != nil {
		logger.Error("Failed to create survey in database", err, map[string]interface{}{
			"member_id":  survey.MemberID,
			"trainer_id": survey.TrainerID,
		})
		return err
	}
	return nil
}

func (r *surveyRepository) FindByID(id uint) (*model.Survey, error) {
	var survey model.Survey
	if err := r.db.First(&survey, id).Error; err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *surveyRepository) FindAll() ([]model.Survey, error) {
	var surveys []model.Survey
	if err := r.db.Order("created_at DESC").Find(&surveys).Error; err != nil {
		logger.Error("Failed to find all surveys in database", err, nil)
		return nil, err
	}
	return surveys, nil
}

func (r *surveyRepository) FindByTrainerID(trainerID uint) ([]model.Survey, error) {
	var surveys []model.Survey
	if err := r.db.Where("trainer_id = ?", trainerID).
		Order("created_at DESC").Find(&surveys).Error; err != nil {
		logger.Error("Failed to find surveys by trainer ID in database", err, map[string]interface{}{
			"trainer_id": trainerID,
		})
		return nil, err
	}
	return surveys, nil
}

func (r *surveyRepository) FindByMemberID(memberID uint) ([]model.Survey, error) {
	var surveys []model.Survey
	if err := r.db.Where("member_id = ?", memberID).
		Order("created_at DESC").Find(&surveys).Error; err != nil {
		logger.Error("Failed to find surveys by member ID in database", err, map[string]interface{}{
			"member_id": memberID,
		})
		return nil, err
	}
	return surveys, nil
}

// AverageRatingByTrainer 제출 시점에 확정된 평점의 평균과 설문 수
func (r *surveyRepository) AverageRatingByTrainer(trainerID uint) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	if err := r.db.Model(&model.Survey{}).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Where("trainer_id = ?", trainerID).
		Scan(&result).Error; err != nil {
		logger.Error("Failed to average ratings by trainer in database", err, map[string]interface{}{
			"trainer_id": trainerID,
		})
		return 0, 0, err
	}
	return result.Avg, result.Count, nil
}
