package service

import (
	"testing"

	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/internal/app/repository"
	"github.com/bemove/bemove-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSurveyServiceTest(t *testing.T) (SurveyService, *model.User, *model.Member, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	surveyRepo := repository.NewSurveyRepository(testDB)
	userRepo := repository.NewUserRepository(testDB)
	surveyService := NewSurveyService(surveyRepo, userRepo)

	trainer := createStaff(testDB, "t1@bemove.kr", "김트레이너", "트레이너", "야음점", model.RoleTrainer)
	member := &model.Member{Name: "박회원", TrainerID: &trainer.ID}
	testDB.Create(member)

	return surveyService, trainer, member, testDB
}

func surveyInput(memberID, trainerID uint) SurveyInput {
	return SurveyInput{
		MemberID:           memberID,
		TrainerID:          trainerID,
		Punctuality:        5,
		GoalAchievement:    4,
		Kindness:           5,
		Professionalism:    4,
		Appearance:         5,
		DurationCompliance: 4,
		FeedbackReflection: 5,
		Focus:              4,
		Comment:            "수업이 만족스러워요",
		PrivateComment:     "시간을 조금 더 지켜주세요",
	}
}

func TestSurveyService_SubmitSurvey_RatingFrozenAtCreation(t *testing.T) {
	surveyService, trainer, member, testDB := setupSurveyServiceTest(t)

	survey, err := surveyService.SubmitSurvey(surveyInput(member.ID, trainer.ID))
	require.NoError(t, err)

	// 평점은 8개 항목 평균으로 제출 시점에 확정된다
	assert.InDelta(t, 4.5, survey.Rating, 0.001)

	// 이후 항목 점수를 바꿔도 저장된 평점은 그대로다
	testDB.Model(&model.Survey{}).Where("id = ?", survey.ID).Update("punctuality", 1)

	var stored model.Survey
	testDB.First(&stored, survey.ID)
	assert.InDelta(t, 4.5, stored.Rating, 0.001)
}

func TestSurveyService_SubmitSurvey_ScoreValidation(t *testing.T) {
	surveyService, trainer, member, _ := setupSurveyServiceTest(t)

	input := surveyInput(member.ID, trainer.ID)
	input.Focus = 0
	_, err := surveyService.SubmitSurvey(input)
	assert.ErrorIs(t, err, ErrInvalidSurveyScore)

	input = surveyInput(member.ID, trainer.ID)
	input.Kindness = 6
	_, err = surveyService.SubmitSurvey(input)
	assert.ErrorIs(t, err, ErrInvalidSurveyScore)
}

func TestSurveyService_SubmitSurvey_TrainerNotFound(t *testing.T) {
	surveyService, _, member, _ := setupSurveyServiceTest(t)

	_, err := surveyService.SubmitSurvey(surveyInput(member.ID, 9999))
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestSurveyService_SurveysForTrainer_HidesPrivateComment(t *testing.T) {
	surveyService, trainer, member, _ := setupSurveyServiceTest(t)

	_, err := surveyService.SubmitSurvey(surveyInput(member.ID, trainer.ID))
	require.NoError(t, err)

	// 트레이너 본인 조회에는 비공개 코멘트가 없다
	views, err := surveyService.SurveysForTrainer(trainer.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "수업이 만족스러워요", views[0].Comment)
	assert.InDelta(t, 4.5, views[0].Rating, 0.001)

	// 지점장/관리자 조회에는 비공개 코멘트가 포함된다
	full, err := surveyService.SurveysByTrainer(trainer.ID)
	require.NoError(t, err)
	require.Len(t, full, 1)
	assert.Equal(t, "시간을 조금 더 지켜주세요", full[0].PrivateComment)
}

func TestSurveyService_TrainerRating(t *testing.T) {
	surveyService, trainer, member, _ := setupSurveyServiceTest(t)

	// 설문이 없으면 0점 0건
	rating, count, err := surveyService.TrainerRating(trainer.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rating)
	assert.Equal(t, int64(0), count)

	_, err = surveyService.SubmitSurvey(surveyInput(member.ID, trainer.ID))
	require.NoError(t, err)

	input := surveyInput(member.ID, trainer.ID)
	input.Punctuality = 1
	input.GoalAchievement = 1
	input.Kindness = 1
	input.Professionalism = 1
	input.Appearance = 1
	input.DurationCompliance = 1
	input.FeedbackReflection = 1
	input.Focus = 1
	_, err = surveyService.SubmitSurvey(input)
	require.NoError(t, err)

	rating, count, err = surveyService.TrainerRating(trainer.ID)
	require.NoError(t, err)
	assert.InDelta(t, 2.75, rating, 0.001)
	assert.Equal(t, int64(2), count)
}

func TestSurveyService_SubmitSurvey_MemberNameSnapshot(t *testing.T) {
	surveyService, trainer, member, testDB := setupSurveyServiceTest(t)

	input := surveyInput(member.ID, trainer.ID)
	input.MemberName = member.Name
	survey, err := surveyService.SubmitSurvey(input)
	require.NoError(t, err)
	assert.Equal(t, "박회원", survey.MemberName)

	// 이후 회원명이 바뀌어도 설문의 이름은 제출 시점 그대로다
	testDB.Model(&model.Member{}).Where("id = ?", member.ID).Update("name", "박개명")

	var stored model.Survey
	require.NoError(t, testDB.First(&stored, survey.ID).Error)
	assert.Equal(t, "박회원", stored.MemberName)
}
