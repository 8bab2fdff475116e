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

func setupAchievementServiceTest(t *testing.T) (AchievementService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	txnRepo := repository.NewTransactionRepository(testDB)
	branchRepo := repository.NewBranchRepository(testDB)
	surveyRepo := repository.NewSurveyRepository(testDB)
	targetRepo := repository.NewTargetRepository(testDB)

	targetService := NewTargetService(targetRepo, branchRepo)
	achievementService := NewAchievementService(userRepo, txnRepo, branchRepo, surveyRepo, targetService)

	return achievementService, testDB
}

func createStaff(testDB *gorm.DB, email, name, position, branch string, role model.UserRole) *model.User {
	user := &model.User{
		Email:        email,
		PasswordHash: "hash",
		Name:         name,
		Role:         role,
		Position:     position,
		BranchName:   branch,
	}
	testDB.Create(user)
	return user
}

func TestAchievementService_StaffAchievement(t *testing.T) {
	achievementService, testDB := setupAchievementServiceTest(t)

	testDB.Create(&model.Branch{Name: "야음점"})
	trainer := createStaff(testDB, "t1@bemove.kr", "김트레이너", "트레이너", "야음점", model.RoleTrainer)

	testDB.Create(&model.Transaction{
		TrainerID: trainer.ID, MemberName: "a",
		Type: model.TransactionNew, Amount: 4500000,
		Source: model.SourceOT, Date: "2025-01-10",
	})

	a, err := achievementService.StaffAchievement(trainer.ID, "2025-01")
	require.NoError(t, err)
	assert.Equal(t, int64(9000000), a.Target)
	assert.Equal(t, int64(4500000), a.Revenue)
	assert.InDelta(t, 50.0, a.Rate, 0.001)
}

func TestAchievementService_StaffAchievement_ZeroTargetGuard(t *testing.T) {
	achievementService, testDB := setupAchievementServiceTest(t)

	testDB.Create(&model.Branch{Name: "야음점"})
	manager := createStaff(testDB, "m1@bemove.kr", "박지점장", model.PositionBranchManager, "야음점", model.RoleManager)

	testDB.Create(&model.Transaction{
		TrainerID: manager.ID, MemberName: "a",
		Type: model.TransactionNew, Amount: 1000000,
		Source: model.SourceOT, Date: "2025-01-10",
	})

	// 목표 0이면 매출이 있어도 달성률은 0이다
	a, err := achievementService.StaffAchievement(manager.ID, "2025-01")
	require.NoError(t, err)
	assert.Equal(t, int64(0), a.Target)
	assert.Equal(t, int64(1000000), a.Revenue)
	assert.Equal(t, 0.0, a.Rate)
}

func TestAchievementService_AllStaffAchievements_StableOrder(t *testing.T) {
	achievementService, testDB := setupAchievementServiceTest(t)

	testDB.Create(&model.Branch{Name: "야음점"})
	// 이름순 조회되므로 가나다 순서가 입력 순서가 된다
	a := createStaff(testDB, "a@bemove.kr", "가트레이너", "트레이너", "야음점", model.RoleTrainer)
	b := createStaff(testDB, "b@bemove.kr", "나트레이너", "트레이너", "야음점", model.RoleTrainer)
	c := createStaff(testDB, "c@bemove.kr", "다트레이너", "트레이너", "야음점", model.RoleTrainer)

	// 가/다는 동률, 나는 1위
	testDB.Create(&model.Transaction{TrainerID: a.ID, MemberName: "x", Type: model.TransactionNew, Amount: 900000, Source: model.SourceOT, Date: "2025-01-03"})
	testDB.Create(&model.Transaction{TrainerID: b.ID, MemberName: "y", Type: model.TransactionNew, Amount: 4500000, Source: model.SourceOT, Date: "2025-01-04"})
	testDB.Create(&model.Transaction{TrainerID: c.ID, MemberName: "z", Type: model.TransactionNew, Amount: 900000, Source: model.SourceOT, Date: "2025-01-05"})

	achievements, err := achievementService.AllStaffAchievements("2025-01")
	require.NoError(t, err)
	require.Len(t, achievements, 3)

	assert.Equal(t, "나트레이너", achievements[0].Name)
	// 동률은 원래 순서를 유지한다
	assert.Equal(t, "가트레이너", achievements[1].Name)
	assert.Equal(t, "다트레이너", achievements[2].Name)
}

func TestAchievementService_OrgAchievement(t *testing.T) {
	achievementService, testDB := setupAchievementServiceTest(t)

	testDB.Create(&model.Branch{Name: "야음점"})
	testDB.Create(&model.Branch{Name: "병영점"})

	trainer := createStaff(testDB, "t1@bemove.kr", "김트레이너", "트레이너", "야음점", model.RoleTrainer)
	createStaff(testDB, "m1@bemove.kr", "박지점장", model.PositionBranchManager, "야음점", model.RoleManager)
	lead := createStaff(testDB, "t2@bemove.kr", "이팀장", "팀장", "병영점", model.RoleTrainer)

	testDB.Create(&model.Transaction{TrainerID: trainer.ID, MemberName: "a", Type: model.TransactionNew, Amount: 3000000, Source: model.SourceOT, Date: "2025-01-10"})
	testDB.Create(&model.Transaction{TrainerID: lead.ID, MemberName: "b", Type: model.TransactionRenewal, Amount: 2000000, Date: "2025-01-11"})
	// 다른 달 기록은 제외
	testDB.Create(&model.Transaction{TrainerID: lead.ID, MemberName: "c", Type: model.TransactionNew, Amount: 7777777, Source: model.SourceOT, Date: "2025-02-01"})

	org, err := achievementService.OrgAchievement("2025-01")
	require.NoError(t, err)

	// 트레이너 9백 + 팀장 1천1백, 지점장은 0
	assert.Equal(t, int64(20000000), org.TotalTarget)
	assert.Equal(t, int64(5000000), org.TotalRevenue)
	assert.InDelta(t, 25.0, org.Rate, 0.001)
	assert.Equal(t, 2, org.BranchCount)
	assert.Equal(t, 1, org.ManagerCount)
	assert.Equal(t, 2, org.TrainerCount)
}

func TestAchievementService_BranchAchievements_Apportionment(t *testing.T) {
	achievementService, testDB := setupAchievementServiceTest(t)

	testDB.Create(&model.Branch{Name: "야음점"})
	testDB.Create(&model.Branch{Name: "병영점"}) // 직원 없음

	t1 := createStaff(testDB, "t1@bemove.kr", "김트레이너", "트레이너", "야음점", model.RoleTrainer)
	t2 := createStaff(testDB, "t2@bemove.kr", "이트레이너", "트레이너", "야음점", model.RoleTrainer)

	testDB.Create(&model.Transaction{TrainerID: t1.ID, MemberName: "a", Type: model.TransactionNew, Amount: 600000, Source: model.SourceOT, Date: "2025-01-10"})
	testDB.Create(&model.Transaction{TrainerID: t2.ID, MemberName: "b", Type: model.TransactionNew, Amount: 400000, Source: model.SourceOT, Date: "2025-01-11"})

	results, err := achievementService.BranchAchievements("2025-01")
	require.NoError(t, err)
	require.Len(t, results, 2)

	byName := make(map[string]BranchAchievement)
	for _, r := range results {
		byName[r.BranchName] = r
	}

	full := byName["야음점"]
	empty := byName["병영점"]

	// 실제 매출은 소속 직원 합계
	assert.Equal(t, int64(1000000), full.ActualRevenue)
	assert.Equal(t, int64(0), empty.ActualRevenue)

	// 추정 배분: 가중치 2/2와 0.5/2
	assert.InDelta(t, 1000000.0, full.EstimatedRevenue, 0.001)
	assert.InDelta(t, 250000.0, empty.EstimatedRevenue, 0.001)

	// 목표 0인 빈 지점은 달성률 0
	assert.Equal(t, int64(18000000), full.Target)
	assert.Equal(t, 0.0, empty.Rate)
}

func TestAchievementService_TrainerBreakdown(t *testing.T) {
	achievementService, testDB := setupAchievementServiceTest(t)

	testDB.Create(&model.Branch{Name: "야음점"})
	// 이름순 정렬로 순번이 결정된다
	t1 := createStaff(testDB, "t1@bemove.kr", "가트레이너", "트레이너", "야음점", model.RoleTrainer)
	t2 := createStaff(testDB, "t2@bemove.kr", "나트레이너", "LV3 트레이너", "야음점", model.RoleTrainer)
	// 지점장은 트레이너 목록에서 제외된다
	createStaff(testDB, "m1@bemove.kr", "박지점장", model.PositionBranchManager, "야음점", model.RoleManager)

	testDB.Create(&model.Transaction{TrainerID: t1.ID, MemberName: "a", Type: model.TransactionNew, Amount: 700000, Source: model.SourceOT, Date: "2025-01-10"})
	testDB.Create(&model.Transaction{TrainerID: t2.ID, MemberName: "b", Type: model.TransactionNew, Amount: 300000, Source: model.SourceOT, Date: "2025-01-11"})

	testDB.Create(&model.Survey{
		MemberID: 1, TrainerID: t1.ID,
		Punctuality: 5, GoalAchievement: 5, Kindness: 5, Professionalism: 5,
		Appearance: 5, DurationCompliance: 5, FeedbackReflection: 5, Focus: 5,
		Rating: 5.0,
	})

	summaries, err := achievementService.TrainerBreakdown("야음점", "2025-01")
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "가트레이너", summaries[0].Name)
	assert.Equal(t, int64(700000), summaries[0].Revenue)
	assert.Equal(t, int64(9000000), summaries[0].Target)
	// 순번 가중 추정: 1번째 15%, 2번째 20%
	assert.InDelta(t, 150000.0, summaries[0].EstimatedRevenue, 0.001)
	assert.InDelta(t, 200000.0, summaries[1].EstimatedRevenue, 0.001)

	assert.InDelta(t, 5.0, summaries[0].AverageRating, 0.001)
	assert.Equal(t, int64(1), summaries[0].SurveyCount)
	assert.Equal(t, int64(0), summaries[1].SurveyCount)

	assert.Equal(t, int64(10000000), summaries[1].Target)
}
