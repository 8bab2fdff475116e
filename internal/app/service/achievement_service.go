package service

import (
	"sort"
	"strings"

	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/internal/app/repository"
)

// StaffAchievement 직원 한 명의 월 목표 대비 실적
type StaffAchievement struct {
	UserID     uint    `json:"user_id"`
	Name       string  `json:"name"`
	Position   string  `json:"position"`
	BranchName string  `json:"branch_name"`
	Month      string  `json:"month"`
	Target     int64   `json:"target"`
	Revenue    int64   `json:"revenue"`
	Rate       float64 `json:"rate"` // 달성률 (%), 목표 0이면 0
}

// OrgAchievement 전사 롤업
type OrgAchievement struct {
	Month         string  `json:"month"`
	TotalTarget   int64   `json:"total_target"`
	TotalRevenue  int64   `json:"total_revenue"`
	Rate          float64 `json:"rate"`
	BranchCount   int     `json:"branch_count"`
	ManagerCount  int     `json:"manager_count"`
	TrainerCount  int     `json:"trainer_count"`
	AverageRating float64 `json:"average_rating"` // 전체 설문 평점 평균
}

// BranchAchievement 지점별 목표 대비 실적.
// ActualRevenue는 소속 직원 매출 합계이고, EstimatedRevenue는 직원 수 비례로
// 전사 매출을 배분한 근사치다. 배분값은 추정치이며 실제 집계가 아니다.
type BranchAchievement struct {
	BranchName       string  `json:"branch_name"`
	Month            string  `json:"month"`
	Target           int64   `json:"target"`
	ActualRevenue    int64   `json:"actual_revenue"`
	EstimatedRevenue float64 `json:"estimated_revenue"` // 직원 수 비례 추정치
	Rate             float64 `json:"rate"`              // 추정치 기준 달성률
	StaffCount       int     `json:"staff_count"`
	AverageRating    float64 `json:"average_rating"`
}

// TrainerSummary 지점장 화면의 트레이너별 요약.
// EstimatedRevenue는 지점 매출에 순번 가중치를 적용한 예시 분배값이다.
type TrainerSummary struct {
	UserID           uint    `json:"user_id"`
	Name             string  `json:"name"`
	Position         string  `json:"position"`
	Target           int64   `json:"target"`
	Revenue          int64   `json:"revenue"`           // 본인 매출 기록 합계
	EstimatedRevenue float64 `json:"estimated_revenue"` // 순번 가중 추정치
	Rate             float64 `json:"rate"`
	AverageRating    float64 `json:"average_rating"`
	SurveyCount      int64   `json:"survey_count"`
}

type AchievementService interface {
	StaffAchievement(userID uint, monthKey string) (*StaffAchievement, error)
	AllStaffAchievements(monthKey string) ([]StaffAchievement, error)
	OrgAchievement(monthKey string) (*OrgAchievement, error)
	BranchAchievements(monthKey string) ([]BranchAchievement, error)
	TrainerBreakdown(branchName, monthKey string) ([]TrainerSummary, error)
}

type achievementService struct {
	userRepo   repository.UserRepository
	txnRepo    repository.TransactionRepository
	branchRepo repository.BranchRepository
	surveyRepo repository.SurveyRepository
	targets    TargetService
}

func NewAchievementService(
	userRepo repository.UserRepository,
	txnRepo repository.TransactionRepository,
	branchRepo repository.BranchRepository,
	surveyRepo repository.SurveyRepository,
	targets TargetService,
) AchievementService {
	return &achievementService{
		userRepo:   userRepo,
		txnRepo:    txnRepo,
		branchRepo: branchRepo,
		surveyRepo: surveyRepo,
		targets:    targets,
	}
}

func (s *achievementService) StaffAchievement(userID uint, monthKey string) (*StaffAchievement, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	target, err := s.targets.ResolveForUser(user)
	if err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.FindByTrainerID(userID)
	if err != nil {
		return nil, err
	}
	revenue := sumRevenue(txns, monthKey)

	return &StaffAchievement{
		UserID:     user.ID,
		Name:       user.Name,
		Position:   user.Position,
		BranchName: user.BranchName,
		Month:      monthKey,
		Target:     target,
		Revenue:    revenue,
		Rate:       achievementRate(revenue, target),
	}, nil
}

// AllStaffAchievements 전 직원의 달성 현황. 달성률 내림차순으로 정렬하되
// 동률은 입력 순서(이름순)를 유지한다.
func (s *achievementService) AllStaffAchievements(monthKey string) ([]StaffAchievement, error) {
	staff, err := s.userRepo.FindStaff()
	if err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.FindAll()
	if err != nil {
		return nil, err
	}
	byTrainer := groupByTrainer(txns)

	achievements := make([]StaffAchievement, 0, len(staff))
	for _, u := range staff {
		target, err := s.targets.ResolveForUser(&u)
		if err != nil {
			return nil, err
		}
		revenue := sumRevenue(byTrainer[u.ID], monthKey)
		achievements = append(achievements, StaffAchievement{
			UserID:     u.ID,
			Name:       u.Name,
			Position:   u.Position,
			BranchName: u.BranchName,
			Month:      monthKey,
			Target:     target,
			Revenue:    revenue,
			Rate:       achievementRate(revenue, target),
		})
	}

	sort.SliceStable(achievements, func(i, j int) bool {
		return achievements[i].Rate > achievements[j].Rate
	})
	return achievements, nil
}

func (s *achievementService) OrgAchievement(monthKey string) (*OrgAchievement, error) {
	staff, err := s.userRepo.FindStaff()
	if err != nil {
		return nil, err
	}

	var totalTarget int64
	var managerCount, trainerCount int
	for _, u := range staff {
		target, err := s.targets.ResolveForUser(&u)
		if err != nil {
			return nil, err
		}
		totalTarget += target

		switch u.Role {
		case model.RoleManager:
			managerCount++
		case model.RoleTrainer:
			trainerCount++
		}
	}

	txns, err := s.txnRepo.FindByMonth(monthKey)
	if err != nil {
		return nil, err
	}
	var totalRevenue int64
	for _, t := range txns {
		totalRevenue += t.Amount
	}

	branches, err := s.branchRepo.FindAll()
	if err != nil {
		return nil, err
	}

	surveys, err := s.surveyRepo.FindAll()
	if err != nil {
		return nil, err
	}

	return &OrgAchievement{
		Month:         monthKey,
		TotalTarget:   totalTarget,
		TotalRevenue:  totalRevenue,
		Rate:          achievementRate(totalRevenue, totalTarget),
		BranchCount:   len(branches),
		ManagerCount:  managerCount,
		TrainerCount:  trainerCount,
		AverageRating: averageRating(surveys),
	}, nil
}

func (s *achievementService) BranchAchievements(monthKey string) ([]BranchAchievement, error) {
	branches, err := s.branchRepo.FindAll()
	if err != nil {
		return nil, err
	}

	staff, err := s.userRepo.FindStaff()
	if err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.FindByMonth(monthKey)
	if err != nil {
		return nil, err
	}
	var totalRevenue int64
	for _, t := range txns {
		totalRevenue += t.Amount
	}
	byTrainer := groupByTrainer(txns)

	surveys, err := s.surveyRepo.FindAll()
	if err != nil {
		return nil, err
	}

	totalWeight := float64(len(staff))
	if totalWeight == 0 {
		totalWeight = 1
	}

	results := make([]BranchAchievement, 0, len(branches))
	for _, branch := range branches {
		var branchStaff []model.User
		for _, u := range staff {
			if u.BranchName == branch.Name {
				branchStaff = append(branchStaff, u)
			}
		}

		var target int64
		var actual int64
		staffIDs := make(map[uint]bool, len(branchStaff))
		for _, u := range branchStaff {
			t, err := s.targets.ResolveForUser(&u)
			if err != nil {
				return nil, err
			}
			target += t
			staffIDs[u.ID] = true
			for _, txn := range byTrainer[u.ID] {
				actual += txn.Amount
			}
		}

		// 빈 지점도 0.5 가중치로 최소 배분을 받는다
		weight := float64(len(branchStaff))
		if weight == 0 {
			weight = 0.5
		}
		estimated := float64(totalRevenue) * weight / totalWeight

		var branchSurveys []model.Survey
		for _, r := range surveys {
			if staffIDs[r.TrainerID] {
				branchSurveys = append(branchSurveys, r)
			}
		}

		results = append(results, BranchAchievement{
			BranchName:       branch.Name,
			Month:            monthKey,
			Target:           target,
			ActualRevenue:    actual,
			EstimatedRevenue: estimated,
			Rate:             achievementRateFloat(estimated, target),
			StaffCount:       len(branchStaff),
			AverageRating:    averageRating(branchSurveys),
		})
	}
	return results, nil
}

func (s *achievementService) TrainerBreakdown(branchName, monthKey string) ([]TrainerSummary, error) {
	staff, err := s.userRepo.FindStaffByBranch(branchName)
	if err != nil {
		return nil, err
	}

	var trainers []model.User
	for _, u := range staff {
		if u.Role == model.RoleTrainer {
			trainers = append(trainers, u)
		}
	}

	trainerIDs := make([]uint, 0, len(trainers))
	for _, t := range trainers {
		trainerIDs = append(trainerIDs, t.ID)
	}
	txns, err := s.txnRepo.FindByTrainerIDs(trainerIDs)
	if err != nil {
		return nil, err
	}
	byTrainer := groupByTrainer(txns)

	var branchRevenue int64
	for _, t := range txns {
		if strings.HasPrefix(t.Date, monthKey) {
			branchRevenue += t.Amount
		}
	}

	summaries := make([]TrainerSummary, 0, len(trainers))
	for i, u := range trainers {
		target, err := s.targets.ResolveForUser(&u)
		if err != nil {
			return nil, err
		}
		revenue := sumRevenue(byTrainer[u.ID], monthKey)

		avg, count, err := s.surveyRepo.AverageRatingByTrainer(u.ID)
		if err != nil {
			return nil, err
		}

		// 순번 가중 배분: 화면 예시용 추정치
		estimated := float64(branchRevenue) * (0.15 + float64(i)*0.05)

		summaries = append(summaries, TrainerSummary{
			UserID:           u.ID,
			Name:             u.Name,
			Position:         u.Position,
			Target:           target,
			Revenue:          revenue,
			EstimatedRevenue: estimated,
			Rate:             achievementRate(revenue, target),
			AverageRating:    avg,
			SurveyCount:      count,
		})
	}
	return summaries, nil
}

// achievementRate 목표가 0이면 달성률도 0이다 (지점장 등)
func achievementRate(revenue, target int64) float64 {
	if target <= 0 {
		return 0
	}
	return float64(revenue) / float64(target) * 100
}

func achievementRateFloat(revenue float64, target int64) float64 {
	if target <= 0 {
		return 0
	}
	return revenue / float64(target) * 100
}

func averageRating(surveys []model.Survey) float64 {
	if len(surveys) == 0 {
		return 0
	}
	var sum float64
	for _, r := range surveys {
		sum += r.Rating
	}
	return sum / float64(len(surveys))
}

func groupByTrainer(txns []model.Transaction) map[uint][]model.Transaction {
	grouped := make(map[uint][]model.Transaction)
	for _, t := range txns {
		grouped[t.TrainerID] = append(grouped[t.TrainerID], t)
	}
	return grouped
}
