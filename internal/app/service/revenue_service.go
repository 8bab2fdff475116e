package service

import (
	"errors"
	"strings"
	"time"

	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/internal/app/repository"
	"github.com/bemove/bemove-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrInvalidSaleAmount = errors.New("매출 금액은 0보다 커야 합니다")
	ErrInvalidSource     = errors.New("잘못된 유입 경로입니다")
	ErrInvalidSaleDate   = errors.New("날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)")
	ErrMemberNotFound    = errors.New("회원을 찾을 수 없습니다")
)

// NewSaleInput 신규 등록 입력. 회원 생성과 매출 기록이 함께 일어난다.
type NewSaleInput struct {
	TrainerID   uint
	MemberName  string
	PhoneNumber string
	Amount      int64
	Sessions    int
	Source      model.SalesSource
	Date        string // YYYY-MM-DD
}

// RenewalInput 재등록 입력. 기존 회원의 세션과 누적 결제액이 갱신된다.
type RenewalInput struct {
	TrainerID uint
	MemberID  uint
	Amount    int64
	Sessions  int
	Date      string // YYYY-MM-DD
}

// MonthRevenue 월 키와 해당 월 매출 합계
type MonthRevenue struct {
	Month  string `json:"month"` // YYYY-MM
	Amount int64  `json:"amount"`
}

// RevenueBreakdown 한 달의 신규/재등록 구분 집계
type RevenueBreakdown struct {
	Month          string `json:"month"`
	Total          int64  `json:"total"`
	NewRevenue     int64  `json:"new_revenue"`
	RenewalRevenue int64  `json:"renewal_revenue"`
	NewCount       int    `json:"new_count"`
	RenewalCount   int    `json:"renewal_count"`
}

// SourceStat 신규 등록 유입 경로별 건수
type SourceStat struct {
	Source model.SalesSource `json:"source"`
	Label  string            `json:"label"`
	Count  int               `json:"count"`
}

type RevenueService interface {
	RecordNewSale(input NewSaleInput) (*model.Transaction, *model.Member, error)
	RecordRenewal(input RenewalInput) (*model.Transaction, error)
	MonthlyRevenue(trainerID uint, monthKey string) (int64, error)
	Breakdown(trainerID uint, monthKey string) (*RevenueBreakdown, error)
	RevenueBySource(trainerID uint, monthKey string) ([]SourceStat, error)
	TrailingSeries(trainerID uint, months int) ([]MonthRevenue, error)
	TransactionsByTrainer(trainerID uint) ([]model.Transaction, error)
}

type revenueService struct {
	txnRepo    repository.TransactionRepository
	memberRepo repository.MemberRepository
}

func NewRevenueService(txnRepo repository.TransactionRepository, memberRepo repository.MemberRepository) RevenueService {
	return &revenueService{
		txnRepo:    txnRepo,
		memberRepo: memberRepo,
	}
}

func (s *revenueService) RecordNewSale(input NewSaleInput) (*model.Transaction, *model.Member, error) {
	if input.Amount <= 0 {
		return nil, nil, ErrInvalidSaleAmount
	}
	if !isValidSource(input.Source) {
		return nil, nil, ErrInvalidSource
	}
	if !isValidDate(input.Date) {
		return nil, nil, ErrInvalidSaleDate
	}

	member := &model.Member{
		Name:          input.MemberName,
		PhoneNumber:   input.PhoneNumber,
		JoinDate:      input.Date,
		Status:        model.MemberActive,
		TrainerID:     &input.TrainerID,
		TotalSessions: input.Sessions,
		PaymentAmount: input.Amount,
		Source:        input.Source,
	}
	txn := &model.Transaction{
		TrainerID: input.TrainerID,
		Type:      model.TransactionNew,
		Amount:    input.Amount,
		Sessions:  input.Sessions,
		Source:    input.Source,
		Date:      input.Date,
	}

	if err := s.txnRepo.CreateWithMember(txn, member); err != nil {
		return nil, nil, err
	}

	logger.Info("New sale recorded", map[string]interface{}{
		"trainer_id": input.TrainerID,
		"member_id":  member.ID,
		"amount":     input.Amount,
		"source":     input.Source,
	})
	return txn, member, nil
}

func (s *revenueService) RecordRenewal(input RenewalInput) (*model.Transaction, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidSaleAmount
	}
	if !isValidDate(input.Date) {
		return nil, ErrInvalidSaleDate
	}

	txn := &model.Transaction{
		TrainerID: input.TrainerID,
		MemberID:  &input.MemberID,
		Type:      model.TransactionRenewal,
		Amount:    input.Amount,
		Sessions:  input.Sessions,
		Date:      input.Date,
	}

	err := s.txnRepo.CreateWithMemberUpdate(txn, func(member *model.Member) {
		member.TotalSessions += input.Sessions
		member.PaymentAmount += input.Amount
		member.Status = model.MemberActive
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	logger.Info("Renewal recorded", map[string]interface{}{
		"trainer_id": input.TrainerID,
		"member_id":  input.MemberID,
		"amount":     input.Amount,
	})
	return txn, nil
}

func (s *revenueService) MonthlyRevenue(trainerID uint, monthKey string) (int64, error) {
	txns, err := s.txnRepo.FindByTrainerID(trainerID)
	if err != nil {
		return 0, err
	}
	return sumRevenue(txns, monthKey), nil
}

func (s *revenueService) Breakdown(trainerID uint, monthKey string) (*RevenueBreakdown, error) {
	txns, err := s.txnRepo.FindByTrainerID(trainerID)
	if err != nil {
		return nil, err
	}
	return breakdown(txns, monthKey), nil
}

func (s *revenueService) RevenueBySource(trainerID uint, monthKey string) ([]SourceStat, error) {
	txns, err := s.txnRepo.FindByTrainerID(trainerID)
	if err != nil {
		return nil, err
	}
	return sourceStats(txns, monthKey), nil
}

func (s *revenueService) TrailingSeries(trainerID uint, months int) ([]MonthRevenue, error) {
	txns, err := s.txnRepo.FindByTrainerID(trainerID)
	if err != nil {
		return nil, err
	}
	return trailingSeries(txns, months, time.Now()), nil
}

func (s *revenueService) TransactionsByTrainer(trainerID uint) ([]model.Transaction, error) {
	return s.txnRepo.FindByTrainerID(trainerID)
}

// sumRevenue 월 키 접두사("YYYY-MM")가 일치하는 기록의 금액 합계.
// 날짜가 문자열이므로 접두사 비교가 곧 월 소속 판정이다.
func sumRevenue(txns []model.Transaction, monthKey string) int64 {
	var total int64
	for _, t := range txns {
		if strings.HasPrefix(t.Date, monthKey) {
			total += t.Amount
		}
	}
	return total
}

func breakdown(txns []model.Transaction, monthKey string) *RevenueBreakdown {
	b := &RevenueBreakdown{Month: monthKey}
	for _, t := range txns {
		if !strings.HasPrefix(t.Date, monthKey) {
			continue
		}
		b.Total += t.Amount
		switch t.Type {
		case model.TransactionNew:
			b.NewRevenue += t.Amount
			b.NewCount++
		case model.TransactionRenewal:
			b.RenewalRevenue += t.Amount
			b.RenewalCount++
		}
	}
	return b
}

// sourceStats 신규 등록만 집계한다. 재등록에는 유입 경로가 없다.
func sourceStats(txns []model.Transaction, monthKey string) []SourceStat {
	counts := make(map[model.SalesSource]int)
	for _, t := range txns {
		if t.Type != model.TransactionNew || !strings.HasPrefix(t.Date, monthKey) {
			continue
		}
		counts[t.Source]++
	}

	stats := make([]SourceStat, 0, len(model.SalesSources))
	for _, source := range model.SalesSources {
		stats = append(stats, SourceStat{
			Source: source,
			Label:  model.SourceLabels[source],
			Count:  counts[source],
		})
	}
	return stats
}

// trailingSeries 기준 시각이 속한 달을 끝으로 최근 n개월 매출을
// 오래된 달부터 0으로 초기화해 반환한다.
func trailingSeries(txns []model.Transaction, months int, now time.Time) []MonthRevenue {
	// 월초로 정규화해야 31일 등에서 한 달 이동이 어긋나지 않는다
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	series := make([]MonthRevenue, 0, months)
	for i := months - 1; i >= 0; i-- {
		month := base.AddDate(0, -i, 0).Format("2006-01")
		series = append(series, MonthRevenue{Month: month})
	}
	for i := range series {
		series[i].Amount = sumRevenue(txns, series[i].Month)
	}
	return series
}

func isValidSource(source model.SalesSource) bool {
	for _, s := range model.SalesSources {
		if s == source {
			return true
		}
	}
	return false
}

func isValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
