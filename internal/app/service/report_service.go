package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/bemove/bemove-backend/internal/app/repository"
	"github.com/bemove/bemove-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
)

// ReportService 월간 실적 리포트를 엑셀로 내보낸다.
type ReportService interface {
	// MonthlyRevenueReport 월 키("YYYY-MM") 기준 전 지점 실적 리포트 xlsx
	MonthlyRevenueReport(monthKey string) (*bytes.Buffer, string, error)
}

type reportService struct {
	userRepo     repository.UserRepository
	txnRepo      repository.TransactionRepository
	achievements AchievementService
}

func NewReportService(
	userRepo repository.UserRepository,
	txnRepo repository.TransactionRepository,
	achievements AchievementService,
) ReportService {
	return &reportService{
		userRepo:     userRepo,
		txnRepo:      txnRepo,
		achievements: achievements,
	}
}

func (s *reportService) MonthlyRevenueReport(monthKey string) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	// 시트 1: 직원별 달성 현황
	staffSheet := "직원별 실적"
	f.SetSheetName("Sheet1", staffSheet)

	headers := []string{"이름", "지점", "직책", "목표", "매출", "달성률(%)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(staffSheet, cell, h)
	}

	achievements, err := s.achievements.AllStaffAchievements(monthKey)
	if err != nil {
		return nil, "", err
	}
	for row, a := range achievements {
		values := []interface{}{a.Name, a.BranchName, a.Position, a.Target, a.Revenue, fmt.Sprintf("%.1f", a.Rate)}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(staffSheet, cell, v)
		}
	}

	// 시트 2: 지점별 실적 (배분 매출은 추정치로 표기)
	branchSheet := "지점별 실적"
	if _, err := f.NewSheet(branchSheet); err != nil {
		return nil, "", err
	}

	branchHeaders := []string{"지점", "직원 수", "목표", "실제 매출", "추정 배분 매출", "달성률(%)", "평균 만족도"}
	for i, h := range branchHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(branchSheet, cell, h)
	}

	branches, err := s.achievements.BranchAchievements(monthKey)
	if err != nil {
		return nil, "", err
	}
	for row, b := range branches {
		values := []interface{}{
			b.BranchName, b.StaffCount, b.Target, b.ActualRevenue,
			fmt.Sprintf("%.0f", b.EstimatedRevenue),
			fmt.Sprintf("%.1f", b.Rate),
			fmt.Sprintf("%.1f", b.AverageRating),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(branchSheet, cell, v)
		}
	}

	// 시트 3: 매출 원장
	ledgerSheet := "매출 내역"
	if _, err := f.NewSheet(ledgerSheet); err != nil {
		return nil, "", err
	}

	ledgerHeaders := []string{"날짜", "트레이너 ID", "회원", "유형", "금액", "세션", "유입 경로"}
	for i, h := range ledgerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(ledgerSheet, cell, h)
	}

	txns, err := s.txnRepo.FindByMonth(monthKey)
	if err != nil {
		return nil, "", err
	}
	for row, t := range txns {
		values := []interface{}{
			t.Date, t.TrainerID, t.MemberName, string(t.Type), t.Amount, t.Sessions, string(t.Source),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(ledgerSheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		logger.Error("Failed to write report to buffer", err, map[string]interface{}{
			"month": monthKey,
		})
		return nil, "", err
	}

	filename := fmt.Sprintf("revenue_report_%s.xlsx", strings.ReplaceAll(monthKey, "-", ""))
	logger.Info("Monthly revenue report generated", map[string]interface{}{
		"month":    monthKey,
		"filename": filename,
		"staff":    len(achievements),
		"branches": len(branches),
	})
	return buf, filename, nil
}
