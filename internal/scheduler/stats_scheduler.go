package scheduler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bemove/bemove-backend/internal/app/service"
	"github.com/bemove/bemove-backend/pkg/logger"
	"github.com/bemove/bemove-backend/pkg/redis"
	"github.com/robfig/cron/v3"
)

// StatsScheduler 전사 달성 현황 캐시 갱신 스케줄러
type StatsScheduler struct {
	cron               *cron.Cron
	achievementService service.AchievementService
}

// NewStatsScheduler 달성 현황 스케줄러 생성
func NewStatsScheduler(achievementService service.AchievementService) *StatsScheduler {
	return &StatsScheduler{
		cron:               cron.New(),
		achievementService: achievementService,
	}
}

// Start 스케줄러 시작
func (s *StatsScheduler) Start() error {
	// 매시 정각에 이번 달 전사 요약을 다시 계산해 캐시에 올린다
	_, err := s.cron.AddFunc("0 * * * *", func() {
		if err := s.RefreshOrgSummary(); err != nil {
			logger.Error("Failed to refresh org summary cache", err)
		}
	})

	if err != nil {
		logger.Error("Failed to add cron job for org summary refresh", err)
		return err
	}

	s.cron.Start()
	logger.Info("Stats scheduler started successfully (hourly)", nil)

	// 기동 직후에도 한 번 채워둔다
	if err := s.RefreshOrgSummary(); err != nil {
		logger.Error("Initial org summary refresh failed", err)
	}

	return nil
}

// RefreshOrgSummary 이번 달 전사 달성 요약을 계산해 캐시에 저장한다
func (s *StatsScheduler) RefreshOrgSummary() error {
	monthKey := time.Now().Format("2006-01")

	summary, err := s.achievementService.OrgAchievement(monthKey)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	if err := redis.CacheDashboardSummary(context.Background(), payload, 2*time.Hour); err != nil {
		return err
	}

	logger.Info("Org summary cache refreshed", map[string]interface{}{
		"month": monthKey,
	})
	return nil
}

// Stop 스케줄러 중지
func (s *StatsScheduler) Stop() {
	logger.Info("Stopping stats scheduler...", nil)
	s.cron.Stop()
	logger.Info("Stats scheduler stopped", nil)
}
