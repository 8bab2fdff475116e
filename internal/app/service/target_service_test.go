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

func setupTargetServiceTest(t *testing.T) (TargetService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	targetRepo := repository.NewTargetRepository(testDB)
	branchRepo := repository.NewBranchRepository(testDB)
	targetService := NewTargetService(targetRepo, branchRepo)

	testDB.Create(&model.Branch{Name: "야음점"})
	testDB.Create(&model.Branch{Name: "병영점"})

	return targetService, testDB
}

func TestTargetService_ResolveTarget_Defaults(t *testing.T) {
	targetService, _ := setupTargetServiceTest(t)

	tests := []struct {
		name     string
		branch   string
		position string
		want     int64
	}{
		{
			name:     "Default for 트레이너",
			branch:   "야음점",
			position: "트레이너",
			want:     9000000,
		},
		{
			name:     "Default for 팀장",
			branch:   "야음점",
			position: "팀장",
			want:     11000000,
		},
		{
			name:     "Default for 수습1",
			branch:   "병영점",
			position: "수습1",
			want:     3500000,
		},
		{
			name:     "Empty branch yields zero",
			branch:   "",
			position: "트레이너",
			want:     0,
		},
		{
			name:     "Empty position yields zero",
			branch:   "야음점",
			position: "",
			want:     0,
		},
		{
			name:     "Unknown position yields zero",
			branch:   "야음점",
			position: "없는직책",
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := targetService.ResolveTarget(tt.branch, tt.position)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTargetService_ResolveTarget_OverrideWins(t *testing.T) {
	targetService, _ := setupTargetServiceTest(t)

	_, err := targetService.SetTarget("야음점", "트레이너", 5000000)
	require.NoError(t, err)

	// 오버라이드가 설정된 지점만 바뀐다
	got, err := targetService.ResolveTarget("야음점", "트레이너")
	assert.NoError(t, err)
	assert.Equal(t, int64(5000000), got)

	got, err = targetService.ResolveTarget("병영점", "트레이너")
	assert.NoError(t, err)
	assert.Equal(t, int64(9000000), got)
}

func TestTargetService_ResolveTarget_BranchManagerAlwaysZero(t *testing.T) {
	targetService, testDB := setupTargetServiceTest(t)

	// 지점장 오버라이드를 강제로 넣어도 결과는 0이어야 한다
	testDB.Create(&model.TargetOverride{
		BranchName: "야음점",
		Position:   model.PositionBranchManager,
		Amount:     7000000,
	})

	got, err := targetService.ResolveTarget("야음점", model.PositionBranchManager)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

func TestTargetService_SetTarget_Upsert(t *testing.T) {
	targetService, testDB := setupTargetServiceTest(t)

	_, err := targetService.SetTarget("야음점", "트레이너", 5000000)
	require.NoError(t, err)
	_, err = targetService.SetTarget("야음점", "트레이너", 6000000)
	require.NoError(t, err)

	var count int64
	testDB.Model(&model.TargetOverride{}).Count(&count)
	assert.Equal(t, int64(1), count)

	got, err := targetService.ResolveTarget("야음점", "트레이너")
	assert.NoError(t, err)
	assert.Equal(t, int64(6000000), got)
}

func TestTargetService_SetTarget_Validation(t *testing.T) {
	targetService, _ := setupTargetServiceTest(t)

	_, err := targetService.SetTarget("야음점", "트레이너", -1)
	assert.ErrorIs(t, err, ErrInvalidTargetAmount)

	_, err = targetService.SetTarget("야음점", "없는직책", 1000000)
	assert.ErrorIs(t, err, ErrInvalidPosition)

	_, err = targetService.SetTarget("없는지점", "트레이너", 1000000)
	assert.ErrorIs(t, err, ErrBranchNotFound)
}

func TestTargetService_RemoveTarget_RestoresDefault(t *testing.T) {
	targetService, _ := setupTargetServiceTest(t)

	_, err := targetService.SetTarget("야음점", "트레이너", 5000000)
	require.NoError(t, err)

	err = targetService.RemoveTarget("야음점", "트레이너")
	require.NoError(t, err)

	got, err := targetService.ResolveTarget("야음점", "트레이너")
	assert.NoError(t, err)
	assert.Equal(t, int64(9000000), got)
}

func TestTargetService_BranchTargets(t *testing.T) {
	targetService, _ := setupTargetServiceTest(t)

	_, err := targetService.SetTarget("야음점", "수습1", 4000000)
	require.NoError(t, err)

	targets, err := targetService.BranchTargets("야음점")
	require.NoError(t, err)

	assert.Equal(t, int64(0), targets[model.PositionBranchManager])
	assert.Equal(t, int64(4000000), targets["수습1"])
	assert.Equal(t, int64(9000000), targets["트레이너"])
	assert.Equal(t, int64(11000000), targets["팀장"])
}
