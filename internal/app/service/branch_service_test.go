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

func setupBranchServiceTest(t *testing.T) (BranchService, TargetService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	branchRepo := repository.NewBranchRepository(testDB)
	targetRepo := repository.NewTargetRepository(testDB)
	branchService := NewBranchService(branchRepo)
	targetService := NewTargetService(targetRepo, branchRepo)

	return branchService, targetService, testDB
}

func TestBranchService_CreateBranch_Idempotent(t *testing.T) {
	branchService, _, testDB := setupBranchServiceTest(t)

	first, err := branchService.CreateBranch("야음점")
	require.NoError(t, err)

	// 같은 이름으로 다시 만들면 기존 지점이 반환된다
	second, err := branchService.CreateBranch("야음점")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	testDB.Model(&model.Branch{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestBranchService_CreateBranch_EmptyName(t *testing.T) {
	branchService, _, _ := setupBranchServiceTest(t)

	_, err := branchService.CreateBranch("   ")
	assert.ErrorIs(t, err, ErrBranchNameRequired)
}

func TestBranchService_RenameBranch_PropagatesReferences(t *testing.T) {
	branchService, targetService, testDB := setupBranchServiceTest(t)

	branch, err := branchService.CreateBranch("야음점")
	require.NoError(t, err)

	staff := &model.User{
		Email:        "t1@bemove.kr",
		PasswordHash: "hash",
		Name:         "김트레이너",
		Role:         model.RoleTrainer,
		Position:     "트레이너",
		BranchName:   "야음점",
	}
	testDB.Create(staff)

	_, err = targetService.SetTarget("야음점", "트레이너", 5000000)
	require.NoError(t, err)

	_, err = branchService.RenameBranch(branch.ID, "신정점")
	require.NoError(t, err)

	// 직원 소속이 새 이름으로 이동한다
	var updated model.User
	testDB.First(&updated, staff.ID)
	assert.Equal(t, "신정점", updated.BranchName)

	// 오버라이드가 새 이름으로 재키잉된다: 이전 이름엔 없고 새 이름에 있다
	amount, err := targetService.ResolveTarget("신정점", "트레이너")
	require.NoError(t, err)
	assert.Equal(t, int64(5000000), amount)

	var oldCount int64
	testDB.Model(&model.TargetOverride{}).Where("branch_name = ?", "야음점").Count(&oldCount)
	assert.Equal(t, int64(0), oldCount)
}

func TestBranchService_RenameBranch_OverrideCollisionLastWriteWins(t *testing.T) {
	branchService, targetService, testDB := setupBranchServiceTest(t)

	source, err := branchService.CreateBranch("야음점")
	require.NoError(t, err)

	_, err = targetService.SetTarget("야음점", "트레이너", 5000000)
	require.NoError(t, err)

	// 새 이름 아래에 고아 오버라이드가 남아 있는 상황
	testDB.Create(&model.TargetOverride{
		BranchName: "신정점",
		Position:   "트레이너",
		Amount:     8000000,
	})

	// 개명 시 이동하는 쪽 값이 덮어쓴다
	_, err = branchService.RenameBranch(source.ID, "신정점")
	require.NoError(t, err)

	amount, err := targetService.ResolveTarget("신정점", "트레이너")
	require.NoError(t, err)
	assert.Equal(t, int64(5000000), amount)

	var count int64
	testDB.Model(&model.TargetOverride{}).Where("position = ?", "트레이너").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestBranchService_RenameBranch_NameTaken(t *testing.T) {
	branchService, _, _ := setupBranchServiceTest(t)

	a, err := branchService.CreateBranch("야음점")
	require.NoError(t, err)
	_, err = branchService.CreateBranch("병영점")
	require.NoError(t, err)

	_, err = branchService.RenameBranch(a.ID, "병영점")
	assert.ErrorIs(t, err, ErrBranchExists)
}

func TestBranchService_DeleteBranch_UnassignsStaffAndPurgesOverrides(t *testing.T) {
	branchService, targetService, testDB := setupBranchServiceTest(t)

	branch, err := branchService.CreateBranch("야음점")
	require.NoError(t, err)

	staff := &model.User{
		Email:        "t1@bemove.kr",
		PasswordHash: "hash",
		Name:         "김트레이너",
		Role:         model.RoleTrainer,
		Position:     "트레이너",
		BranchName:   "야음점",
	}
	testDB.Create(staff)

	_, err = targetService.SetTarget("야음점", "트레이너", 5000000)
	require.NoError(t, err)

	err = branchService.DeleteBranch(branch.ID)
	require.NoError(t, err)

	// 직원은 미배정 상태가 된다
	var updated model.User
	testDB.First(&updated, staff.ID)
	assert.Equal(t, "", updated.BranchName)

	// 오버라이드가 제거되어 같은 이름으로 재생성해도 기본 목표가 적용된다
	var overrideCount int64
	testDB.Model(&model.TargetOverride{}).Count(&overrideCount)
	assert.Equal(t, int64(0), overrideCount)

	_, err = branchService.CreateBranch("야음점")
	require.NoError(t, err)
	amount, err := targetService.ResolveTarget("야음점", "트레이너")
	require.NoError(t, err)
	assert.Equal(t, int64(9000000), amount)
}

func TestBranchService_DeleteBranch_NotFound(t *testing.T) {
	branchService, _, _ := setupBranchServiceTest(t)

	err := branchService.DeleteBranch(9999)
	assert.ErrorIs(t, err, ErrBranchNotFound)
}
