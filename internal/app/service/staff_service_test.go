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

func setupStaffServiceTest(t *testing.T) (StaffService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	branchRepo := repository.NewBranchRepository(testDB)
	staffService := NewStaffService(userRepo, branchRepo)

	testDB.Create(&model.Branch{Name: "야음점"})

	return staffService, testDB
}

func TestStaffService_CreateStaff(t *testing.T) {
	staffService, _ := setupStaffServiceTest(t)

	user, err := staffService.CreateStaff(
		"trainer@bemove.kr", "password123", "김트레이너", "트레이너", "야음점", model.RoleTrainer)
	require.NoError(t, err)
	assert.Equal(t, model.RoleTrainer, user.Role)
	assert.Equal(t, "야음점", user.BranchName)
	assert.NotEqual(t, "password123", user.PasswordHash)
}

func TestStaffService_CreateStaff_BranchManagerPositionForcesRole(t *testing.T) {
	staffService, _ := setupStaffServiceTest(t)

	// 트레이너 권한으로 생성해도 지점장 직책이면 지점장 권한이 된다
	user, err := staffService.CreateStaff(
		"manager@bemove.kr", "password123", "박지점장", model.PositionBranchManager, "야음점", model.RoleTrainer)
	require.NoError(t, err)
	assert.Equal(t, model.RoleManager, user.Role)
}

func TestStaffService_CreateStaff_Validation(t *testing.T) {
	staffService, _ := setupStaffServiceTest(t)

	_, err := staffService.CreateStaff(
		"member@bemove.kr", "password123", "회원", "", "", model.RoleMember)
	assert.ErrorIs(t, err, ErrInvalidStaffRole)

	_, err = staffService.CreateStaff(
		"t@bemove.kr", "password123", "김트레이너", "없는직책", "야음점", model.RoleTrainer)
	assert.ErrorIs(t, err, ErrInvalidPosition)

	_, err = staffService.CreateStaff(
		"t@bemove.kr", "password123", "김트레이너", "트레이너", "없는지점", model.RoleTrainer)
	assert.ErrorIs(t, err, ErrUnknownBranchName)
}

func TestStaffService_UpdateStaff_PositionChangeToBranchManager(t *testing.T) {
	staffService, _ := setupStaffServiceTest(t)

	user, err := staffService.CreateStaff(
		"trainer@bemove.kr", "password123", "김트레이너", "트레이너", "야음점", model.RoleTrainer)
	require.NoError(t, err)

	position := model.PositionBranchManager
	updated, err := staffService.UpdateStaff(user.ID, StaffUpdateInput{Position: &position})
	require.NoError(t, err)

	// 직책 변경이 권한 승격을 수반한다
	assert.Equal(t, model.PositionBranchManager, updated.Position)
	assert.Equal(t, model.RoleManager, updated.Role)
}

func TestStaffService_UpdateStaff_BranchMove(t *testing.T) {
	staffService, testDB := setupStaffServiceTest(t)

	testDB.Create(&model.Branch{Name: "병영점"})

	user, err := staffService.CreateStaff(
		"trainer@bemove.kr", "password123", "김트레이너", "트레이너", "야음점", model.RoleTrainer)
	require.NoError(t, err)

	branch := "병영점"
	updated, err := staffService.UpdateStaff(user.ID, StaffUpdateInput{BranchName: &branch})
	require.NoError(t, err)
	assert.Equal(t, "병영점", updated.BranchName)

	unknown := "없는지점"
	_, err = staffService.UpdateStaff(user.ID, StaffUpdateInput{BranchName: &unknown})
	assert.ErrorIs(t, err, ErrUnknownBranchName)
}

func TestStaffService_ListStaff_ExcludesMemberAccounts(t *testing.T) {
	staffService, testDB := setupStaffServiceTest(t)

	_, err := staffService.CreateStaff(
		"trainer@bemove.kr", "password123", "김트레이너", "트레이너", "야음점", model.RoleTrainer)
	require.NoError(t, err)

	testDB.Create(&model.User{
		Email:        "member@bemove.kr",
		PasswordHash: "hash",
		Name:         "박회원",
		Role:         model.RoleMember,
	})

	staff, err := staffService.ListStaff()
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, "김트레이너", staff[0].Name)
}
