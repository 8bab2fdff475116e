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

func setupEquipmentServiceTest(t *testing.T) (EquipmentService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	equipmentRepo := repository.NewEquipmentRepository(testDB)
	return NewEquipmentService(equipmentRepo), testDB
}

func TestEquipmentService_CreateEquipment(t *testing.T) {
	equipmentService, _ := setupEquipmentServiceTest(t)

	equipment, err := equipmentService.CreateEquipment("레그 프레스", "하체", "", "발판을 밀어 하체를 단련합니다")
	require.NoError(t, err)
	assert.NotZero(t, equipment.ID)

	// 같은 이름은 중복 등록할 수 없다
	_, err = equipmentService.CreateEquipment("레그 프레스", "하체", "", "")
	assert.ErrorIs(t, err, ErrEquipmentExists)

	_, err = equipmentService.CreateEquipment("정체불명 기구", "없는분류", "", "")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestEquipmentService_ListEquipment_ByCategory(t *testing.T) {
	equipmentService, _ := setupEquipmentServiceTest(t)

	_, err := equipmentService.CreateEquipment("레그 프레스", "하체", "", "")
	require.NoError(t, err)
	_, err = equipmentService.CreateEquipment("랫풀다운", "등", "", "")
	require.NoError(t, err)

	all, err := equipmentService.ListEquipment("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	lower, err := equipmentService.ListEquipment("하체")
	require.NoError(t, err)
	require.Len(t, lower, 1)
	assert.Equal(t, "레그 프레스", lower[0].Name)

	_, err = equipmentService.ListEquipment("없는분류")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestEquipmentService_ApproveReport_CreatesCatalogEntry(t *testing.T) {
	equipmentService, testDB := setupEquipmentServiceTest(t)

	trainer := createStaff(testDB, "t1@bemove.kr", "김트레이너", "트레이너", "야음점", model.RoleTrainer)

	report, err := equipmentService.ReportEquipment(trainer.ID, "케이블 크로스오버", "가슴", "", "양쪽 케이블을 모아 가슴을 단련합니다")
	require.NoError(t, err)
	assert.Equal(t, model.ReportPending, report.Status)

	pending, err := equipmentService.PendingReports()
	require.NoError(t, err)
	require.Len(t, pending, 1)

	equipment, err := equipmentService.ApproveReport(report.ID)
	require.NoError(t, err)
	assert.Equal(t, "케이블 크로스오버", equipment.Name)
	assert.Equal(t, "가슴", equipment.Category)

	// 승인 후 카탈로그에서 조회되고 대기 목록에서 빠진다
	all, err := equipmentService.ListEquipment("")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	pending, err = equipmentService.PendingReports()
	require.NoError(t, err)
	assert.Len(t, pending, 0)

	// 이미 처리된 요청은 다시 승인/반려할 수 없다
	_, err = equipmentService.ApproveReport(report.ID)
	assert.ErrorIs(t, err, ErrReportAlreadyHandled)
	err = equipmentService.RejectReport(report.ID)
	assert.ErrorIs(t, err, ErrReportAlreadyHandled)
}

func TestEquipmentService_RejectReport(t *testing.T) {
	equipmentService, testDB := setupEquipmentServiceTest(t)

	trainer := createStaff(testDB, "t1@bemove.kr", "김트레이너", "트레이너", "야음점", model.RoleTrainer)

	report, err := equipmentService.ReportEquipment(trainer.ID, "스미스 머신", "하체", "", "")
	require.NoError(t, err)

	err = equipmentService.RejectReport(report.ID)
	require.NoError(t, err)

	// 반려된 요청은 카탈로그에 등록되지 않는다
	all, err := equipmentService.ListEquipment("")
	require.NoError(t, err)
	assert.Len(t, all, 0)

	var stored model.EquipmentReport
	testDB.First(&stored, report.ID)
	assert.Equal(t, model.ReportRejected, stored.Status)
}

func TestEquipmentService_ReportEquipment_DuplicateName(t *testing.T) {
	equipmentService, testDB := setupEquipmentServiceTest(t)

	trainer := createStaff(testDB, "t1@bemove.kr", "김트레이너", "트레이너", "야음점", model.RoleTrainer)

	_, err := equipmentService.CreateEquipment("레그 프레스", "하체", "", "")
	require.NoError(t, err)

	// 이미 카탈로그에 있는 이름은 요청 단계에서 막는다
	_, err = equipmentService.ReportEquipment(trainer.ID, "레그 프레스", "하체", "", "")
	assert.ErrorIs(t, err, ErrEquipmentExists)
}
