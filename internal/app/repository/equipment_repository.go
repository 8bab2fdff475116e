package repository

import (
	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/pkg/logger"
	"gorm.io/gorm"
)

type EquipmentRepository interface {
	Create(equipment *model.Equipment) error
	FindByID(id uint) (*model.Equipment, error)
	FindByName(name string) (*model.Equipment, error)
	FindAll() ([]model.Equipment, error)
	FindByCategory(category string) ([]model.Equipment, error)
	Update(equipment *model.Equipment) error
	Delete(id uint) error

	CreateReport(report *model.EquipmentReport) error
	FindReportByID(id uint) (*model.EquipmentReport, error)
	FindReportsByStatus(status model.ReportStatus) ([]model.EquipmentReport, error)
	ApproveReport(id uint) (*model.Equipment, error)
	RejectReport(id uint) error
}

type equipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) Create(equipment *model.Equipment) error {
	logger.Debug("Creating equipment in database", map[string]interface{}{
		"name":     equipment.Name,
		"category": equipment.Category,
	})

	if err := r.db.Create(equipment).Error; err != nil {
		logger.Error("Failed to create equipment in database", err, map[string]interface{}{
			"name": equipment.Name,
		})
		return err
	}
	return nil
}

func (r *equipmentRepository) FindByID(id uint) (*model.Equipment, error) {
	var equipment model.Equipment
	if err := r.db.First(&equipment, id).Error; err != nil {
		return nil, err
	}
	return &equipment, nil
}

func (r *equipmentRepository) FindByName(name string) (*model.Equipment, error) {
	var equipment model.Equipment
	if err := r.db.Where("name = ?", name).First(&equipment).Error; err != nil {
		return nil, err
	}
	return &equipment, nil
}

func (r *equipmentRepository) FindAll() ([]model.Equipment, error) {
	var equipments []model.Equipment
	if err := r.db.Order("category ASC, name ASC").Find(&equipments).Error; err != nil {
		logger.Error("Failed to find all equipment in database", err, nil)
		return nil, err
	}
	return equipments, nil
}

func (r *equipmentRepository) FindByCategory(category string) ([]model.Equipment, error) {
	var equipments []model.Equipment
	if err := r.db.Where("category = ?", category).
		Order("name ASC").Find(&equipments).Error; err != nil {
		logger.Error("Failed to find equipment by category in database", err, map[string]interface{}{
			"category": category,
		})
		return nil, err
	}
	return equipments, nil
}

func (r *equipmentRepository) Update(equipment *model.Equipment) error {
	if err := r.db.Save(equipment).Error; err != nil {
		logger.Error("Failed to update equipment in database", err, map[string]interface{}{
			"equipment_id": equipment.ID,
		})
		return err
	}
	return nil
}

func (r *equipmentRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Equipment{}, id).Error; err != nil {
		logger.Error("Failed to delete equipment from database", err, map[string]interface{}{
			"equipment_id": id,
		})
		return err
	}
	return nil
}

func (r *equipmentRepository) CreateReport(report *model.EquipmentReport) error {
	logger.Debug("Creating equipment report in database", map[string]interface{}{
		"reporter_id": report.ReporterID,
		"name":        report.Name,
	})

	if err := r.db.Create(report).Error; err != nil {
		logger.Error("Failed to create equipment report in database", err, map[string]interface{}{
			"reporter_id": report.ReporterID,
			"name":        report.Name,
		})
		return err
	}
	return nil
}

func (r *equipmentRepository) FindReportByID(id uint) (*model.EquipmentReport, error) {
	var report model.EquipmentReport
	if err := r.db.First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *equipmentRepository) FindReportsByStatus(status model.ReportStatus) ([]model.EquipmentReport, error) {
	var reports []model.EquipmentReport
	if err := r.db.Where("status = ?", status).
		Order("created_at DESC").Find(&reports).Error; err != nil {
		logger.Error("Failed to find equipment reports by status in database", err, map[string]interface{}{
			"status": status,
		})
		return nil, err
	}
	return reports, nil
}

// ApproveReport 요청을 승인 처리하고 카탈로그 기구 생성을 한 트랜잭션으로 묶는다.
func (r *equipmentRepository) ApproveReport(id uint) (*model.Equipment, error) {
	var equipment model.Equipment
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var report model.EquipmentReport
		if err := tx.First(&report, id).Error; err != nil {
			return err
		}

		report.Status = model.ReportApproved
		if err := tx.Save(&report).Error; err != nil {
			return err
		}

		equipment = model.Equipment{
			Name:     report.Name,
			Category: report.Category,
			ImageURL: report.ImageURL,
			Usage:    report.Usage,
		}
		return tx.Create(&equipment).Error
	})
	if err != nil {
		logger.Error("Failed to approve equipment report in database", err, map[string]interface{}{
			"report_id": id,
		})
		return nil, err
	}
	return &equipment, nil
}

func (r *equipmentRepository) RejectReport(id uint) error {
	if err := r.db.Model(&model.EquipmentReport{}).Where("id = ?", id).
		Update("status", model.ReportRejected).Error; err != nil {
		logger.Error("Failed to reject equipment report in database", err, map[string]interface{}{
			"report_id": id,
		})
		return err
	}
	return nil
}
