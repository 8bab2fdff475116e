package service

import (
	"errors"

	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/internal/app/repository"
	"github.com/bemove/bemove-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrEquipmentNotFound       = errors.New("기구를 찾을 수 없습니다")
	ErrEquipmentExists         = errors.New("이미 등록된 기구입니다")
	ErrInvalidCategory         = errors.New("잘못된 기구 분류입니다")
	ErrEquipmentReportNotFound = errors.New("등록 요청을 찾을 수 없습니다")
	ErrReportAlreadyHandled    = errors.New("이미 처리된 등록 요청입니다")
)

type EquipmentService interface {
	ListEquipment(category string) ([]model.Equipment, error)
	GetEquipment(id uint) (*model.Equipment, error)
	CreateEquipment(name, category, imageURL, usage string) (*model.Equipment, error)
	UpdateEquipment(equipment *model.Equipment) (*model.Equipment, error)
	DeleteEquipment(id uint) error

	ReportEquipment(reporterID uint, name, category, imageURL, usage string) (*model.EquipmentReport, error)
	PendingReports() ([]model.EquipmentReport, error)
	ApproveReport(id uint) (*model.Equipment, error)
	RejectReport(id uint) error
}

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository) EquipmentService {
	return &equipmentService{equipmentRepo: equipmentRepo}
}

func (s *equipmentService) ListEquipment(category string) ([]model.Equipment, error) {
	if category == "" {
		return s.equipmentRepo.FindAll()
	}
	if !isValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	return s.equipmentRepo.FindByCategory(category)
}

func (s *equipmentService) GetEquipment(id uint) (*model.Equipment, error) {
	equipment, err := s.equipmentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}
	return equipment, nil
}

func (s *equipmentService) CreateEquipment(name, category, imageURL, usage string) (*model.Equipment, error) {
	if !isValidCategory(category) {
		return nil, ErrInvalidCategory
	}

	if _, err := s.equipmentRepo.FindByName(name); err == nil {
		return nil, ErrEquipmentExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	equipment := &model.Equipment{
		Name:     name,
		Category: category,
		ImageURL: imageURL,
		Usage:    usage,
	}
	if err := s.equipmentRepo.Create(equipment); err != nil {
		return nil, err
	}

	logger.Info("Equipment created", map[string]interface{}{
		"equipment_id": equipment.ID,
		"name":         name,
		"category":     category,
	})
	return equipment, nil
}

func (s *equipmentService) UpdateEquipment(equipment *model.Equipment) (*model.Equipment, error) {
	if !isValidCategory(equipment.Category) {
		return nil, ErrInvalidCategory
	}
	if err := s.equipmentRepo.Update(equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

func (s *equipmentService) DeleteEquipment(id uint) error {
	if _, err := s.equipmentRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEquipmentNotFound
		}
		return err
	}
	return s.equipmentRepo.Delete(id)
}

// ReportEquipment 트레이너의 신규 기구 등록 요청. 지점장/관리자 승인 대기 상태로 생성된다.
func (s *equipmentService) ReportEquipment(reporterID uint, name, category, imageURL, usage string) (*model.EquipmentReport, error) {
	if !isValidCategory(category) {
		return nil, ErrInvalidCategory
	}

	if _, err := s.equipmentRepo.FindByName(name); err == nil {
		return nil, ErrEquipmentExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	report := &model.EquipmentReport{
		ReporterID: reporterID,
		Name:       name,
		Category:   category,
		ImageURL:   imageURL,
		Usage:      usage,
		Status:     model.ReportPending,
	}
	if err := s.equipmentRepo.CreateReport(report); err != nil {
		return nil, err
	}

	logger.Info("Equipment report created", map[string]interface{}{
		"report_id":   report.ID,
		"reporter_id": reporterID,
		"name":        name,
	})
	return report, nil
}

func (s *equipmentService) PendingReports() ([]model.EquipmentReport, error) {
	return s.equipmentRepo.FindReportsByStatus(model.ReportPending)
}

func (s *equipmentService) ApproveReport(id uint) (*model.Equipment, error) {
	report, err := s.equipmentRepo.FindReportByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEquipmentReportNotFound
		}
		return nil, err
	}
	if report.Status != model.ReportPending {
		return nil, ErrReportAlreadyHandled
	}

	equipment, err := s.equipmentRepo.ApproveReport(id)
	if err != nil {
		return nil, err
	}

	logger.Info("Equipment report approved", map[string]interface{}{
		"report_id":    id,
		"equipment_id": equipment.ID,
	})
	return equipment, nil
}

func (s *equipmentService) RejectReport(id uint) error {
	report, err := s.equipmentRepo.FindReportByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEquipmentReportNotFound
		}
		return err
	}
	if report.Status != model.ReportPending {
		return ErrReportAlreadyHandled
	}
	return s.equipmentRepo.RejectReport(id)
}

func isValidCategory(category string) bool {
	for _, c := range model.EquipmentCategories {
		if c == category {
			return true
		}
	}
	return false
}
