package repository

import (
	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/pkg/logger"
	"gorm.io/gorm"
)

// EntryRepository 회원 활동 기록 (식단/운동/체성분)
type EntryRepository interface {
	CreateDiet(entry *model.DietEntry) error
	FindDietByID(id uint) (*model.DietEntry, error)
	FindDietByMember(memberID uint) ([]model.DietEntry, error)
	FindDietByMemberAndDate(memberID uint, date string) ([]model.DietEntry, error)
	UpdateDiet(entry *model.DietEntry) error
	DeleteDiet(id uint) error

	CreateWorkout(entry *model.WorkoutEntry) error
	FindWorkoutByID(id uint) (*model.WorkoutEntry, error)
	FindWorkoutByMember(memberID uint) ([]model.WorkoutEntry, error)
	UpdateWorkout(entry *model.WorkoutEntry) error
	DeleteWorkout(id uint) error

	CreateBody(entry *model.BodyEntry) error
	FindBodyByMember(memberID uint) ([]model.BodyEntry, error)
	UpdateBody(entry *model.BodyEntry) error
	DeleteBody(id uint) error
}

type entryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) CreateDiet(entry *model.DietEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		logger.Error("Failed to create diet entry in database", err, map[string]interface{}{
			"member_id": entry.MemberID,
		})
		return err
	}
	return nil
}

func (r *entryRepository) FindDietByID(id uint) (*model.DietEntry, error) {
	var entry model.DietEntry
	if err := r.db.First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepository) FindDietByMember(memberID uint) ([]model.DietEntry, error) {
	var entries []model.DietEntry
	if err := r.db.Where("member_id = ?", memberID).
		Order("date DESC, id DESC").Find(&entries).Error; err != nil {
		logger.Error("Failed to find diet entries in database", err, map[string]interface{}{
			"member_id": memberID,
		})
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) FindDietByMemberAndDate(memberID uint, date string) ([]model.DietEntry, error) {
	var entries []model.DietEntry
	if err := r.db.Where("member_id = ? AND date = ?", memberID, date).
		Order("id ASC").Find(&entries).Error; err != nil {
		logger.Error("Failed to find diet entries by date in database", err, map[string]interface{}{
			"member_id": memberID,
			"date":      date,
		})
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) UpdateDiet(entry *model.DietEntry) error {
	if err := r.db.Save(entry).Error; err != nil {
		logger.Error("Failed to update diet entry in database", err, map[string]interface{}{
			"entry_id": entry.ID,
		})
		return err
	}
	return nil
}

func (r *entryRepository) DeleteDiet(id uint) error {
	if err := r.db.Delete(&model.DietEntry{}, id).Error; err != nil {
		logger.Error("Failed to delete diet entry from database", err, map[string]interface{}{
			"entry_id": id,
		})
		return err
	}
	return nil
}

func (r *entryRepository) CreateWorkout(entry *model.WorkoutEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		logger.Error("Failed to create workout entry in database", err, map[string]interface{}{
			"member_id": entry.MemberID,
		})
		return err
	}
	return nil
}

func (r *entryRepository) FindWorkoutByID(id uint) (*model.WorkoutEntry, error) {
	var entry model.WorkoutEntry
	if err := r.db.First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepository) FindWorkoutByMember(memberID uint) ([]model.WorkoutEntry, error) {
	var entries []model.WorkoutEntry
	if err := r.db.Where("member_id = ?", memberID).
		Order("date DESC, id DESC").Find(&entries).Error; err != nil {
		logger.Error("Failed to find workout entries in database", err, map[string]interface{}{
			"member_id": memberID,
		})
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) UpdateWorkout(entry *model.WorkoutEntry) error {
	if err := r.db.Save(entry).Error; err != nil {
		logger.Error("Failed to update workout entry in database", err, map[string]interface{}{
			"entry_id": entry.ID,
		})
		return err
	}
	return nil
}

func (r *entryRepository) DeleteWorkout(id uint) error {
	if err := r.db.Delete(&model.WorkoutEntry{}, id).Error; err != nil {
		logger.Error("Failed to delete workout entry from database", err, map[string]interface{}{
			"entry_id": id,
		})
		return err
	}
	return nil
}

func (r *entryRepository) CreateBody(entry *model.BodyEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		logger.Error("Failed to create body entry in database", err, map[string]interface{}{
			"member_id": entry.MemberID,
		})
		return err
	}
	return nil
}

func (r *entryRepository) FindBodyByMember(memberID uint) ([]model.BodyEntry, error) {
	var entries []model.BodyEntry
	if err := r.db.Where("member_id = ?", memberID).
		Order("date ASC, id ASC").Find(&entries).Error; err != nil {
		logger.Error("Failed to find body entries in database", err, map[string]interface{}{
			"member_id": memberID,
		})
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) UpdateBody(entry *model.BodyEntry) error {
	if err := r.db.Save(entry).Error; err != nil {
		logger.Error("Failed to update body entry in database", err, map[string]interface{}{
			"entry_id": entry.ID,
		})
		return err
	}
	return nil
}

func (r *entryRepository) DeleteBody(id uint) error {
	if err := r.db.Delete(&model.BodyEntry{}, id).Error; err != nil {
		logger.Error("Failed to delete body entry from database", err, map[string]interface{}{
			"entry_id": id,
		})
		return err
	}
	return nil
}
