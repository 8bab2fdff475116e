package db

import (
	"fmt"
	"log"

	"github.com/bemove/bemove-backend/internal/app/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database for testing.
// Notification is excluded: its array column is PostgreSQL-only.
func SetupTestDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	// Run migrations
	err = db.AutoMigrate(
		&model.User{},
		&model.Branch{},
		&model.TargetOverride{},
		&model.Member{},
		&model.Transaction{},
		&model.Schedule{},
		&model.Survey{},
		&model.Equipment{},
		&model.EquipmentReport{},
		&model.DietEntry{},
		&model.WorkoutEntry{},
		&model.BodyEntry{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate test database: %w", err)
	}

	return db, nil
}

// CleanupTestDB cleans up the test database
func CleanupTestDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Failed to get DB instance: %v", err)
		return
	}
	sqlDB.Close()
}

// TruncateAllTables removes all data from tables
func TruncateAllTables(db *gorm.DB) error {
	tables := []string{
		"body_entries", "workout_entries", "diet_entries",
		"equipment_reports", "equipments", "surveys", "schedules",
		"transactions", "members", "target_overrides", "branches", "users",
	}
	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return err
		}
	}
	return nil
}
