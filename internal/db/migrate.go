package db

import (
	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
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
		&model.Notification{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := seedInitialData(); err != nil {
		logger.Error("Failed to seed initial data during migration", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Seed adds initial data to the database (optional)
func Seed() error {
	return seedInitialData()
}

func seedInitialData() error {
	logger.Info("Seeding initial data...")

	if err := seedBranches(); err != nil {
		logger.Error("Failed to seed branches", err)
		return err
	}

	if err := seedEquipments(); err != nil {
		logger.Error("Failed to seed equipments", err)
		return err
	}

	logger.Info("Initial data seeded successfully")
	return nil
}

// seedBranches 기본 지점 생성 (기존 데이터가 있으면 건너뜀)
func seedBranches() error {
	var count int64
	if err := DB.Model(&model.Branch{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Branches already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	logger.Info("Seeding branch data...")

	names := []string{
		"야음점", "병영점", "구영점", "언양점", "천곡점",
		"상인점", "덕신점", "평산점", "매곡점",
	}

	for _, name := range names {
		if err := DB.Create(&model.Branch{Name: name}).Error; err != nil {
			logger.Error("Failed to create branch", err, map[string]interface{}{
				"name": name,
			})
			return err
		}
	}

	logger.Info("Branches seeded successfully", map[string]interface{}{
		"total_branches": len(names),
	})
	return nil
}

// seedEquipments 기본 기구 카탈로그 생성
func seedEquipments() error {
	var count int64
	if err := DB.Model(&model.Equipment{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Equipments already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	logger.Info("Seeding equipment data...")

	equipments := []model.Equipment{
		{Name: "트레드밀", Category: "유산소", Usage: "벨트 위에서 걷기/달리기. 속도와 경사를 단계적으로 조절한다."},
		{Name: "싸이클", Category: "유산소", Usage: "안장 높이를 무릎이 살짝 굽는 위치로 맞추고 페달링한다."},
		{Name: "체스트 프레스", Category: "가슴", Usage: "손잡이를 가슴 높이에 맞추고 전방으로 밀어낸다."},
		{Name: "랫풀다운", Category: "등", Usage: "바를 쇄골 방향으로 당기며 견갑골을 모은다."},
		{Name: "시티드 로우", Category: "등", Usage: "상체를 고정하고 손잡이를 복부 쪽으로 당긴다."},
		{Name: "레그 프레스", Category: "하체", Usage: "발판을 어깨너비로 밟고 무릎이 90도까지 내려오게 한다."},
		{Name: "레그 익스텐션", Category: "하체", Usage: "패드를 발목 위에 걸고 무릎을 펴며 대퇴사두를 수축한다."},
		{Name: "숄더 프레스", Category: "어깨", Usage: "손잡이를 귀 높이에서 머리 위로 밀어 올린다."},
		{Name: "케이블 머신", Category: "팔", Usage: "풀리 높이를 조절해 컬/익스텐션 등 다양한 동작을 수행한다."},
		{Name: "애브도미널 크런치", Category: "복근·코어", Usage: "상체를 말아 내리며 복부를 수축한다."},
	}

	for _, equipment := range equipments {
		if err := DB.Create(&equipment).Error; err != nil {
			logger.Error("Failed to create equipment", err, map[string]interface{}{
				"name": equipment.Name,
			})
			return err
		}
	}

	logger.Info("Equipments seeded successfully", map[string]interface{}{
		"total_equipments": len(equipments),
	})
	return nil
}
