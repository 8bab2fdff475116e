package model

import (
	"time"
)

// EquipmentCategories 운동 기구 분류
var EquipmentCategories = []string{
	"유산소",
	"가슴",
	"등",
	"하체",
	"어깨",
	"팔",
	"복근·코어",
	"기타",
}

// Equipment 센터 운동 기구 카탈로그. 이름으로 유일하다.
type Equipment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null;type:varchar(100)" json:"name"`
	Category  string    `gorm:"type:varchar(20);not null" json:"category"`
	ImageURL  string    `json:"image_url"`
	Usage     string    `gorm:"type:text" json:"usage"` // 사용법 설명
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Equipment) TableName() string {
	return "equipments"
}

type ReportStatus string // 기구 등록 요청 상태

const (
	ReportPending  ReportStatus = "pending"
	ReportApproved ReportStatus = "approved"
	ReportRejected ReportStatus = "rejected"
)

// EquipmentReport 트레이너가 올리는 신규 기구 등록 요청.
// 승인 시 카탈로그에 기구가 생성된다.
type EquipmentReport struct {
	ID         uint         `gorm:"primarykey" json:"id"`
	ReporterID uint         `gorm:"index;not null" json:"reporter_id"` // 요청한 트레이너
	Name       string       `gorm:"not null;type:varchar(100)" json:"name"`
	Category   string       `gorm:"type:varchar(20);not null" json:"category"`
	ImageURL   string       `json:"image_url"`
	Usage      string       `gorm:"type:text" json:"usage"`
	Status     ReportStatus `gorm:"type:varchar(10);default:'pending'" json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func (EquipmentReport) TableName() string {
	return "equipment_reports"
}
