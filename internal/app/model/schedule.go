package model

import (
	"time"
)

type ScheduleType string // 일정 유형

const (
	SchedulePT           ScheduleType = "PT"           // PT 세션
	ScheduleConsultation ScheduleType = "Consultation" // 상담
)

// Schedule 트레이너 일정. MemberName은 생성 시점 스냅샷이다.
type Schedule struct {
	ID              uint         `gorm:"primarykey" json:"id"`
	TrainerID       uint         `gorm:"index;not null" json:"trainer_id"`
	MemberID        *uint        `gorm:"index" json:"member_id,omitempty"`
	MemberName      string       `gorm:"not null" json:"member_name"`
	Type            ScheduleType `gorm:"type:varchar(20);default:'PT'" json:"type"`
	StartTime       time.Time    `gorm:"index;not null" json:"start_time"`
	DurationMinutes int          `gorm:"default:50" json:"duration_minutes"`
	Completed       bool         `gorm:"default:false" json:"completed"` // 완료 시 회원 세션 차감
	Memo            string       `gorm:"type:text" json:"memo"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

func (Schedule) TableName() string {
	return "schedules"
}
