package model

import (
	"time"

	"github.com/lib/pq"
)

// Notification 직원 대상 공지/알림. 웹소켓으로 브로드캐스트되고 저장된다.
// ReadBy는 읽은 사용자 ID 배열이다 (PostgreSQL 전용 타입).
type Notification struct {
	ID        uint          `gorm:"primarykey" json:"id"`
	Title     string        `gorm:"not null" json:"title"`
	Body      string        `gorm:"type:text" json:"body"`
	Category  string        `gorm:"type:varchar(30)" json:"category"` // equipment / survey / announcement
	ReadBy    pq.Int64Array `gorm:"type:integer[]" json:"read_by"`
	CreatedAt time.Time     `json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
