package model

import (
	"time"
)

// TargetOverride (지점, 직책)별 월 매출 목표 오버라이드.
// 항목이 없으면 직책별 기본 목표(DefaultTargets)를 사용한다.
// 지점 삭제 시 함께 제거되고, 지점명 변경 시 새 이름으로 재키잉된다.
type TargetOverride struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	BranchName string    `gorm:"index:idx_target_branch_position,unique;not null;type:varchar(60)" json:"branch_name"` // 지점명
	Position   string    `gorm:"index:idx_target_branch_position,unique;not null;type:varchar(40)" json:"position"`    // 직책
	Amount     int64     `gorm:"not null" json:"amount"`                                                               // 목표 금액 (원)
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (TargetOverride) TableName() string {
	return "target_overrides"
}
