package model

import (
	"time"
)

// Branch 지점. 이름이 사실상의 식별자이며 직원 레코드와 목표 오버라이드가
// 이름으로 참조한다. 이름 변경/삭제 시 참조를 직접 갱신해야 한다.
type Branch struct {
	ID        uint      `gorm:"primarykey" json:"id"`                          // 내부 PK
	Name      string    `gorm:"uniqueIndex;not null;type:varchar(60)" json:"name"` // 지점명 (공유 참조 키)
	CreatedAt time.Time `json:"created_at"`                                    // 생성 시각
	UpdatedAt time.Time `json:"updated_at"`                                    // 수정 시각
}

func (Branch) TableName() string {
	return "branches"
}
