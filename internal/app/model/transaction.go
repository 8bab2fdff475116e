package model

import (
	"time"
)

type TransactionType string // 매출 유형

const (
	TransactionNew     TransactionType = "New"     // 신규 등록
	TransactionRenewal TransactionType = "Renewal" // 재등록
)

type SalesSource string // 신규 유입 경로

const (
	SourceOT        SalesSource = "OT"
	SourceReferral  SalesSource = "Referral"
	SourceFreeTrial SalesSource = "FreeTrial"
	SourceWalkIn    SalesSource = "WalkIn"
	SourceOther     SalesSource = "Other"
)

// SalesSources 유입 경로 집계 순서 (통계 응답의 고정 순서)
var SalesSources = []SalesSource{
	SourceOT,
	SourceReferral,
	SourceFreeTrial,
	SourceWalkIn,
	SourceOther,
}

// SourceLabels 유입 경로 한글 표기
var SourceLabels = map[SalesSource]string{
	SourceOT:        "OT",
	SourceReferral:  "지인 소개",
	SourceFreeTrial: "무료 체험",
	SourceWalkIn:    "워크인",
	SourceOther:     "기타",
}

// Transaction 매출 기록. 생성 이후 수정하지 않는 append-only 원장이다.
// Date는 "YYYY-MM-DD" 문자열로 저장하며 월별 집계는 접두사 비교로 수행한다.
// MemberName은 기록 시점의 회원 이름 스냅샷으로, 회원 삭제 후에도 유지된다.
type Transaction struct {
	ID         uint            `gorm:"primarykey" json:"id"`
	TrainerID  uint            `gorm:"index;not null" json:"trainer_id"`            // 담당 트레이너
	MemberID   *uint           `gorm:"index" json:"member_id,omitempty"`            // 회원 (약한 참조)
	MemberName string          `gorm:"not null" json:"member_name"`                 // 회원 이름 스냅샷
	Type       TransactionType `gorm:"type:varchar(10);not null" json:"type"`       // New / Renewal
	Amount     int64           `gorm:"not null" json:"amount"`                      // 금액 (원)
	Sessions   int             `json:"sessions"`                                    // 등록 세션 수
	Source     SalesSource     `gorm:"type:varchar(20)" json:"source,omitempty"`    // 신규 등록 시에만 유효
	Date       string          `gorm:"type:varchar(10);index;not null" json:"date"` // YYYY-MM-DD
	CreatedAt  time.Time       `json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
