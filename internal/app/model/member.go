package model

import (
	"time"

	"gorm.io/gorm"
)

type MemberStatus string // 회원 상태

const (
	MemberActive   MemberStatus = "active"
	MemberInactive MemberStatus = "inactive"
)

type BehavioralStage string // 행동 변화 단계

const (
	StagePrecontemplation BehavioralStage = "Precontemplation"
	StageContemplation    BehavioralStage = "Contemplation"
	StagePreparation      BehavioralStage = "Preparation"
	StageAction           BehavioralStage = "Action"
	StageMaintenance      BehavioralStage = "Maintenance"
)

// Member PT 회원. TrainerID는 약한 참조로, 퇴사한 트레이너를 가리킬 수 있다.
type Member struct {
	ID                  uint            `gorm:"primarykey" json:"id"`                          // 회원 ID
	Name                string          `gorm:"not null" json:"name"`                          // 이름
	PhoneNumber         string          `gorm:"type:varchar(30)" json:"phone_number"`          // 연락처
	Age                 int             `json:"age"`                                           // 나이
	Gender              string          `gorm:"type:varchar(10)" json:"gender"`                // male / female
	Height              float64         `json:"height"`                                        // 신장 (cm)
	InitialWeight       float64         `json:"initial_weight"`                                // 최초 체중 (kg)
	JoinDate            string          `gorm:"type:varchar(10)" json:"join_date"`             // 등록일 (YYYY-MM-DD)
	ProfileImage        string          `json:"profile_image"`                                 // 프로필 이미지 URL
	Goal                string          `gorm:"type:text" json:"goal"`                         // 운동 목표
	Status              MemberStatus    `gorm:"type:varchar(10);default:'active'" json:"status"` // 활성 여부
	TrainerID           *uint           `gorm:"index" json:"trainer_id,omitempty"`             // 담당 트레이너 (약한 참조, 미배정 가능)
	TotalSessions       int             `json:"total_sessions"`                                // 누적 등록 세션 수
	UsedSessions        int             `json:"used_sessions"`                                 // 사용한 세션 수
	MonthlySessionCount int             `json:"monthly_session_count"`                         // 이번 달 소진 세션 수
	BehavioralStage     BehavioralStage `gorm:"type:varchar(20)" json:"behavioral_stage"`      // 행동 변화 단계
	PaymentAmount       int64           `json:"payment_amount"`                                // 누적 결제 금액 (원)
	Source              SalesSource     `gorm:"type:varchar(20)" json:"source"`                // 최초 유입 경로
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	DeletedAt           gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Member) TableName() string {
	return "members"
}

// RemainingSessions 잔여 세션 수
func (m *Member) RemainingSessions() int {
	return m.TotalSessions - m.UsedSessions
}
