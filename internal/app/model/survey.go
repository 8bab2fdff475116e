package model

import (
	"time"
)

// Survey 회원이 제출하는 트레이너 만족도 설문. 8개 항목은 1~5점이며,
// Rating은 제출 시점에 8개 항목 평균으로 확정해 저장한다 (항목 추가와 무관하게 불변).
// PrivateComment는 관리자/지점장에게만 노출된다.
type Survey struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	MemberID           uint      `gorm:"index;not null" json:"member_id"`
	MemberName         string    `gorm:"not null" json:"member_name"` // 제출 시점 스냅샷 (회원명 변경과 무관)
	TrainerID          uint      `gorm:"index;not null" json:"trainer_id"`
	Punctuality        int       `gorm:"not null" json:"punctuality"`         // 시간 약속 준수
	GoalAchievement    int       `gorm:"not null" json:"goal_achievement"`    // 목표 달성 지원
	Kindness           int       `gorm:"not null" json:"kindness"`            // 친절도
	Professionalism    int       `gorm:"not null" json:"professionalism"`     // 전문성
	Appearance         int       `gorm:"not null" json:"appearance"`          // 용모/복장
	DurationCompliance int       `gorm:"not null" json:"duration_compliance"` // 수업 시간 준수
	FeedbackReflection int       `gorm:"not null" json:"feedback_reflection"` // 피드백 반영
	Focus              int       `gorm:"not null" json:"focus"`               // 수업 집중도
	Rating             float64   `gorm:"not null" json:"rating"`              // 제출 시점 평균 (불변)
	Comment            string    `gorm:"type:text" json:"comment"`            // 공개 코멘트
	PrivateComment     string    `gorm:"type:text" json:"private_comment,omitempty"` // 비공개 코멘트 (트레이너 비노출)
	CreatedAt          time.Time `json:"created_at"`
}

func (Survey) TableName() string {
	return "surveys"
}

// Scores 8개 항목 점수 슬라이스 (평균 계산/검증용)
func (s *Survey) Scores() []int {
	return []int{
		s.Punctuality, s.GoalAchievement, s.Kindness, s.Professionalism,
		s.Appearance, s.DurationCompliance, s.FeedbackReflection, s.Focus,
	}
}

// TrainerSurveyView 트레이너에게 노출되는 설문 투영. 비공개 코멘트를 제외한다.
type TrainerSurveyView struct {
	ID                 uint      `json:"id"`
	MemberID           uint      `json:"member_id"`
	MemberName         string    `json:"member_name"`
	TrainerID          uint      `json:"trainer_id"`
	Punctuality        int       `json:"punctuality"`
	GoalAchievement    int       `json:"goal_achievement"`
	Kindness           int       `json:"kindness"`
	Professionalism    int       `json:"professionalism"`
	Appearance         int       `json:"appearance"`
	DurationCompliance int       `json:"duration_compliance"`
	FeedbackReflection int       `json:"feedback_reflection"`
	Focus              int       `json:"focus"`
	Rating             float64   `json:"rating"`
	Comment            string    `json:"comment"`
	CreatedAt          time.Time `json:"created_at"`
}

// ToTrainerView 비공개 코멘트를 제거한 투영 생성
func (s *Survey) ToTrainerView() TrainerSurveyView {
	return TrainerSurveyView{
		ID:                 s.ID,
		MemberID:           s.MemberID,
		MemberName:         s.MemberName,
		TrainerID:          s.TrainerID,
		Punctuality:        s.Punctuality,
		GoalAchievement:    s.GoalAchievement,
		Kindness:           s.Kindness,
		Professionalism:    s.Professionalism,
		Appearance:         s.Appearance,
		DurationCompliance: s.DurationCompliance,
		FeedbackReflection: s.FeedbackReflection,
		Focus:              s.Focus,
		Rating:             s.Rating,
		Comment:            s.Comment,
		CreatedAt:          s.CreatedAt,
	}
}
