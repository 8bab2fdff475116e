package model

import (
	"time"
)

// DietEntry 회원 식단 기록. 영양 정보는 분석 서비스 추정치이며,
// 분석 실패 시 0값과 실패 설명이 저장된다.
type DietEntry struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	MemberID        uint      `gorm:"index;not null" json:"member_id"`
	Date            string    `gorm:"type:varchar(10);index;not null" json:"date"` // YYYY-MM-DD
	MealType        string    `gorm:"type:varchar(20)" json:"meal_type"`           // breakfast / lunch / dinner / snack
	ImageURL        string    `json:"image_url"`                                   // 식단 사진
	Description     string    `gorm:"type:text" json:"description"`                // 분석 설명
	Calories        float64   `json:"calories"`
	Carbs           float64   `json:"carbs"`   // 탄수화물 (g)
	Protein         float64   `json:"protein"` // 단백질 (g)
	Fat             float64   `json:"fat"`     // 지방 (g)
	TrainerFeedback string    `gorm:"type:text" json:"trainer_feedback"` // 담당 트레이너 코멘트
	CreatedAt       time.Time `json:"created_at"`
}

func (DietEntry) TableName() string {
	return "diet_entries"
}

// WorkoutEntry 회원 개인 운동 기록. 소모 칼로리는 추정치이며
// 분석 실패 시 분당 5kcal로 대체한다.
// 컨디션/수면/통증은 기록 당시의 체크인 데이터다.
type WorkoutEntry struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	MemberID        uint      `gorm:"index;not null" json:"member_id"`
	Date            string    `gorm:"type:varchar(10);index;not null" json:"date"` // YYYY-MM-DD
	ActivityName    string    `gorm:"not null" json:"activity_name"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	CaloriesBurned  float64   `json:"calories_burned"`                  // 추정 소모 칼로리
	ConditionScore  int       `json:"condition_score"`                  // 컨디션 (1~5)
	SleepHours      float64   `json:"sleep_hours"`                      // 수면 시간
	PainLevel       int       `json:"pain_level"`                       // 통증 정도 (0~5)
	Memo            string    `gorm:"type:text" json:"memo"`
	Feedback        string    `gorm:"type:text" json:"feedback"`        // 담당 트레이너 코멘트
	NextGoal        string    `gorm:"type:text" json:"next_goal"`       // 다음 목표
	CreatedAt       time.Time `json:"created_at"`
}

func (WorkoutEntry) TableName() string {
	return "workout_entries"
}

// BodyEntry 회원 체성분 기록. 인바디 결과지 사진에서 추출하거나 직접 입력한다.
// 추출 실패 시 0값으로 저장하고 회원이 수정한다.
type BodyEntry struct {
	ID                uint      `gorm:"primarykey" json:"id"`
	MemberID          uint      `gorm:"index;not null" json:"member_id"`
	Date              string    `gorm:"type:varchar(10);index;not null" json:"date"` // YYYY-MM-DD
	Weight            float64   `json:"weight"`              // 체중 (kg)
	SkeletalMuscle    float64   `json:"skeletal_muscle"`     // 골격근량 (kg)
	BodyFatPercentage float64   `json:"body_fat_percentage"` // 체지방률 (%)
	Score             float64   `json:"score"`               // 인바디 점수
	SheetImageURL     string    `json:"sheet_image_url"`     // 인바디 결과지 사진
	CreatedAt         time.Time `json:"created_at"`
}

func (BodyEntry) TableName() string {
	return "body_entries"
}
