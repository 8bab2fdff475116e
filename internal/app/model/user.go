package model

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string // 사용자 권한 타입

const (
	RoleAdmin   UserRole = "ADMIN"   // 전사 관리자
	RoleManager UserRole = "MANAGER" // 지점장
	RoleTrainer UserRole = "TRAINER" // 트레이너
	RoleMember  UserRole = "MEMBER"  // 회원 계정
)

// PositionBranchManager 지점장 직책. 지점장은 개인 매출 목표를 갖지 않는다.
const PositionBranchManager = "지점장"

// Positions 직책 목록 (직책 선택 UI 및 검증용)
var Positions = []string{
	PositionBranchManager,
	"팀장",
	"부팀장",
	"LV3 트레이너",
	"트레이너",
	"수습1",
	"수습2",
	"수습3",
}

// DefaultTargets 직책별 기본 월 매출 목표 (원). 프로세스 시작 후 불변.
var DefaultTargets = map[string]int64{
	"팀장":       11000000,
	"부팀장":      11000000,
	"LV3 트레이너": 10000000,
	"트레이너":     9000000,
	"수습1":      3500000,
	"수습2":      5500000,
	"수습3":      9000000,
}

// User 직원/회원 계정. 직원(트레이너, 지점장, 관리자)과 회원 로그인 계정을 모두 담는다.
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                           // 사용자 ID
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`              // 로그인 이메일
	PasswordHash string         `gorm:"not null" json:"-"`                              // 비밀번호 해시
	Name         string         `gorm:"not null" json:"name"`                           // 이름
	Role         UserRole       `gorm:"type:varchar(20);default:'TRAINER'" json:"role"` // 권한
	Position     string         `gorm:"type:varchar(40)" json:"position"`               // 직책 (예: 지점장, 팀장, 트레이너)
	BranchName   string         `gorm:"index;type:varchar(60)" json:"branch_name"`      // 소속 지점명 (이름 참조, FK 없음)
	ProfileImage string         `json:"profile_image"`                                  // 프로필 이미지 URL
	MemberID     *uint          `gorm:"index" json:"member_id,omitempty"`               // 회원 계정인 경우 연결된 회원 데이터 ID
	CreatedAt    time.Time      `json:"created_at"`                                     // 생성 시각
	UpdatedAt    time.Time      `json:"updated_at"`                                     // 수정 시각
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                 // 삭제 시각(소프트 삭제)
}

func (User) TableName() string {
	return "users"
}

// IsStaff 매출 목표 집계 대상 여부 (회원 계정 제외)
func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager || u.Role == RoleTrainer
}
