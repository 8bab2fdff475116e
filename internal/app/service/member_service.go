package service

import (
	"errors"

	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/internal/app/repository"
	"github.com/bemove/bemove-backend/pkg/logger"
	"gorm.io/gorm"
)

// ErrMemberRecordNotFound 회원 권한 계정이지만 연결된 회원 데이터가 없는 경우.
// 임의의 다른 회원으로 대체하지 않고 명시적으로 실패한다.
var ErrMemberRecordNotFound = errors.New("계정에 연결된 회원 정보를 찾을 수 없습니다")

// MemberUpdateInput 회원 정보 수정 입력. nil 필드는 변경하지 않는다.
type MemberUpdateInput struct {
	Name            *string
	PhoneNumber     *string
	Age             *int
	Gender          *string
	Height          *float64
	InitialWeight   *float64
	Goal            *string
	Status          *model.MemberStatus
	TrainerID       *uint
	Unassign        bool // true면 담당 트레이너 해제
	BehavioralStage *model.BehavioralStage
}

type MemberService interface {
	CreateMember(member *model.Member) (*model.Member, error)
	GetMember(id uint) (*model.Member, error)
	// MembersForViewer 호출자 권한에 따른 회원 목록.
	// 트레이너는 본인 담당 + 미배정 회원만, 지점장/관리자는 전체를 본다.
	MembersForViewer(viewer *model.User) ([]model.Member, error)
	// MemberForAccount 회원 계정에 연결된 회원 데이터 조회.
	MemberForAccount(viewer *model.User) (*model.Member, error)
	// MemberVisibleTo 대상 회원이 호출자의 조회 범위에 포함되는지 판단한다.
	// 기록/일정 등 회원 단위 데이터 접근은 이 판정을 거쳐야 한다.
	MemberVisibleTo(viewer *model.User, memberID uint) (bool, error)
	UpdateMember(id uint, input MemberUpdateInput) (*model.Member, error)
	DeleteMember(id uint) error
}

type memberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(memberRepo repository.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

func (s *memberService) CreateMember(member *model.Member) (*model.Member, error) {
	if member.Status == "" {
		member.Status = model.MemberActive
	}
	if err := s.memberRepo.Create(member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *memberService) GetMember(id uint) (*model.Member, error) {
	member, err := s.memberRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

func (s *memberService) MembersForViewer(viewer *model.User) ([]model.Member, error) {
	switch viewer.Role {
	case model.RoleAdmin, model.RoleManager:
		return s.memberRepo.FindAll()
	case model.RoleTrainer:
		return s.memberRepo.FindAssignedOrUnassigned(viewer.ID)
	default:
		return []model.Member{}, nil
	}
}

func (s *memberService) MemberVisibleTo(viewer *model.User, memberID uint) (bool, error) {
	switch viewer.Role {
	case model.RoleAdmin, model.RoleManager:
		return true, nil
	case model.RoleTrainer:
		member, err := s.memberRepo.FindByID(memberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, ErrMemberNotFound
			}
			return false, err
		}
		// 트레이너는 본인 담당 회원과 미배정 회원만 본다
		return member.TrainerID == nil || *member.TrainerID == viewer.ID, nil
	case model.RoleMember:
		return viewer.MemberID != nil && *viewer.MemberID == memberID, nil
	default:
		return false, nil
	}
}

func (s *memberService) MemberForAccount(viewer *model.User) (*model.Member, error) {
	if viewer.MemberID == nil {
		logger.Warn("Member account has no linked member record", map[string]interface{}{
			"user_id": viewer.ID,
		})
		return nil, ErrMemberRecordNotFound
	}

	member, err := s.memberRepo.FindByID(*viewer.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Linked member record does not exist", map[string]interface{}{
				"user_id":   viewer.ID,
				"member_id": *viewer.MemberID,
			})
			return nil, ErrMemberRecordNotFound
		}
		return nil, err
	}
	return member, nil
}

func (s *memberService) UpdateMember(id uint, input MemberUpdateInput) (*model.Member, error) {
	member, err := s.memberRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		member.Name = *input.Name
	}
	if input.PhoneNumber != nil {
		member.PhoneNumber = *input.PhoneNumber
	}
	if input.Age != nil {
		member.Age = *input.Age
	}
	if input.Gender != nil {
		member.Gender = *input.Gender
	}
	if input.Height != nil {
		member.Height = *input.Height
	}
	if input.InitialWeight != nil {
		member.InitialWeight = *input.InitialWeight
	}
	if input.Goal != nil {
		member.Goal = *input.Goal
	}
	if input.Status != nil {
		member.Status = *input.Status
	}
	if input.BehavioralStage != nil {
		member.BehavioralStage = *input.BehavioralStage
	}
	if input.Unassign {
		member.TrainerID = nil
	} else if input.TrainerID != nil {
		member.TrainerID = input.TrainerID
	}

	if err := s.memberRepo.Update(member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *memberService) DeleteMember(id uint) error {
	if _, err := s.memberRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	return s.memberRepo.Delete(id)
}
