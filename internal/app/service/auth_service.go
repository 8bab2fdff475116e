package service

import (
	"errors"
	"time"

	"github.com/bemove/bemove-backend/internal/app/model"
	"github.com/bemove/bemove-backend/internal/app/repository"
	"github.com/bemove/bemove-backend/pkg/logger"
	"github.com/bemove/bemove-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("이미 사용 중인 이메일입니다")
	ErrInvalidCredentials = errors.New("이메일 또는 비밀번호가 올바르지 않습니다")
	ErrUserNotFound       = errors.New("사용자를 찾을 수 없습니다")
)

type AuthService interface {
	Login(email, password string) (*model.User, *util.TokenPair, error)
	RegisterMemberAccount(email, password, name string, memberID uint) (*model.User, *util.TokenPair, error)
	Refresh(refreshToken string) (*util.TokenPair, error)
	GetUserByID(id uint) (*model.User, error)
	ChangePassword(userID uint, currentPassword, newPassword string) error
}

type authService struct {
	userRepo      repository.UserRepository
	memberRepo    repository.MemberRepository
	jwtSecret     string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	memberRepo repository.MemberRepository,
	jwtSecret string,
	accessExpiry, refreshExpiry time.Duration,
) AuthService {
	return &authService{
		userRepo:      userRepo,
		memberRepo:    memberRepo,
		jwtSecret:     jwtSecret,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

func (s *authService) Login(email, password string) (*model.User, *util.TokenPair, error) {
	logger.Info("Login attempt", map[string]interface{}{
		"email": email,
	})

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Login failed: user not found", map[string]interface{}{
				"email": email,
			})
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !util.VerifyPassword(user.PasswordHash, password) {
		logger.Warn("Login failed: invalid password", map[string]interface{}{
			"email": email,
		})
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := util.GenerateTokenPair(
		user.ID,
		user.Email,
		string(user.Role),
		s.jwtSecret,
		s.accessExpiry,
		s.refreshExpiry,
	)
	if err != nil {
		logger.Error("Failed to generate tokens", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, nil, err
	}

	logger.Info("Login successful", map[string]interface{}{
		"user_id": user.ID,
		"email":   email,
		"role":    user.Role,
	})
	return user, tokens, nil
}

// RegisterMemberAccount 회원 본인용 로그인 계정 생성. 회원 데이터와 연결된다.
func (s *authService) RegisterMemberAccount(email, password, name string, memberID uint) (*model.User, *util.TokenPair, error) {
	existing, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, ErrEmailAlreadyExists
	}

	if _, err := s.memberRepo.FindByID(memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrMemberNotFound
		}
		return nil, nil, err
	}

	hashedPassword, err := util.HashPassword(password)
	if err != nil {
		return nil, nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hashedPassword,
		Name:         name,
		Role:         model.RoleMember,
		MemberID:     &memberID,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, nil, err
	}

	tokens, err := util.GenerateTokenPair(
		user.ID,
		user.Email,
		string(user.Role),
		s.jwtSecret,
		s.accessExpiry,
		s.refreshExpiry,
	)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Member account registered", map[string]interface{}{
		"user_id":   user.ID,
		"member_id": memberID,
	})
	return user, tokens, nil
}

func (s *authService) Refresh(refreshToken string) (*util.TokenPair, error) {
	claims, err := util.ValidateToken(refreshToken, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != "refresh" {
		return nil, util.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return util.GenerateTokenPair(
		user.ID,
		user.Email,
		string(user.Role),
		s.jwtSecret,
		s.accessExpiry,
		s.refreshExpiry,
	)
}

func (s *authService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) ChangePassword(userID uint, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !util.VerifyPassword(user.PasswordHash, currentPassword) {
		return ErrInvalidCredentials
	}

	hashedPassword, err := util.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hashedPassword
	return s.userRepo.Update(user)
}
