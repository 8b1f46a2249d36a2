package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/cimile-club/lineup-api/internal/model"
	"github.com/cimile-club/lineup-api/internal/shared/database"
	"github.com/cimile-club/lineup-api/internal/shared/logger"
	"github.com/cimile-club/lineup-api/internal/shared/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db             *gorm.DB
	userRepository *UserRepository
	tokenManager   token.Manager
}

func NewAuthService(db *gorm.DB, userRepository *UserRepository, tokenManager token.Manager) *AuthService {
	return &AuthService{
		db:             db,
		userRepository: userRepository,
		tokenManager:   tokenManager,
	}
}

func (a *AuthService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)

	// 1. Find user by username
	user, err := a.userRepository.FindByUsername(ctx, a.db, request.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("로그인 실패 - username not found", "username", logger.MaskUsername(request.Username))
			return nil, fmt.Errorf("error %w", ErrIncorrectCredentials) // Security: don't reveal if username exists
		}
		log.Error("로그인 실패 - 알 수 없는 오류", "error", err)
		return nil, fmt.Errorf("로그인 실패: %w", err)
	}

	// 2. Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		log.Warn("로그인 실패 - invalid password", "username", logger.MaskUsername(request.Username))
		return nil, fmt.Errorf("error %w", ErrIncorrectCredentials)
	}

	// 3. Reject inactive accounts
	if !user.IsActive {
		log.Warn("로그인 실패 - inactive user", "username", logger.MaskUsername(request.Username))
		return nil, fmt.Errorf("error %w", ErrInactiveUser)
	}

	// 4. Generate JWT tokens
	accessToken, err := a.tokenManager.GenerateAccessToken(user.Username)
	if err != nil {
		log.Error("access token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := a.tokenManager.GenerateRefreshToken(user.Username)
	if err != nil {
		log.Error("refresh token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	log.Info("로그인 성공", "username", logger.MaskUsername(request.Username))

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         toUserResponse(user),
	}, nil
}

func (a *AuthService) Register(ctx context.Context, request *RegisterRequest) (*UserResponse, error) {
	log := logger.FromContext(ctx)

	role := model.UserRole(request.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("알 수 없는 역할 %q: %w", request.Role, ErrInvalidRole)
	}

	var response *UserResponse
	err := database.WithTransaction(ctx, a.db, func(tx *gorm.DB) error {
		exists, err := a.userRepository.IsExist(ctx, tx, request.Username)
		if err != nil {
			log.Error("사용자 중복 확인 실패", "error", err)
			return fmt.Errorf("check user existence: %w", err)
		}
		if exists {
			log.Warn("이미 존재하는 사용자", "username", logger.MaskUsername(request.Username))
			return fmt.Errorf("error %w", ErrUsernameTaken)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("비밀번호 해시 실패", "error", err)
			return fmt.Errorf("hash password: %w", err)
		}

		user := model.NewUser(request.Username, string(hashedPassword), role)
		if err := a.userRepository.Create(ctx, tx, user); err != nil {
			log.Error("사용자 생성 실패", "error", err)
			return fmt.Errorf("create user: %w", err)
		}

		log.Info("사용자 생성 완료", "username", logger.MaskUsername(request.Username), "role", string(role))
		resp := toUserResponse(user)
		response = &resp
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

func (a *AuthService) GetCurrentUser(ctx context.Context, userID uint32) (*UserResponse, error) {
	user, err := a.userRepository.FindByID(ctx, a.db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("사용자를 찾을 수 없습니다 userID=%d %w", userID, ErrUserNotFound)
		}
		return nil, fmt.Errorf("사용자 조회 실패: %w", err)
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func toUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		IsActive: user.IsActive,
	}
}
