package usecase

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/service-directory/internal/domain"
	"github.com/service-directory/internal/domain/repository"
	"github.com/service-directory/internal/pkg/errors"
	"github.com/service-directory/internal/pkg/token"
	"github.com/service-directory/internal/usecase/dto"
)

// AuthUseCase - регистрация и вход пользователей
type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
	logger   *zap.Logger
}

// NewAuthUseCase - создание нового AuthUseCase
func NewAuthUseCase(
	userRepo repository.UserRepository,
	tokens *token.Manager,
	logger *zap.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates an account and signs the first token.
func (uc *AuthUseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	exists, err := uc.userRepo.Exists(ctx, req.Email, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return uc.issueFor(user)
}

// Login verifies credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	return uc.issueFor(user)
}

func (uc *AuthUseCase) issueFor(user *domain.User) (*dto.AuthResponse, error) {
	t, err := uc.tokens.Issue(user.ID, user.Email)
	if err != nil {
		uc.logger.Error("Failed to issue token", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	return &dto.AuthResponse{
		Token: t,
		User:  user,
	}, nil
}
