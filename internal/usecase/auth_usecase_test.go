package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/service-directory/internal/domain"
	"github.com/service-directory/internal/pkg/errors"
	"github.com/service-directory/internal/pkg/token"
	"github.com/service-directory/internal/usecase"
	"github.com/service-directory/internal/usecase/dto"
)

func newAuthUseCase(userRepo *MockUserRepository) (*usecase.AuthUseCase, *token.Manager) {
	tokens := token.NewManager("test-secret", time.Hour)
	return usecase.NewAuthUseCase(userRepo, tokens, zap.NewNop()), tokens
}

func TestAuthUseCase_Register(t *testing.T) {
	ctx := context.Background()

	req := dto.RegisterRequest{
		Username: "hanoi_local",
		Email:    "local@example.com",
		Password: "secret-pass",
	}

	t.Run("success issues a verifiable token", func(t *testing.T) {
		userRepo := &MockUserRepository{}
		uc, tokens := newAuthUseCase(userRepo)

		userRepo.On("Exists", ctx, req.Email, req.Username).Return(false, nil)
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			// The stored hash must verify against the raw password.
			return u.Username == req.Username &&
				u.Email == req.Email &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) == nil
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 7
		}).Return(nil)

		resp, err := uc.Register(ctx, req)
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, int64(7), resp.User.ID)

		claims, err := tokens.Verify(resp.Token)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, req.Email, claims.Email)
	})

	t.Run("duplicate email or username", func(t *testing.T) {
		userRepo := &MockUserRepository{}
		uc, _ := newAuthUseCase(userRepo)

		userRepo.On("Exists", ctx, req.Email, req.Username).Return(true, nil)

		resp, err := uc.Register(ctx, req)
		assert.Nil(t, resp)
		assert.Equal(t, errors.ErrUserExists, err)

		appErr := err.(*errors.AppError)
		assert.Equal(t, "User with this email or username already exists", appErr.Message)
		userRepo.AssertNotCalled(t, "Create")
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	assert.NoError(t, err)

	user := &domain.User{
		ID:           3,
		Username:     "hanoi_local",
		Email:        "local@example.com",
		PasswordHash: string(hash),
	}

	t.Run("success", func(t *testing.T) {
		userRepo := &MockUserRepository{}
		uc, tokens := newAuthUseCase(userRepo)

		userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)

		resp, err := uc.Login(ctx, dto.LoginRequest{Email: user.Email, Password: "secret-pass"})
		assert.NoError(t, err)
		assert.Equal(t, user, resp.User)

		claims, err := tokens.Verify(resp.Token)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := &MockUserRepository{}
		uc, _ := newAuthUseCase(userRepo)

		userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)

		resp, err := uc.Login(ctx, dto.LoginRequest{Email: user.Email, Password: "wrong"})
		assert.Nil(t, resp)
		assert.Equal(t, errors.ErrInvalidCredentials, err)
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		userRepo := &MockUserRepository{}
		uc, _ := newAuthUseCase(userRepo)

		userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, errors.ErrInvalidCredentials)

		resp, err := uc.Login(ctx, dto.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
		assert.Nil(t, resp)
		assert.Equal(t, errors.ErrInvalidCredentials, err)
	})
}
