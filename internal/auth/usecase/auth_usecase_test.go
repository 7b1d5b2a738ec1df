package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/healthapp/healthtrack/internal/auth/domain"
	apperrors "github.com/healthapp/healthtrack/internal/errors"
	userDomain "github.com/healthapp/healthtrack/internal/user/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

// MockTokenService is a mock implementation of service.TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(userID uuid.UUID, email string) (string, time.Time, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) Verify(token string) (*authDomain.Identity, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Identity), args.Error(1)
}

// MockPasswordService is a mock implementation of service.PasswordService
type MockPasswordService struct {
	mock.Mock
}

func (m *MockPasswordService) Hash(plainPassword string) (string, error) {
	args := m.Called(plainPassword)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordService) Compare(plainPassword string, hashedPassword string) bool {
	args := m.Called(plainPassword, hashedPassword)
	return args.Bool(0)
}

func newTestUser() *userDomain.User {
	return &userDomain.User{
		ID:        uuid.Must(uuid.NewV7()),
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "$argon2id$encoded-hash",
		Age:       30,
		Weight:    65.5,
		Lifestyle: userDomain.LifestyleModeratelyActive,
	}
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenService := new(MockTokenService)
		passwordService := new(MockPasswordService)
		uc := NewAuthUseCase(userRepo, tokenService, passwordService)

		user := newTestUser()
		expiresAt := time.Now().UTC().Add(24 * time.Hour)

		userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)
		passwordService.On("Compare", "Sup3rSecret", user.Password).Return(true)
		tokenService.On("Issue", user.ID, user.Email).Return("signed-token", expiresAt, nil)

		output, err := uc.Login(context.Background(), LoginInput{
			Email:    "jane@example.com",
			Password: "Sup3rSecret",
		})

		require.NoError(t, err)
		assert.Equal(t, "signed-token", output.Token)
		assert.Equal(t, expiresAt, output.ExpiresAt)
		assert.Equal(t, user, output.User)
		userRepo.AssertExpectations(t)
		passwordService.AssertExpectations(t)
		tokenService.AssertExpectations(t)
	})

	t.Run("email is normalized before lookup", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenService := new(MockTokenService)
		passwordService := new(MockPasswordService)
		uc := NewAuthUseCase(userRepo, tokenService, passwordService)

		user := newTestUser()
		userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)
		passwordService.On("Compare", "Sup3rSecret", user.Password).Return(true)
		tokenService.On("Issue", user.ID, user.Email).Return("signed-token", time.Now().UTC(), nil)

		_, err := uc.Login(context.Background(), LoginInput{
			Email:    "  Jane@Example.COM  ",
			Password: "Sup3rSecret",
		})

		require.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("unknown email returns invalid credentials", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenService := new(MockTokenService)
		passwordService := new(MockPasswordService)
		uc := NewAuthUseCase(userRepo, tokenService, passwordService)

		userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").
			Return(nil, userDomain.ErrUserNotFound)

		_, err := uc.Login(context.Background(), LoginInput{
			Email:    "nobody@example.com",
			Password: "whatever1",
		})

		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		// No token issuance and no password comparison for a missing account.
		tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
		passwordService.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything)
	})

	t.Run("wrong password returns invalid credentials", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenService := new(MockTokenService)
		passwordService := new(MockPasswordService)
		uc := NewAuthUseCase(userRepo, tokenService, passwordService)

		user := newTestUser()
		userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)
		passwordService.On("Compare", "wrong-password", user.Password).Return(false)

		_, err := uc.Login(context.Background(), LoginInput{
			Email:    "jane@example.com",
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))
		tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
	})

	t.Run("repository failure is not masked as invalid credentials", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenService := new(MockTokenService)
		passwordService := new(MockPasswordService)
		uc := NewAuthUseCase(userRepo, tokenService, passwordService)

		dbErr := apperrors.New("connection refused")
		userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(nil, dbErr)

		_, err := uc.Login(context.Background(), LoginInput{
			Email:    "jane@example.com",
			Password: "Sup3rSecret",
		})

		require.Error(t, err)
		assert.NotErrorIs(t, err, authDomain.ErrInvalidCredentials)
	})

	t.Run("validation failures", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenService := new(MockTokenService)
		passwordService := new(MockPasswordService)
		uc := NewAuthUseCase(userRepo, tokenService, passwordService)

		tests := []struct {
			name  string
			input LoginInput
		}{
			{"empty input", LoginInput{}},
			{"missing password", LoginInput{Email: "jane@example.com"}},
			{"missing email", LoginInput{Password: "Sup3rSecret"}},
			{"invalid email format", LoginInput{Email: "not-an-email", Password: "Sup3rSecret"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Login(context.Background(), tt.input)
				assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
			})
		}
		userRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})
}
