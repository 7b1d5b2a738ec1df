package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/healthapp/healthtrack/internal/auth/domain"
	authHTTP "github.com/healthapp/healthtrack/internal/auth/http"
	"github.com/healthapp/healthtrack/internal/user/domain"
	"github.com/healthapp/healthtrack/internal/user/http/dto"
	"github.com/healthapp/healthtrack/internal/user/usecase"
)

// mockUserUseCase is a mock implementation of usecase.UseCase for testing.
type mockUserUseCase struct {
	mock.Mock
}

func (m *mockUserUseCase) RegisterUser(
	ctx context.Context,
	input usecase.RegisterUserInput,
) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserUseCase) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserUseCase) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserUseCase) UpdateProfile(
	ctx context.Context,
	id uuid.UUID,
	input usecase.UpdateProfileInput,
) (*domain.User, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// identityMiddleware injects a fixed identity, standing in for the
// authentication middleware.
func identityMiddleware(identity *authDomain.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := authHTTP.WithIdentity(c.Request.Context(), identity)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func newUserFixture() *domain.User {
	return &domain.User{
		ID:        uuid.Must(uuid.NewV7()),
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "$argon2id$encoded-hash",
		Age:       30,
		Weight:    65.5,
		Lifestyle: domain.LifestyleModeratelyActive,
	}
}

func TestUserHandler_RegisterUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("successful registration", func(t *testing.T) {
		uc := new(mockUserUseCase)
		handler := NewUserHandler(uc, newTestLogger())
		router := gin.New()
		router.POST("/api/users", handler.RegisterUser)

		user := newUserFixture()
		uc.On("RegisterUser", mock.Anything, mock.Anything).Return(user, nil)

		body, err := json.Marshal(dto.RegisterUserRequest{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Password:  "Sup3rSecret",
			Age:       30,
			Weight:    65.5,
			Lifestyle: "moderately_active",
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusCreated, recorder.Code)

		var response dto.UserResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, user.ID, response.ID)
		assert.NotContains(t, recorder.Body.String(), "argon2id")
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		uc := new(mockUserUseCase)
		handler := NewUserHandler(uc, newTestLogger())
		router := gin.New()
		router.POST("/api/users", handler.RegisterUser)

		uc.On("RegisterUser", mock.Anything, mock.Anything).
			Return(nil, domain.ErrUserAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func TestUserHandler_GetProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the profile of the token subject", func(t *testing.T) {
		uc := new(mockUserUseCase)
		handler := NewUserHandler(uc, newTestLogger())

		user := newUserFixture()
		router := gin.New()
		router.GET("/api/users/profile",
			identityMiddleware(&authDomain.Identity{UserID: user.ID, Email: user.Email}),
			handler.GetProfile,
		)

		uc.On("GetUserByID", mock.Anything, user.ID).Return(user, nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/users/profile", nil))

		require.Equal(t, http.StatusOK, recorder.Code)

		var response dto.UserResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, user.ID, response.ID)
		assert.Equal(t, "moderately_active", response.Lifestyle)
	})

	t.Run("missing identity returns 401", func(t *testing.T) {
		uc := new(mockUserUseCase)
		handler := NewUserHandler(uc, newTestLogger())
		router := gin.New()
		router.GET("/api/users/profile", handler.GetProfile)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/users/profile", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		uc.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
	})
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	uc := new(mockUserUseCase)
	handler := NewUserHandler(uc, newTestLogger())

	user := newUserFixture()
	router := gin.New()
	router.PUT("/api/users/profile",
		identityMiddleware(&authDomain.Identity{UserID: user.ID, Email: user.Email}),
		handler.UpdateProfile,
	)

	updated := *user
	updated.Weight = 70.0
	uc.On("UpdateProfile", mock.Anything, user.ID, usecase.UpdateProfileInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Age:       31,
		Weight:    70.0,
		Lifestyle: "very_active",
	}).Return(&updated, nil)

	body, err := json.Marshal(dto.UpdateProfileRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Age:       31,
		Weight:    70.0,
		Lifestyle: "very_active",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/users/profile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	uc.AssertExpectations(t)
}
