// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/healthapp/healthtrack/internal/auth/service"
	"github.com/healthapp/healthtrack/internal/database"
	"github.com/healthapp/healthtrack/internal/user/domain"
	appValidation "github.com/healthapp/healthtrack/internal/validation"
)

// RegisterUserInput contains the input data for user registration
type RegisterUserInput struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Age       int     `json:"age"`
	Weight    float64 `json:"weight"`
	Lifestyle string  `json:"lifestyle"`
}

// UpdateProfileInput contains the profile fields a user may change.
type UpdateProfileInput struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Age       int     `json:"age"`
	Weight    float64 `json:"weight"`
	Lifestyle string  `json:"lifestyle"`
}

// UseCase defines the interface for user business logic operations
type UseCase interface {
	RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*domain.User, error)
}

// UserRepository interface defines user repository operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// UserUseCase handles user-related business logic
type UserUseCase struct {
	txManager       database.TxManager
	userRepo        UserRepository
	passwordService service.PasswordService
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	passwordService service.PasswordService,
) UseCase {
	return &UserUseCase{
		txManager:       txManager,
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

func lifestyleRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	_, err := domain.ParseLifestyle(s)
	return err
}

func (uc *UserUseCase) validateRegisterUserInput(input RegisterUserInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.FirstName,
			validation.Required.Error("first_name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("first_name must be between 1 and 255 characters"),
		),
		validation.Field(&input.LastName,
			validation.Required.Error("last_name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("last_name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:     8,
				RequireUpper:  true,
				RequireLower:  true,
				RequireNumber: true,
			},
		),
		validation.Field(&input.Age,
			validation.Min(1).Error("age must be positive"),
			validation.Max(150).Error("age must be realistic"),
		),
		validation.Field(&input.Weight,
			validation.Min(0.0).Exclusive().Error("weight must be positive"),
		),
		validation.Field(&input.Lifestyle,
			validation.Required.Error("lifestyle is required"),
			validation.By(lifestyleRule),
		),
	)
	return appValidation.WrapValidationError(err)
}

func (uc *UserUseCase) validateUpdateProfileInput(input UpdateProfileInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.FirstName,
			validation.Required.Error("first_name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("first_name must be between 1 and 255 characters"),
		),
		validation.Field(&input.LastName,
			validation.Required.Error("last_name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("last_name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Age,
			validation.Min(1).Error("age must be positive"),
			validation.Max(150).Error("age must be realistic"),
		),
		validation.Field(&input.Weight,
			validation.Min(0.0).Exclusive().Error("weight must be positive"),
		),
		validation.Field(&input.Lifestyle,
			validation.Required.Error("lifestyle is required"),
			validation.By(lifestyleRule),
		),
	)
	return appValidation.WrapValidationError(err)
}

// RegisterUser registers a new user with a hashed password
func (uc *UserUseCase) RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	if err := uc.validateRegisterUserInput(input); err != nil {
		return nil, err
	}

	lifestyle, err := domain.ParseLifestyle(input.Lifestyle)
	if err != nil {
		return nil, err
	}

	// Only the hash is stored.
	hashedPassword, err := uc.passwordService.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:        uuid.Must(uuid.NewV7()),
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.TrimSpace(strings.ToLower(input.Email)),
		Password:  hashedPassword,
		Age:       input.Age,
		Weight:    input.Weight,
		Lifestyle: lifestyle,
	}

	// Repository maps duplicate email to domain.ErrUserAlreadyExists
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email
func (uc *UserUseCase) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return uc.userRepo.GetByEmail(ctx, email)
}

// GetUserByID retrieves a user by ID
func (uc *UserUseCase) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// UpdateProfile applies profile changes for the given user.
// The read and write run in one transaction so concurrent updates
// cannot interleave.
func (uc *UserUseCase) UpdateProfile(
	ctx context.Context,
	id uuid.UUID,
	input UpdateProfileInput,
) (*domain.User, error) {
	if err := uc.validateUpdateProfileInput(input); err != nil {
		return nil, err
	}

	lifestyle, err := domain.ParseLifestyle(input.Lifestyle)
	if err != nil {
		return nil, err
	}

	var user *domain.User
	err = uc.txManager.WithTx(ctx, func(txCtx context.Context) error {
		user, err = uc.userRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		user.FirstName = strings.TrimSpace(input.FirstName)
		user.LastName = strings.TrimSpace(input.LastName)
		user.Age = input.Age
		user.Weight = input.Weight
		user.Lifestyle = lifestyle

		return uc.userRepo.Update(txCtx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}
