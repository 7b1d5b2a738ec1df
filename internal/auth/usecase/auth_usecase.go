package usecase

import (
	"context"
	"errors"
	"strings"

	validation "github.com/jellydator/validation"

	authDomain "github.com/healthapp/healthtrack/internal/auth/domain"
	"github.com/healthapp/healthtrack/internal/auth/service"
	userDomain "github.com/healthapp/healthtrack/internal/user/domain"
	appValidation "github.com/healthapp/healthtrack/internal/validation"
)

// authUseCase implements the AuthUseCase interface.
type authUseCase struct {
	userRepo        UserRepository
	tokenService    service.TokenService
	passwordService service.PasswordService
}

// NewAuthUseCase creates a new authentication use case instance.
func NewAuthUseCase(
	userRepo UserRepository,
	tokenService service.TokenService,
	passwordService service.PasswordService,
) AuthUseCase {
	return &authUseCase{
		userRepo:        userRepo,
		tokenService:    tokenService,
		passwordService: passwordService,
	}
}

func (a *authUseCase) validateLoginInput(input LoginInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// Login verifies the presented credentials and issues a signed token.
//
// An unknown email and a wrong password both return ErrInvalidCredentials so
// the response does not reveal which accounts exist.
func (a *authUseCase) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := a.validateLoginInput(input); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))

	user, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.passwordService.Compare(input.Password, user.Password) {
		return nil, authDomain.ErrInvalidCredentials
	}

	token, expiresAt, err := a.tokenService.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}
