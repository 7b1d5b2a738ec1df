// Package usecase implements the authentication business logic. It
// orchestrates credential verification and token issuance for login.
package usecase

import (
	"context"
	"time"

	userDomain "github.com/healthapp/healthtrack/internal/user/domain"
)

// LoginInput contains the credentials presented at login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginOutput contains the issued token and the authenticated account.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *userDomain.User
}

// AuthUseCase defines the interface for authentication business logic.
type AuthUseCase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}

// UserRepository defines the user lookup operations the login flow needs.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)
}
