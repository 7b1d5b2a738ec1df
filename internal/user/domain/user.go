// Package domain defines the core user domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthapp/healthtrack/internal/errors"
)

// Lifestyle categorizes a user's physical activity level.
type Lifestyle string

// Valid lifestyle values, from least to most active.
const (
	LifestyleSedentary        Lifestyle = "sedentary"
	LifestyleLightlyActive    Lifestyle = "lightly_active"
	LifestyleModeratelyActive Lifestyle = "moderately_active"
	LifestyleVeryActive       Lifestyle = "very_active"
	LifestyleExtraActive      Lifestyle = "extra_active"
)

// ParseLifestyle converts a string into a Lifestyle, returning
// ErrInvalidLifestyle for unknown values.
func ParseLifestyle(value string) (Lifestyle, error) {
	switch Lifestyle(value) {
	case LifestyleSedentary,
		LifestyleLightlyActive,
		LifestyleModeratelyActive,
		LifestyleVeryActive,
		LifestyleExtraActive:
		return Lifestyle(value), nil
	}
	return "", ErrInvalidLifestyle
}

// User represents a registered account with its health profile.
type User struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Password  string // Argon2id encoded hash, never the plain password
	Age       int
	Weight    float64
	Lifestyle Lifestyle
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrInvalidLifestyle indicates the lifestyle value is not one of the known levels.
	ErrInvalidLifestyle = errors.Wrap(
		errors.ErrInvalidInput,
		"invalid lifestyle, allowed values: sedentary, lightly_active, moderately_active, very_active, extra_active",
	)
)
