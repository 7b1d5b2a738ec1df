package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserResponse represents the API response for a user.
// It excludes the stored password hash.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	Weight    float64   `json:"weight"`
	Lifestyle string    `json:"lifestyle"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
