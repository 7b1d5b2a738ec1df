// Package dto provides data transfer objects for the auth HTTP layer.
package dto

// LoginRequest represents the API request for user login.
// Credential validation happens in the auth use case so the handler
// stays a thin binding layer.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
