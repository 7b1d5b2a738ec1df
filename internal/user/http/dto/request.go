// Package dto provides data transfer objects for the user HTTP layer.
package dto

// RegisterUserRequest represents the API request for user registration.
// Field validation lives in the user use case.
type RegisterUserRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Age       int     `json:"age"`
	Weight    float64 `json:"weight"`
	Lifestyle string  `json:"lifestyle"`
}

// UpdateProfileRequest represents the API request for profile updates.
type UpdateProfileRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Age       int     `json:"age"`
	Weight    float64 `json:"weight"`
	Lifestyle string  `json:"lifestyle"`
}
