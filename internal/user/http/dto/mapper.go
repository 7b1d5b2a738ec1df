package dto

import (
	"github.com/healthapp/healthtrack/internal/user/domain"
	"github.com/healthapp/healthtrack/internal/user/usecase"
)

// ToRegisterUserInput converts a RegisterUserRequest DTO to a use case input.
func ToRegisterUserInput(req RegisterUserRequest) usecase.RegisterUserInput {
	return usecase.RegisterUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Age:       req.Age,
		Weight:    req.Weight,
		Lifestyle: req.Lifestyle,
	}
}

// ToUpdateProfileInput converts an UpdateProfileRequest DTO to a use case input.
func ToUpdateProfileInput(req UpdateProfileRequest) usecase.UpdateProfileInput {
	return usecase.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
		Weight:    req.Weight,
		Lifestyle: req.Lifestyle,
	}
}

// ToUserResponse converts a domain User model to a UserResponse DTO.
// This enforces the boundary between internal domain models and the API
// contract, keeping the password hash out of responses.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Age:       user.Age,
		Weight:    user.Weight,
		Lifestyle: string(user.Lifestyle),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
