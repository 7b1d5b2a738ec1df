package dto

import (
	"github.com/healthapp/healthtrack/internal/auth/usecase"
)

// ToLoginInput converts a LoginRequest DTO to a LoginInput use case input.
func ToLoginInput(req LoginRequest) usecase.LoginInput {
	return usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}
}

// ToLoginResponse converts a LoginOutput to a LoginResponse DTO.
func ToLoginResponse(output *usecase.LoginOutput) LoginResponse {
	return LoginResponse{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
		UserID:    output.User.ID,
		FirstName: output.User.FirstName,
		LastName:  output.User.LastName,
		Email:     output.User.Email,
	}
}
