//go:build unit || e2e

package builder

import (
	reqdto "gas-booking/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email       string
	Password    string
	DisplayName string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:       "test@example.com",
		Password:    "password123",
		DisplayName: "Test User",
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:                a.Email,
		Password:             a.Password,
		PasswordConfirmation: a.Password,
		DisplayName:          a.DisplayName,
	}
}
