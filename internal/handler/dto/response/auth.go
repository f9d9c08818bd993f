package response

import (
	"time"

	"gas-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	User         *UserResponse `json:"user"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type RegisterResponse struct {
	ID uuid.UUID `json:"id"`
}

type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromUserView(v *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:          v.ID,
		Email:       v.Email,
		DisplayName: v.DisplayName,
		Role:        v.Role,
		IsActive:    v.IsActive,
		LastLogin:   v.LastLogin,
		CreatedAt:   v.CreatedAt,
	}
}

func FromUserViews(views []*queries.AuthorizedUserView) []*UserResponse {
	res := make([]*UserResponse, len(views))
	for i, v := range views {
		res[i] = FromUserView(v)
	}
	return res
}
