package response

import (
	"time"

	"ecopontos_arapiraca/internal/domain/entities"
)

// UserResponse is the public projection of an account. The password hash
// never leaves the persistence layer.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Approved:  u.Approved,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromUsers(items []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(items))
	for _, u := range items {
		out = append(out, FromUser(u))
	}
	return out
}

// LoginResponse carries the issued bearer token with the authenticated
// account.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
