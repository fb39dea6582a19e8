package request

import (
	"strings"

	"ecopontos_arapiraca/internal/usecase"
)

// RegisterRequest is the payload for the /auth/register* endpoints. The role
// is decided by the endpoint, never by the payload.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (r RegisterRequest) ResolveCommand() usecase.RegisterCommand {
	return usecase.RegisterCommand{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Password: r.Password,
	}
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest is the payload for PUT /users/:id. Every field is
// optional. Role is deliberately absent: accounts never change role.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Approved *bool   `json:"approved"`
}

func (r UpdateUserRequest) ResolveCommand() usecase.UpdateUserCommand {
	return usecase.UpdateUserCommand{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Approved: r.Approved,
	}
}
