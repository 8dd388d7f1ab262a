package auth

import (
	"time"

	"inkpress/internal/domain/entity"
)

// UserDTO is the JSON shape of an account. The password hash is never
// part of it.
type UserDTO struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Avatar    *entity.Image `json:"avatar,omitempty"`
	Bio       string        `json:"bio,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

func toUserDTO(u *entity.User) UserDTO {
	return UserDTO{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
	}
}

// sessionResponse is the register/login success envelope.
type sessionResponse struct {
	Success bool    `json:"success"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}

// meResponse is the current-account envelope.
type meResponse struct {
	Success bool    `json:"success"`
	User    UserDTO `json:"user"`
}
