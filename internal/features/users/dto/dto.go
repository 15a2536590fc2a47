package users_dto

import (
	"time"

	"github.com/google/uuid"
)

// Register/login requests are validated in the service so failures carry
// the exact messages the API contract promises, not binding errors.
type RegisterRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisteredUserDTO struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type RegisterResponseDTO struct {
	User  RegisteredUserDTO `json:"user"`
	Token string            `json:"token"`
}

type LoginUserDTO struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type LoginResponseDTO struct {
	User  LoginUserDTO `json:"user"`
	Token string       `json:"token"`
}
