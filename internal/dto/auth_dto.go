package dto

import "github.com/google/uuid"

type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by both signup and login; signup hands out a
// token immediately so no second round trip is needed.
type AuthResponse struct {
	Token  string    `json:"token"`
	UserId uuid.UUID `json:"userId"`
}

type VerifyResponse struct {
	Valid  bool      `json:"valid"`
	UserId uuid.UUID `json:"userId"`
}
