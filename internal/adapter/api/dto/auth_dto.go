package dto

import (
	"time"

	"github.com/dividazero/dividazero-api/internal/domain/profile"
)

// LoginRequest representa a requisição de login por PIN
type LoginRequest struct {
	PIN string `json:"pin" binding:"required,len=6"`
}

// RegisterRequest representa a requisição de criação de conta
type RegisterRequest struct {
	BusinessName string `json:"business_name" binding:"required"`
	Phone        string `json:"phone"`
	PIN          string `json:"pin"`
}

// ProfileResponse representa a resposta de perfil
type ProfileResponse struct {
	ID           string         `json:"id"`
	BusinessName string         `json:"business_name"`
	Phone        string         `json:"phone,omitempty"`
	Status       profile.Status `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
}

// LoginResponse representa a resposta de login
type LoginResponse struct {
	Profile     ProfileResponse `json:"profile"`
	AccessToken string          `json:"access_token"`
	ExpiresAt   time.Time       `json:"expires_at"`
}

// ToProfileResponse converte um Profile para ProfileResponse
func ToProfileResponse(p *profile.Profile) ProfileResponse {
	return ProfileResponse{
		ID:           p.ID,
		BusinessName: p.BusinessName,
		Phone:        p.Phone,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
	}
}
