package dto

import (
	"time"

	"github.com/GlebRadaev/betledger/internal/domain"
	"github.com/google/uuid"
)

type RegisterRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50" example:"punter"`
	Password string `json:"password" validate:"required,min=8,max=72" example:"password123"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50" example:"punter"`
	Password string `json:"password" validate:"required,min=8" example:"password123"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

type UpdateUserRequestDTO struct {
	Email     string `json:"email" validate:"omitempty,email" example:"punter@example.com"`
	FirstName string `json:"firstName" validate:"max=100" example:"Alex"`
	LastName  string `json:"lastName" validate:"max=100" example:"Smith"`
}

func (r UpdateUserRequestDTO) ToDomain() domain.UserProfile {
	return domain.UserProfile{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

type UserResponseDTO struct {
	ID        uuid.UUID `json:"id" example:"3f2c1e9a-6a55-4f0e-9b7b-4f1a8e2f6c11"`
	Login     string    `json:"login" example:"punter"`
	Email     string    `json:"email" example:"punter@example.com"`
	FirstName string    `json:"firstName" example:"Alex"`
	LastName  string    `json:"lastName" example:"Smith"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewUserResponse(u *domain.User) UserResponseDTO {
	return UserResponseDTO{
		ID:        u.ID,
		Login:     u.Login,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type MessageResponseDTO struct {
	Message string `json:"message"`
}
