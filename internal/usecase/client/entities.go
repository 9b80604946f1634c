package client

import "time"

type CreateClientInput struct {
	Name       string `json:"name" validate:"required,max=200"`
	NationalID string `json:"national_id" validate:"omitempty,rut"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"omitempty,max=40"`
}

type ClientDTO struct {
	ID         uint64    `json:"id"`
	ExternalID string    `json:"external_id,omitempty"`
	Name       string    `json:"name"`
	NationalID string    `json:"national_id"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
