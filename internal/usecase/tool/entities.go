package tool

import "time"

type RegisterToolInput struct {
	Name             string `json:"name" validate:"required,max=200"`
	Category         string `json:"category" validate:"required,max=100"`
	ReplacementValue int64  `json:"replacement_value" validate:"required,gte=1"`
	InitialCondition string `json:"initial_condition" validate:"omitempty,max=255"`
}

type ToolDTO struct {
	ID               uint64    `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	ReplacementValue int64     `json:"replacement_value"`
	Stock            int       `json:"stock"`
	InitialCondition string    `json:"initial_condition"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}
