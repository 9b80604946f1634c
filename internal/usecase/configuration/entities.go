package configuration

import "time"

type FeeDTO struct {
	Key       string    `json:"key"`
	Value     int64     `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
