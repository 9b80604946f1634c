package configuration

import (
	"time"

	"toolrental-backend/internal/domain/apperr"
)

// Fee keys understood by the lending engine.
const (
	KeyDailyRentalFee = "daily_rental_fee"
	KeyDailyLateFee   = "daily_late_fee"
	KeyRepairFee      = "repair_fee"
)

var (
	ErrNotFound      = apperr.New(apperr.ErrConfigNotFound, "config_not_found", "configuration not found")
	ErrNotNumeric    = apperr.New(apperr.ErrInvalidNumericValue, "config_not_numeric", "configuration value is not a non-negative integer")
	ErrNegativeValue = apperr.New(apperr.ErrInvalidArgument, "config_negative_value", "fee value cannot be negative")
)

type Config struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	Key       string    `gorm:"column:config_key;size:100;not null;uniqueIndex:ux_configurations_key" json:"config_key"`
	Value     string    `gorm:"column:config_value;size:255;not null" json:"config_value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Config) TableName() string { return "configurations" }
