package db

import (
	"toolrental-backend/internal/domain/client"
	"toolrental-backend/internal/domain/configuration"
	"toolrental-backend/internal/domain/fine"
	"toolrental-backend/internal/domain/kardex"
	"toolrental-backend/internal/domain/loan"
	"toolrental-backend/internal/domain/tool"

	"gorm.io/gorm"
)

// Models lists every table in dependency order.
func Models() []any {
	return []any{
		&tool.Tool{},
		&client.Client{},
		&loan.Loan{},
		&fine.Fine{},
		&kardex.Entry{},
		&configuration.Config{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
