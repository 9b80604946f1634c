package gormrepo

import (
	"context"

	configDomain "toolrental-backend/internal/domain/configuration"

	"gorm.io/gorm"
)

type ConfigRepository struct{ db *gorm.DB }

func NewConfigRepository(db *gorm.DB) *ConfigRepository { return &ConfigRepository{db: db} }

func (r *ConfigRepository) GetByKey(ctx context.Context, key string) (*configDomain.Config, error) {
	var out configDomain.Config
	if err := r.db.WithContext(ctx).Where("config_key = ?", key).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ConfigRepository) Save(ctx context.Context, c *configDomain.Config) error {
	return r.db.WithContext(ctx).Save(c).Error
}
