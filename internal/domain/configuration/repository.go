package configuration

import "context"

type Repository interface {
	GetByKey(ctx context.Context, key string) (*Config, error)
	// Save inserts the row when ID is zero, otherwise overwrites it.
	Save(ctx context.Context, c *Config) error
}
