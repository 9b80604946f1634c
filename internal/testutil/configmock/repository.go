package configmock

import (
	"context"

	domain "toolrental-backend/internal/domain/configuration"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies configuration.Repository.
// Unset GetByKeyFn reports the key as missing; unset SaveFn is a no-op.
type Repo struct {
	GetByKeyFn func(ctx context.Context, key string) (*domain.Config, error)
	SaveFn     func(ctx context.Context, c *domain.Config) error
}

// Static returns a Repo serving the given key/value pairs.
func Static(values map[string]string) *Repo {
	return &Repo{
		GetByKeyFn: func(_ context.Context, key string) (*domain.Config, error) {
			v, ok := values[key]
			if !ok {
				return nil, gorm.ErrRecordNotFound
			}
			return &domain.Config{Key: key, Value: v}, nil
		},
	}
}

func (m *Repo) GetByKey(ctx context.Context, key string) (*domain.Config, error) {
	if m.GetByKeyFn != nil {
		return m.GetByKeyFn(ctx, key)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) Save(ctx context.Context, c *domain.Config) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}
