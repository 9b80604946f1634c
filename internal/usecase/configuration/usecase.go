package configuration

import (
	"context"
	"errors"
	"strconv"

	domain "toolrental-backend/internal/domain/configuration"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Usecase struct {
	repo domain.Repository
	log  zerolog.Logger
}

func NewUsecase(r domain.Repository, log zerolog.Logger) *Usecase {
	return &Usecase{repo: r, log: log.With().Str("component", "configuration").Logger()}
}

// LookupFee reads a fee through repo, which may be bound to an open
// transaction. Stored values must be plain non-negative base-10 integers.
func LookupFee(ctx context.Context, repo domain.Repository, key string) (int64, error) {
	cfg, err := repo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return parseFee(cfg.Value)
}

func parseFee(s string) (int64, error) {
	if s == "" {
		return 0, domain.ErrNotNumeric
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, domain.ErrNotNumeric
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, domain.ErrNotNumeric
	}
	return v, nil
}

func (u *Usecase) GetFee(ctx context.Context, key string) (*FeeDTO, error) {
	cfg, err := u.repo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	v, err := parseFee(cfg.Value)
	if err != nil {
		return nil, err
	}
	return &FeeDTO{Key: cfg.Key, Value: v, UpdatedAt: cfg.UpdatedAt}, nil
}

// SetFee creates the key on first use and overwrites it afterwards.
func (u *Usecase) SetFee(ctx context.Context, key string, value int64) (*FeeDTO, error) {
	if value < 0 {
		return nil, domain.ErrNegativeValue
	}
	cfg, err := u.repo.GetByKey(ctx, key)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		cfg = &domain.Config{Key: key}
	default:
		return nil, err
	}
	cfg.Value = strconv.FormatInt(value, 10)
	if err := u.repo.Save(ctx, cfg); err != nil {
		return nil, err
	}
	u.log.Info().Str("key", key).Int64("value", value).Msg("fee updated")
	return &FeeDTO{Key: cfg.Key, Value: value, UpdatedAt: cfg.UpdatedAt}, nil
}
