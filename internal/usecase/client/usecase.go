package client

import (
	"context"
	"errors"
	"strings"

	domain "toolrental-backend/internal/domain/client"
	"toolrental-backend/internal/domain/uow"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Usecase struct {
	uow uow.UnitOfWork
	log zerolog.Logger
}

func NewUsecase(tx uow.UnitOfWork, log zerolog.Logger) *Usecase {
	return &Usecase{uow: tx, log: log.With().Str("component", "client").Logger()}
}

// FindOrCreate returns the client bound to id.Subject, creating it from the
// identity claims on first use. The row comes back locked when repo is bound
// to a transaction.
func FindOrCreate(ctx context.Context, repo domain.Repository, id domain.Identity) (*domain.Client, bool, error) {
	if strings.TrimSpace(id.Subject) == "" {
		return nil, false, domain.ErrMissingIdentity
	}
	c, err := repo.GetByExternalIDForUpdate(ctx, id.Subject)
	if err == nil {
		return c, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	c = domain.NewFromIdentity(id)
	if err := repo.Create(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, false, domain.ErrFirstUseConflict
		}
		return nil, false, err
	}
	return c, true, nil
}

// RetryFirstUse runs fn in a transaction and, when it lost a first-use race,
// once more in a fresh one, where the winner's row is visible.
func RetryFirstUse(ctx context.Context, tx uow.UnitOfWork, fn func(r uow.Repos) error) error {
	err := tx.WithinTx(ctx, fn)
	if errors.Is(err, domain.ErrFirstUseConflict) {
		err = tx.WithinTx(ctx, fn)
	}
	return err
}

// Me resolves the caller's own client record.
func (u *Usecase) Me(ctx context.Context, id domain.Identity) (*ClientDTO, error) {
	var out *ClientDTO
	err := RetryFirstUse(ctx, u.uow, func(r uow.Repos) error {
		c, created, err := FindOrCreate(ctx, r.Clients, id)
		if err != nil {
			return err
		}
		if created {
			u.log.Info().Uint64("client_id", c.ID).Str("subject", id.Subject).Msg("client created from identity")
		}
		out = toDTO(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create registers a walk-in client that has no identity-provider account.
func (u *Usecase) Create(ctx context.Context, in CreateClientInput) (*ClientDTO, error) {
	c := &domain.Client{
		Name:       strings.TrimSpace(in.Name),
		NationalID: in.NationalID,
		Email:      in.Email,
		Phone:      in.Phone,
		Status:     domain.StatusActive,
	}
	if err := u.uow.Repos().Clients.Create(ctx, c); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*ClientDTO, error) {
	c, err := u.uow.Repos().Clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) List(ctx context.Context) ([]ClientDTO, error) {
	cs, err := u.uow.Repos().Clients.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ClientDTO, 0, len(cs))
	for i := range cs {
		out = append(out, *toDTO(&cs[i]))
	}
	return out, nil
}

func toDTO(c *domain.Client) *ClientDTO {
	dto := &ClientDTO{
		ID:         c.ID,
		Name:       c.Name,
		NationalID: c.NationalID,
		Email:      c.Email,
		Phone:      c.Phone,
		Status:     string(c.Status),
		CreatedAt:  c.CreatedAt,
	}
	if c.ExternalID != nil {
		dto.ExternalID = *c.ExternalID
	}
	return dto
}
