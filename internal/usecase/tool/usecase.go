package tool

import (
	"context"
	"errors"
	"strings"
	"time"

	"toolrental-backend/internal/domain/kardex"
	domain "toolrental-backend/internal/domain/tool"
	"toolrental-backend/internal/domain/uow"
	kardexUsecase "toolrental-backend/internal/usecase/kardex"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Usecase struct {
	uow uow.UnitOfWork
	log zerolog.Logger
	now func() time.Time
}

func NewUsecase(tx uow.UnitOfWork, log zerolog.Logger) *Usecase {
	return &Usecase{uow: tx, log: log.With().Str("component", "tool").Logger(), now: time.Now}
}

func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// Register adds one available unit and records its intake.
func (u *Usecase) Register(ctx context.Context, in RegisterToolInput, actor string) (*ToolDTO, error) {
	if in.ReplacementValue < 1 {
		return nil, domain.ErrInvalidValue
	}
	t := &domain.Tool{
		Name:             strings.TrimSpace(in.Name),
		Category:         strings.TrimSpace(in.Category),
		ReplacementValue: in.ReplacementValue,
		Stock:            1,
		InitialCondition: in.InitialCondition,
		Status:           domain.StatusAvailable,
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Tools.Create(ctx, t); err != nil {
			return err
		}
		_, err := kardexUsecase.Record(ctx, r.Kardex, t.ID, kardex.KindIntake, u.now(), actor)
		return err
	})
	if err != nil {
		return nil, err
	}
	u.log.Info().Uint64("tool_id", t.ID).Str("name", t.Name).Str("actor", actor).Msg("tool registered")
	return toDTO(t), nil
}

// Retire writes a tool off outside of a return. Loaned tools must come back
// through a return first.
func (u *Usecase) Retire(ctx context.Context, id uint64, actor string) (*ToolDTO, error) {
	var out *ToolDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		t, err := r.Tools.GetByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if t.Status == domain.StatusLoaned {
			return domain.ErrInvalidTransition
		}
		if err := t.Transition(domain.StatusWrittenOff); err != nil {
			return err
		}
		if err := r.Tools.Save(ctx, t); err != nil {
			return err
		}
		if _, err := kardexUsecase.Record(ctx, r.Kardex, t.ID, kardex.KindWriteOff, u.now(), actor); err != nil {
			return err
		}
		out = toDTO(t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Info().Uint64("tool_id", id).Str("actor", actor).Msg("tool retired")
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*ToolDTO, error) {
	t, err := u.uow.Repos().Tools.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(t), nil
}

func (u *Usecase) List(ctx context.Context) ([]ToolDTO, error) {
	ts, err := u.uow.Repos().Tools.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ToolDTO, 0, len(ts))
	for i := range ts {
		out = append(out, *toDTO(&ts[i]))
	}
	return out, nil
}

func toDTO(t *domain.Tool) *ToolDTO {
	return &ToolDTO{
		ID:               t.ID,
		Name:             t.Name,
		Category:         t.Category,
		ReplacementValue: t.ReplacementValue,
		Stock:            t.Stock,
		InitialCondition: t.InitialCondition,
		Status:           string(t.Status),
		CreatedAt:        t.CreatedAt,
	}
}
