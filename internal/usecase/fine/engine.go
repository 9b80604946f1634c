package fine

import (
	"context"
	"time"

	"toolrental-backend/internal/domain/client"
	configDomain "toolrental-backend/internal/domain/configuration"
	domain "toolrental-backend/internal/domain/fine"
	"toolrental-backend/internal/domain/loan"
	"toolrental-backend/internal/domain/uow"
	configUsecase "toolrental-backend/internal/usecase/configuration"
	"toolrental-backend/pkg/dates"

	"github.com/rs/zerolog"
)

// Engine derives fines from a returned loan. It works on repositories bound
// to the caller's transaction and restricts the client in memory; the caller
// persists the client together with the rest of the return.
type Engine struct {
	log zerolog.Logger
}

func NewEngine(log zerolog.Logger) *Engine {
	return &Engine{log: log.With().Str("component", "fine_engine").Logger()}
}

// CreateForLateReturn charges daily_late_fee per whole day between the due
// date and the return date. Returns nil when the loan is not late.
func (e *Engine) CreateForLateReturn(ctx context.Context, r uow.Repos, l *loan.Loan, c *client.Client, today time.Time) (*domain.Fine, error) {
	if l.ReturnDate == nil || !l.ReturnDate.After(l.DueDate) {
		return nil, nil
	}
	overdue := dates.DaysBetween(l.DueDate, *l.ReturnDate)
	if overdue <= 0 {
		return nil, nil
	}
	fee, err := configUsecase.LookupFee(ctx, r.Configs, configDomain.KeyDailyLateFee)
	if err != nil {
		return nil, err
	}
	return e.issue(ctx, r, l, c, domain.KindLateReturn, int64(overdue)*fee, today)
}

// CreateForDamage charges amount, normally the tool's replacement value.
func (e *Engine) CreateForDamage(ctx context.Context, r uow.Repos, l *loan.Loan, c *client.Client, amount int64, today time.Time) (*domain.Fine, error) {
	return e.issue(ctx, r, l, c, domain.KindIrreparableDamage, amount, today)
}

// CreateForRepairableDamage charges repair_fee. A configured fee of zero
// issues no fine and leaves the client untouched.
func (e *Engine) CreateForRepairableDamage(ctx context.Context, r uow.Repos, l *loan.Loan, c *client.Client, today time.Time) (*domain.Fine, error) {
	fee, err := configUsecase.LookupFee(ctx, r.Configs, configDomain.KeyRepairFee)
	if err != nil {
		return nil, err
	}
	if fee <= 0 {
		e.log.Debug().Uint64("loan_id", l.ID).Msg("repair fee is zero, no fine issued")
		return nil, nil
	}
	return e.issue(ctx, r, l, c, domain.KindRepairableDamage, fee, today)
}

func HasPendingFines(ctx context.Context, repo domain.Repository, clientID uint64) (bool, error) {
	n, err := repo.CountPendingByClientID(ctx, clientID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (e *Engine) issue(ctx context.Context, r uow.Repos, l *loan.Loan, c *client.Client, kind domain.Kind, amount int64, today time.Time) (*domain.Fine, error) {
	f := domain.NewPending(l.ID, kind, amount, today)
	if err := r.Fines.Create(ctx, f); err != nil {
		return nil, err
	}
	c.Restrict()
	e.log.Info().
		Uint64("loan_id", l.ID).
		Uint64("client_id", c.ID).
		Str("kind", string(kind)).
		Int64("amount", amount).
		Msg("fine issued")
	return f, nil
}
