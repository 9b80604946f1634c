package loanmock

import (
	"context"
	"time"

	domain "toolrental-backend/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset mutators are no-ops; unset readers return context.Canceled so a
// test notices an unexpected call.
type Repo struct {
	CreateFn                    func(ctx context.Context, l *domain.Loan) error
	SaveFn                      func(ctx context.Context, l *domain.Loan) error
	DeleteFn                    func(ctx context.Context, id uint64) error
	GetByIDFn                   func(ctx context.Context, id uint64) (*domain.Loan, error)
	GetByIDForUpdateFn          func(ctx context.Context, id uint64) (*domain.Loan, error)
	ListOverdueByClientFn       func(ctx context.Context, clientID uint64, today time.Time) ([]domain.Loan, error)
	CountActiveByClientFn       func(ctx context.Context, clientID uint64) (int64, error)
	ExistsActiveForClientToolFn func(ctx context.Context, clientID, toolID uint64) (bool, error)
	ListFn                      func(ctx context.Context, f domain.ListFilter) ([]domain.Loan, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListOverdueByClient(ctx context.Context, clientID uint64, today time.Time) ([]domain.Loan, error) {
	if m.ListOverdueByClientFn != nil {
		return m.ListOverdueByClientFn(ctx, clientID, today)
	}
	return nil, context.Canceled
}

func (m *Repo) CountActiveByClient(ctx context.Context, clientID uint64) (int64, error) {
	if m.CountActiveByClientFn != nil {
		return m.CountActiveByClientFn(ctx, clientID)
	}
	return 0, context.Canceled
}

func (m *Repo) ExistsActiveForClientTool(ctx context.Context, clientID, toolID uint64) (bool, error) {
	if m.ExistsActiveForClientToolFn != nil {
		return m.ExistsActiveForClientToolFn(ctx, clientID, toolID)
	}
	return false, context.Canceled
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, context.Canceled
}
