package loan

import (
	"context"
	"time"
)

// ListFilter narrows List; zero values mean "no filter".
type ListFilter struct {
	ClientExternalID string
}

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error
	Delete(ctx context.Context, id uint64) error
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Loan, error)

	// Eligibility queries used by loan creation.
	ListOverdueByClient(ctx context.Context, clientID uint64, today time.Time) ([]Loan, error)
	CountActiveByClient(ctx context.Context, clientID uint64) (int64, error)
	ExistsActiveForClientTool(ctx context.Context, clientID, toolID uint64) (bool, error)

	// List preloads Client and Tool.
	List(ctx context.Context, f ListFilter) ([]Loan, error)
}
