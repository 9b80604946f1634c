package tool

import "context"

type Repository interface {
	Create(ctx context.Context, t *Tool) error
	Save(ctx context.Context, t *Tool) error
	GetByID(ctx context.Context, id uint64) (*Tool, error)
	// Row-locked read for the duration of the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Tool, error)
	List(ctx context.Context) ([]Tool, error)
}
