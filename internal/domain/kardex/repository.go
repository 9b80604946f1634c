package kardex

import "context"

type Repository interface {
	Append(ctx context.Context, e *Entry) error
	// Find returns matching entries in storage order with Tool preloaded.
	Find(ctx context.Context, f Filter) ([]Entry, error)
}
