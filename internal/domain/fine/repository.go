package fine

import "context"

type Repository interface {
	Create(ctx context.Context, f *Fine) error
	Save(ctx context.Context, f *Fine) error
	GetByID(ctx context.Context, id uint64) (*Fine, error)
	// GetByIDForUpdate locks the fine row for the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Fine, error)

	ListByLoanID(ctx context.Context, loanID uint64) ([]Fine, error)
	DeleteByLoanID(ctx context.Context, loanID uint64) error
	CountPendingByClientID(ctx context.Context, clientID uint64) (int64, error)

	// List and ListByClientExternalID preload Loan, Loan.Client and Loan.Tool.
	List(ctx context.Context) ([]Fine, error)
	ListByClientExternalID(ctx context.Context, externalID string) ([]Fine, error)
}
