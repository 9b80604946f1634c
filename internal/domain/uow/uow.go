package uow

import (
	"context"

	"toolrental-backend/internal/domain/client"
	"toolrental-backend/internal/domain/configuration"
	"toolrental-backend/internal/domain/fine"
	"toolrental-backend/internal/domain/kardex"
	"toolrental-backend/internal/domain/loan"
	"toolrental-backend/internal/domain/tool"
)

// Repos are bound to one transaction when handed out by a UnitOfWork.
type Repos struct {
	Tools   tool.Repository
	Clients client.Repository
	Loans   loan.Repository
	Fines   fine.Repository
	Kardex  kardex.Repository
	Configs configuration.Repository
}

type UnitOfWork interface {
	// plain tx; fn's error rolls back
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock loan first, then pass it in
	WithinLoanTx(ctx context.Context, loanID uint64, fn func(r Repos, l *loan.Loan) error) error
	// Repos returns repositories bound to no transaction, for reads.
	Repos() Repos
}
