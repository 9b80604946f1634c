package loanmock

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "toolrental-backend/internal/domain/loan"
)

func TestRepo_Create(t *testing.T) {
	ctx := context.Background()
	l := &domain.Loan{ID: 1}

	// Uses provided func
	called := false
	wantErr := errors.New("boom")
	m := &Repo{
		CreateFn: func(gotCtx context.Context, got *domain.Loan) error {
			called = true
			if gotCtx != ctx {
				t.Fatalf("Create ctx mismatch")
			}
			if got != l {
				t.Fatalf("Create arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Create(ctx, l); !errors.Is(err, wantErr) {
		t.Fatalf("Create: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("CreateFn not called")
	}

	// Default (nil func) → no-op, nil error
	m = &Repo{}
	if err := m.Create(ctx, l); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
}

func TestRepo_ReadersDefaultToCanceled(t *testing.T) {
	ctx := context.Background()
	m := &Repo{}

	if _, err := m.GetByID(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("GetByID default: %v", err)
	}
	if _, err := m.GetByIDForUpdate(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("GetByIDForUpdate default: %v", err)
	}
	if _, err := m.ListOverdueByClient(ctx, 1, time.Now()); !errors.Is(err, context.Canceled) {
		t.Fatalf("ListOverdueByClient default: %v", err)
	}
	if _, err := m.CountActiveByClient(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("CountActiveByClient default: %v", err)
	}
	if _, err := m.ExistsActiveForClientTool(ctx, 1, 2); !errors.Is(err, context.Canceled) {
		t.Fatalf("ExistsActiveForClientTool default: %v", err)
	}
	if _, err := m.List(ctx, domain.ListFilter{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("List default: %v", err)
	}
}

func TestRepo_Forwarding(t *testing.T) {
	ctx := context.Background()
	m := &Repo{
		CountActiveByClientFn: func(_ context.Context, clientID uint64) (int64, error) {
			if clientID != 7 {
				t.Fatalf("clientID = %d", clientID)
			}
			return 5, nil
		},
		ListFn: func(_ context.Context, f domain.ListFilter) ([]domain.Loan, error) {
			return []domain.Loan{{ID: 1, Status: domain.StatusActive}}, nil
		},
	}
	if n, err := m.CountActiveByClient(ctx, 7); err != nil || n != 5 {
		t.Fatalf("CountActiveByClient = %d, %v", n, err)
	}
	if ls, err := m.List(ctx, domain.ListFilter{ClientExternalID: "x"}); err != nil || len(ls) != 1 {
		t.Fatalf("List = %v, %v", ls, err)
	}
}
