package gormrepo

import (
	"context"
	"testing"

	"toolrental-backend/internal/domain/fine"
	"toolrental-backend/internal/domain/loan"
	"toolrental-backend/internal/domain/tool"
	"toolrental-backend/internal/testutil/dbtest"
)

func TestFineRepository_PendingCountByClient(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewFineRepository(db)
	ctx := context.Background()

	ana := seedClient(t, db, "Ana", "sub-ana")
	bo := seedClient(t, db, "Bo", "sub-bo")
	tl := seedTool(t, db, "Drill", tool.StatusAvailable)

	l1 := seedLoan(t, db, ana, tl, day(2025, 1, 1), loan.StatusReturned)
	l2 := seedLoan(t, db, ana, tl, day(2025, 1, 5), loan.StatusReturned)
	l3 := seedLoan(t, db, bo, tl, day(2025, 1, 8), loan.StatusReturned)

	seedFine(t, db, l1, fine.StatusPending, 10)
	seedFine(t, db, l2, fine.StatusPaid, 20)
	seedFine(t, db, l3, fine.StatusPending, 30)

	n, err := repo.CountPendingByClientID(ctx, ana.ID)
	if err != nil || n != 1 {
		t.Fatalf("CountPendingByClientID(ana) = %d, %v; want 1", n, err)
	}
	n, err = repo.CountPendingByClientID(ctx, bo.ID)
	if err != nil || n != 1 {
		t.Fatalf("CountPendingByClientID(bo) = %d, %v; want 1", n, err)
	}

	mine, err := repo.ListByClientExternalID(ctx, "sub-ana")
	if err != nil {
		t.Fatalf("ListByClientExternalID: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("got %d fines for ana, want 2", len(mine))
	}
	for _, f := range mine {
		if f.Loan == nil || f.Loan.Client == nil || f.Loan.Client.Name != "Ana" || f.Loan.Tool == nil {
			t.Fatalf("fine not preloaded: %+v", f)
		}
	}

	all, err := repo.List(ctx)
	if err != nil || len(all) != 3 {
		t.Fatalf("List = %d, %v; want 3", len(all), err)
	}
}

func TestFineRepository_ListAndDeleteByLoan(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewFineRepository(db)
	ctx := context.Background()

	l := seedLoan(t, db, seedClient(t, db, "Ana", ""), seedTool(t, db, "Drill", tool.StatusAvailable), day(2025, 1, 1), loan.StatusReturned)
	seedFine(t, db, l, fine.StatusPaid, 10)
	seedFine(t, db, l, fine.StatusPaid, 15)

	got, err := repo.ListByLoanID(ctx, l.ID)
	if err != nil || len(got) != 2 {
		t.Fatalf("ListByLoanID = %d, %v; want 2", len(got), err)
	}
	if got[0].Amount != 10 || got[1].Amount != 15 {
		t.Fatalf("unexpected order: %+v", got)
	}

	if err := repo.DeleteByLoanID(ctx, l.ID); err != nil {
		t.Fatalf("DeleteByLoanID: %v", err)
	}
	got, _ = repo.ListByLoanID(ctx, l.ID)
	if len(got) != 0 {
		t.Fatalf("fines remain after delete: %+v", got)
	}
}

func TestFineRepository_SavePayment(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewFineRepository(db)
	ctx := context.Background()

	l := seedLoan(t, db, seedClient(t, db, "Ana", ""), seedTool(t, db, "Drill", tool.StatusAvailable), day(2025, 1, 1), loan.StatusReturned)
	f := seedFine(t, db, l, fine.StatusPending, 10)

	locked, err := repo.GetByIDForUpdate(ctx, f.ID)
	if err != nil {
		t.Fatalf("GetByIDForUpdate: %v", err)
	}
	if err := locked.Pay(day(2025, 2, 1)); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, locked); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByID(ctx, f.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != fine.StatusPaid || got.PaymentDate == nil || !got.PaymentDate.Equal(day(2025, 2, 1)) {
		t.Fatalf("payment not persisted: %+v", got)
	}
}
