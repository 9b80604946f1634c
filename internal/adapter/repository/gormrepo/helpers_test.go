package gormrepo

import (
	"context"
	"testing"
	"time"

	"toolrental-backend/internal/domain/client"
	"toolrental-backend/internal/domain/fine"
	"toolrental-backend/internal/domain/loan"
	"toolrental-backend/internal/domain/tool"

	"gorm.io/gorm"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedTool(t *testing.T, db *gorm.DB, name string, st tool.Status) *tool.Tool {
	t.Helper()
	tl := &tool.Tool{Name: name, Category: "power", ReplacementValue: 50_000, Stock: 1, Status: st}
	if err := db.Create(tl).Error; err != nil {
		t.Fatalf("seed tool: %v", err)
	}
	return tl
}

func seedClient(t *testing.T, db *gorm.DB, name, externalID string) *client.Client {
	t.Helper()
	c := &client.Client{Name: name, Status: client.StatusActive}
	if externalID != "" {
		c.ExternalID = &externalID
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return c
}

func seedLoan(t *testing.T, db *gorm.DB, c *client.Client, tl *tool.Tool, due time.Time, st loan.Status) *loan.Loan {
	t.Helper()
	l := &loan.Loan{ClientID: c.ID, ToolID: tl.ID, LoanDate: due.AddDate(0, 0, -7), DueDate: due, Status: st}
	if st == loan.StatusReturned {
		rd := due
		l.ReturnDate = &rd
	}
	if err := NewLoanRepository(db).Create(context.Background(), l); err != nil {
		t.Fatalf("seed loan: %v", err)
	}
	return l
}

func seedFine(t *testing.T, db *gorm.DB, l *loan.Loan, st fine.Status, amount int64) *fine.Fine {
	t.Helper()
	f := fine.NewPending(l.ID, fine.KindLateReturn, amount, day(2025, 1, 20))
	f.Status = st
	if err := NewFineRepository(db).Create(context.Background(), f); err != nil {
		t.Fatalf("seed fine: %v", err)
	}
	return f
}
