package loan

import (
	"testing"
	"time"

	"toolrental-backend/internal/adapter/repository/gormrepo"
	domainClient "toolrental-backend/internal/domain/client"
	"toolrental-backend/internal/domain/configuration"
	domainFine "toolrental-backend/internal/domain/fine"
	"toolrental-backend/internal/domain/kardex"
	"toolrental-backend/internal/domain/loan"
	"toolrental-backend/internal/domain/tool"
	"toolrental-backend/internal/testutil/dbtest"
	fineUsecase "toolrental-backend/internal/usecase/fine"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func day(m time.Month, d int) time.Time { return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC) }

// env is a lending engine over a fresh database with a movable clock.
type env struct {
	t     *testing.T
	db    *gorm.DB
	uc    *Usecase
	today time.Time
}

func newEnv(t *testing.T) *env {
	t.Helper()
	e := &env{t: t, db: dbtest.Open(t), today: day(time.January, 1)}
	e.uc = NewUsecase(gormrepo.NewGormUoW(e.db), fineUsecase.NewEngine(zerolog.Nop()), zerolog.Nop()).
		WithClock(func() time.Time { return e.today.Add(15 * time.Hour) })
	return e
}

func (e *env) setFee(key, value string) {
	e.t.Helper()
	require.NoError(e.t, e.db.Create(&configuration.Config{Key: key, Value: value}).Error)
}

func (e *env) tool(name string, st tool.Status) *tool.Tool {
	e.t.Helper()
	stock := 0
	if st == tool.StatusAvailable {
		stock = 1
	}
	tl := &tool.Tool{Name: name, Category: "power", ReplacementValue: 45_000, Stock: stock, Status: st}
	require.NoError(e.t, e.db.Create(tl).Error)
	return tl
}

func (e *env) client(name string, st domainClient.Status) *domainClient.Client {
	e.t.Helper()
	sub := "sub-" + name
	c := &domainClient.Client{ExternalID: &sub, Name: name, Status: st}
	require.NoError(e.t, e.db.Create(c).Error)
	return c
}

func (e *env) identity(c *domainClient.Client) domainClient.Identity {
	return domainClient.Identity{Subject: *c.ExternalID, Name: c.Name}
}

// rawLoan inserts a loan row directly, bypassing the eligibility rules.
func (e *env) rawLoan(c *domainClient.Client, tl *tool.Tool, due time.Time, st loan.Status) *loan.Loan {
	e.t.Helper()
	l := &loan.Loan{ClientID: c.ID, ToolID: tl.ID, LoanDate: due.AddDate(0, 0, -5), DueDate: due, Status: st}
	if st == loan.StatusReturned {
		rd := due
		l.ReturnDate = &rd
	}
	require.NoError(e.t, e.db.Omit("Client", "Tool").Create(l).Error)
	return l
}

func (e *env) rawFine(l *loan.Loan, st domainFine.Status) *domainFine.Fine {
	e.t.Helper()
	f := domainFine.NewPending(l.ID, domainFine.KindLateReturn, 10, l.DueDate)
	f.Status = st
	require.NoError(e.t, e.db.Omit("Loan").Create(f).Error)
	return f
}

func (e *env) reloadTool(id uint64) *tool.Tool {
	e.t.Helper()
	var tl tool.Tool
	require.NoError(e.t, e.db.First(&tl, id).Error)
	return &tl
}

func (e *env) reloadClient(id uint64) *domainClient.Client {
	e.t.Helper()
	var c domainClient.Client
	require.NoError(e.t, e.db.First(&c, id).Error)
	return &c
}

func (e *env) finesOf(loanID uint64) []domainFine.Fine {
	e.t.Helper()
	var fs []domainFine.Fine
	require.NoError(e.t, e.db.Where("loan_id = ?", loanID).Order("id").Find(&fs).Error)
	return fs
}

func (e *env) ledger(toolID uint64) []kardex.Entry {
	e.t.Helper()
	var es []kardex.Entry
	require.NoError(e.t, e.db.Where("tool_id = ?", toolID).Order("id").Find(&es).Error)
	return es
}

// latest is the movement a reader of the ledger sees last, ordered the way
// the kardex query orders it.
func (e *env) latest(toolID uint64) kardex.Entry {
	e.t.Helper()
	var en kardex.Entry
	require.NoError(e.t, e.db.Where("tool_id = ?", toolID).Order("movement_date DESC, id DESC").First(&en).Error)
	return en
}

func (e *env) count(model any) int64 {
	e.t.Helper()
	var n int64
	require.NoError(e.t, e.db.Model(model).Count(&n).Error)
	return n
}
