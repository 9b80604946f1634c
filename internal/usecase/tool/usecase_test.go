package tool

import (
	"context"
	"testing"
	"time"

	"toolrental-backend/internal/adapter/repository/gormrepo"
	"toolrental-backend/internal/domain/apperr"
	"toolrental-backend/internal/domain/kardex"
	domain "toolrental-backend/internal/domain/tool"
	"toolrental-backend/internal/testutil/dbtest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2025, 3, 4, 10, 30, 0, 0, time.UTC)

func newUsecase(t *testing.T) (*Usecase, *gorm.DB) {
	t.Helper()
	db := dbtest.Open(t)
	uc := NewUsecase(gormrepo.NewGormUoW(db), zerolog.Nop()).WithClock(func() time.Time { return fixedNow })
	return uc, db
}

func ledger(t *testing.T, db *gorm.DB, toolID uint64) []kardex.Entry {
	t.Helper()
	var es []kardex.Entry
	require.NoError(t, db.Where("tool_id = ?", toolID).Order("id").Find(&es).Error)
	return es
}

func TestRegister_RecordsIntake(t *testing.T) {
	uc, db := newUsecase(t)

	dto, err := uc.Register(context.Background(), RegisterToolInput{Name: " DrillA ", Category: "power", ReplacementValue: 80_000}, "Staff")
	require.NoError(t, err)
	assert.Equal(t, "DrillA", dto.Name)
	assert.Equal(t, string(domain.StatusAvailable), dto.Status)
	assert.Equal(t, 1, dto.Stock)

	es := ledger(t, db, dto.ID)
	require.Len(t, es, 1)
	assert.Equal(t, kardex.KindIntake, es[0].Kind)
	assert.Equal(t, 1, es[0].Quantity)
	assert.Equal(t, "Staff", es[0].Actor)
	assert.True(t, es[0].OccurredAt.Equal(fixedNow))
}

func TestRegister_RejectsZeroReplacementValue(t *testing.T) {
	uc, db := newUsecase(t)

	_, err := uc.Register(context.Background(), RegisterToolInput{Name: "DrillA", Category: "power"}, "Staff")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	var n int64
	require.NoError(t, db.Model(&domain.Tool{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestRetire(t *testing.T) {
	uc, db := newUsecase(t)
	ctx := context.Background()

	available, err := uc.Register(ctx, RegisterToolInput{Name: "Saw", Category: "hand", ReplacementValue: 10_000}, "Staff")
	require.NoError(t, err)

	dto, err := uc.Retire(ctx, available.ID, "Staff")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusWrittenOff), dto.Status)
	assert.Equal(t, 0, dto.Stock)

	es := ledger(t, db, available.ID)
	require.Len(t, es, 2)
	assert.Equal(t, kardex.KindWriteOff, es[1].Kind)
	assert.Equal(t, -1, es[1].Quantity)

	// written off twice
	_, err = uc.Retire(ctx, available.ID, "Staff")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	loaned := &domain.Tool{Name: "Drill", ReplacementValue: 1, Status: domain.StatusLoaned}
	require.NoError(t, db.Create(loaned).Error)
	_, err = uc.Retire(ctx, loaned.ID, "Staff")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.ErrorIs(t, err, apperr.ErrInvalidState)
	assert.Empty(t, ledger(t, db, loaned.ID))

	_, err = uc.Retire(ctx, 404, "Staff")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetAndList(t *testing.T) {
	uc, _ := newUsecase(t)
	ctx := context.Background()

	a, err := uc.Register(ctx, RegisterToolInput{Name: "A", Category: "c", ReplacementValue: 1}, "Staff")
	require.NoError(t, err)
	_, err = uc.Register(ctx, RegisterToolInput{Name: "B", Category: "c", ReplacementValue: 2}, "Staff")
	require.NoError(t, err)

	got, err := uc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)

	_, err = uc.Get(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	all, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
