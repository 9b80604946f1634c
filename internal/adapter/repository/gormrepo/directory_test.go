package gormrepo

import (
	"context"
	"errors"
	"testing"

	"toolrental-backend/internal/domain/client"
	"toolrental-backend/internal/domain/configuration"
	"toolrental-backend/internal/domain/tool"
	"toolrental-backend/internal/testutil/dbtest"

	"gorm.io/gorm"
)

func TestClientRepository_GetByExternalID(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	c := client.NewFromIdentity(client.Identity{Subject: "sub-1", Name: "Ana"})
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	// staff-created clients carry no subject; several may coexist
	seedClient(t, db, "Walk-in 1", "")
	seedClient(t, db, "Walk-in 2", "")

	got, err := repo.GetByExternalIDForUpdate(ctx, "sub-1")
	if err != nil {
		t.Fatalf("GetByExternalIDForUpdate: %v", err)
	}
	if got.ID != c.ID || got.Status != client.StatusActive {
		t.Fatalf("unexpected client: %+v", got)
	}
	if _, err := repo.GetByExternalIDForUpdate(ctx, "nobody"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}

	all, err := repo.List(ctx)
	if err != nil || len(all) != 3 {
		t.Fatalf("List = %d, %v; want 3", len(all), err)
	}

	// a second insert for the same subject loses on the unique index
	dup := client.NewFromIdentity(client.Identity{Subject: "sub-1", Name: "Ana again"})
	if err := repo.Create(ctx, dup); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}
}

func TestToolRepository_SaveTransition(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewToolRepository(db)
	ctx := context.Background()

	tl := &tool.Tool{Name: "Drill", Category: "power", ReplacementValue: 80_000, Stock: 1, Status: tool.StatusAvailable}
	if err := repo.Create(ctx, tl); err != nil {
		t.Fatalf("Create: %v", err)
	}
	locked, err := repo.GetByIDForUpdate(ctx, tl.ID)
	if err != nil {
		t.Fatalf("GetByIDForUpdate: %v", err)
	}
	if err := locked.Transition(tool.StatusUnderRepair); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, locked); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByID(ctx, tl.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != tool.StatusUnderRepair || got.Stock != 0 {
		t.Fatalf("unexpected tool: %+v", got)
	}
}

func TestConfigRepository_SaveAndGet(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewConfigRepository(db)
	ctx := context.Background()

	if _, err := repo.GetByKey(ctx, configuration.KeyDailyLateFee); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}

	cfg := &configuration.Config{Key: configuration.KeyDailyLateFee, Value: "7"}
	if err := repo.Save(ctx, cfg); err != nil {
		t.Fatalf("Save insert: %v", err)
	}
	cfg.Value = "9"
	if err := repo.Save(ctx, cfg); err != nil {
		t.Fatalf("Save update: %v", err)
	}

	got, err := repo.GetByKey(ctx, configuration.KeyDailyLateFee)
	if err != nil {
		t.Fatalf("GetByKey: %v", err)
	}
	if got.Value != "9" {
		t.Fatalf("value = %q, want 9", got.Value)
	}
}
