package gormrepo

import (
	"context"

	fineDomain "toolrental-backend/internal/domain/fine"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FineRepository struct{ db *gorm.DB }

func NewFineRepository(db *gorm.DB) *FineRepository { return &FineRepository{db: db} }

func (r *FineRepository) Create(ctx context.Context, f *fineDomain.Fine) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(f).Error
}

func (r *FineRepository) Save(ctx context.Context, f *fineDomain.Fine) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(f).Error
}

func (r *FineRepository) GetByID(ctx context.Context, id uint64) (*fineDomain.Fine, error) {
	var out fineDomain.Fine
	if err := r.db.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *FineRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*fineDomain.Fine, error) {
	var out fineDomain.Fine
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *FineRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]fineDomain.Fine, error) {
	var out []fineDomain.Fine
	err := r.db.WithContext(ctx).Where("loan_id = ?", loanID).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *FineRepository) DeleteByLoanID(ctx context.Context, loanID uint64) error {
	return r.db.WithContext(ctx).Where("loan_id = ?", loanID).Delete(&fineDomain.Fine{}).Error
}

func (r *FineRepository) CountPendingByClientID(ctx context.Context, clientID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&fineDomain.Fine{}).
		Joins("JOIN loans ON loans.id = fines.loan_id").
		Where("loans.client_id = ? AND fines.status = ?", clientID, fineDomain.StatusPending).
		Count(&n).Error
	return n, err
}

func (r *FineRepository) List(ctx context.Context) ([]fineDomain.Fine, error) {
	var out []fineDomain.Fine
	err := r.db.WithContext(ctx).
		Preload("Loan.Client").Preload("Loan.Tool").
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *FineRepository) ListByClientExternalID(ctx context.Context, externalID string) ([]fineDomain.Fine, error) {
	var out []fineDomain.Fine
	err := r.db.WithContext(ctx).
		Preload("Loan.Client").Preload("Loan.Tool").
		Joins("JOIN loans ON loans.id = fines.loan_id").
		Joins("JOIN clients ON clients.id = loans.client_id").
		Where("clients.external_id = ?", externalID).
		Order("fines.id ASC").
		Find(&out).Error
	return out, err
}
