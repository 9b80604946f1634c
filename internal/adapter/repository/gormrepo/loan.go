package gormrepo

import (
	"context"
	"time"

	loanDomain "toolrental-backend/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

// Associations are written by their own repositories, never through a loan.
func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(l).Error
}

func (r *LoanRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&loanDomain.Loan{}, id).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, id uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	if err := r.db.WithContext(ctx).
		Preload("Client").Preload("Tool").
		First(&out, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *LoanRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *LoanRepository) ListOverdueByClient(ctx context.Context, clientID uint64, today time.Time) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND status = ? AND due_date < ?", clientID, loanDomain.StatusActive, today).
		Order("due_date ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *LoanRepository) CountActiveByClient(ctx context.Context, clientID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("client_id = ? AND status = ?", clientID, loanDomain.StatusActive).
		Count(&n).Error
	return n, err
}

func (r *LoanRepository) ExistsActiveForClientTool(ctx context.Context, clientID, toolID uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("client_id = ? AND tool_id = ? AND status = ?", clientID, toolID, loanDomain.StatusActive).
		Limit(1).
		Count(&n).Error
	return n > 0, err
}

func (r *LoanRepository) List(ctx context.Context, f loanDomain.ListFilter) ([]loanDomain.Loan, error) {
	q := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Preload("Client").Preload("Tool").
		Order("loans.id ASC")
	if f.ClientExternalID != "" {
		q = q.Joins("JOIN clients ON clients.id = loans.client_id").
			Where("clients.external_id = ?", f.ClientExternalID)
	}
	var out []loanDomain.Loan
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
