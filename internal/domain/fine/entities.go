package fine

import (
	"time"

	"toolrental-backend/internal/domain/apperr"
	"toolrental-backend/internal/domain/loan"
)

type Kind string

const (
	KindLateReturn        Kind = "late_return"
	KindRepairableDamage  Kind = "repairable_damage"
	KindIrreparableDamage Kind = "irreparable_damage"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

var (
	ErrNotFound    = apperr.New(apperr.ErrNotFound, "fine_not_found", "fine not found")
	ErrAlreadyPaid = apperr.New(apperr.ErrInvalidState, "fine_already_paid", "fine is already paid")
)

type Fine struct {
	ID           uint64     `gorm:"primaryKey;column:id" json:"id"`
	LoanID       uint64     `gorm:"not null;index" json:"loan_id"`
	Kind         Kind       `gorm:"column:fine_type;size:30;not null" json:"fine_type"`
	Amount       int64      `gorm:"not null" json:"amount"`
	Status       Status     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreationDate time.Time  `gorm:"type:date;not null" json:"creation_date"`
	PaymentDate  *time.Time `gorm:"type:date" json:"payment_date,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Loan *loan.Loan `gorm:"foreignKey:LoanID" json:"-"`
}

func (Fine) TableName() string { return "fines" }

func NewPending(loanID uint64, kind Kind, amount int64, today time.Time) *Fine {
	return &Fine{
		LoanID:       loanID,
		Kind:         kind,
		Amount:       amount,
		Status:       StatusPending,
		CreationDate: today,
	}
}

// Pay settles the fine once; paying twice is rejected so the payment date
// stays the one recorded first.
func (f *Fine) Pay(today time.Time) error {
	if f.Status == StatusPaid {
		return ErrAlreadyPaid
	}
	f.Status = StatusPaid
	f.PaymentDate = &today
	return nil
}
