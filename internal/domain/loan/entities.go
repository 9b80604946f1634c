package loan

import (
	"strings"
	"time"

	"toolrental-backend/internal/domain/apperr"
	"toolrental-backend/internal/domain/client"
	"toolrental-backend/internal/domain/tool"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusReturned Status = "returned"
)

// MaxActiveLoans is the per-client ceiling on simultaneous active loans.
const MaxActiveLoans = 5

var (
	ErrNotFound         = apperr.New(apperr.ErrNotFound, "loan_not_found", "loan not found")
	ErrNotActive        = apperr.New(apperr.ErrInvalidState, "loan_not_active", "loan is not active")
	ErrNotReturned      = apperr.New(apperr.ErrInvalidState, "loan_not_returned", "cannot delete an unreturned loan")
	ErrHasPendingFine   = apperr.New(apperr.ErrInvalidState, "loan_has_pending_fine", "cannot delete a loan with an unpaid fine")
	ErrInvalidCondition = apperr.New(apperr.ErrInvalidArgument, "loan_invalid_condition", "return condition is required")
)

// Eligibility rules checked, in this order, before a loan is created.
var (
	ErrDueDateInPast = apperr.New(apperr.ErrInvalidArgument, "due_date_in_past",
		"the due date cannot be earlier than today")
	ErrToolUnavailable = apperr.New(apperr.ErrBusinessRule, "tool_unavailable",
		"the tool is not available for loan")
	ErrClientRestricted = apperr.New(apperr.ErrBusinessRule, "client_restricted",
		"the client is restricted and cannot request loans")
	ErrOverdueLoans = apperr.New(apperr.ErrBusinessRule, "client_has_overdue_loans",
		"the client has overdue loans that have not been returned")
	ErrPendingFines = apperr.New(apperr.ErrBusinessRule, "client_has_pending_fines",
		"the client has unpaid fines; pay them before requesting a new loan")
	ErrLoanLimitReached = apperr.New(apperr.ErrBusinessRule, "loan_limit_reached",
		"the client has reached the maximum of 5 active loans")
	ErrDuplicateTool = apperr.New(apperr.ErrBusinessRule, "tool_already_borrowed_by_client",
		"the client already has an active loan for this tool")
)

// ReturnCondition is what the attendant reports when the tool comes back.
type ReturnCondition string

const (
	ConditionGood        ReturnCondition = "good"
	ConditionDamaged     ReturnCondition = "damaged"
	ConditionIrreparable ReturnCondition = "irreparable"
)

// ParseCondition folds case and surrounding blanks. Values it does not
// recognise come back unchanged and are treated as good.
func ParseCondition(s string) ReturnCondition {
	trimmed := strings.TrimSpace(s)
	for _, c := range []ReturnCondition{ConditionGood, ConditionDamaged, ConditionIrreparable} {
		if strings.EqualFold(trimmed, string(c)) {
			return c
		}
	}
	return ReturnCondition(trimmed)
}

type Loan struct {
	ID         uint64     `gorm:"primaryKey;column:id" json:"id"`
	ClientID   uint64     `gorm:"not null;index:idx_loans_client_status" json:"client_id"`
	ToolID     uint64     `gorm:"not null;index" json:"tool_id"`
	LoanDate   time.Time  `gorm:"type:date;not null" json:"loan_date"`
	DueDate    time.Time  `gorm:"type:date;not null" json:"due_date"`
	ReturnDate *time.Time `gorm:"type:date" json:"return_date,omitempty"`
	Status     Status     `gorm:"size:20;not null;default:'active';index:idx_loans_client_status" json:"status"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Client *client.Client `gorm:"foreignKey:ClientID" json:"-"`
	Tool   *tool.Tool     `gorm:"foreignKey:ToolID" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// MarkReturned applies the single allowed mutation of an active loan.
func (l *Loan) MarkReturned(on time.Time) error {
	if l.Status != StatusActive {
		return ErrNotActive
	}
	l.ReturnDate = &on
	l.Status = StatusReturned
	return nil
}
