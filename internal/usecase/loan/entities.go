package loan

import (
	"time"
)

// CreateLoanInput: ClientID is set only on the staff path; otherwise the
// loan is opened for the caller's own client record.
type CreateLoanInput struct {
	ClientID *uint64
	ToolID   uint64
	DueDate  time.Time
}

type ReturnLoanInput struct {
	Condition string
	// Actor is written to the ledger entries of the return.
	Actor string
}

type LoanDTO struct {
	ID         uint64     `json:"id"`
	ClientID   uint64     `json:"client_id"`
	ClientName string     `json:"client_name"`
	ToolID     uint64     `json:"tool_id"`
	ToolName   string     `json:"tool_name"`
	LoanDate   time.Time  `json:"loan_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
	Status     string     `json:"status"`
	FineID     *uint64    `json:"fine_id,omitempty"`
	FineAmount *int64     `json:"fine_amount,omitempty"`
	FineStatus string     `json:"fine_status,omitempty"`
}
