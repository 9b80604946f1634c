package fine

import "time"

type FineDTO struct {
	ID           uint64     `json:"id"`
	LoanID       uint64     `json:"loan_id"`
	ClientName   string     `json:"client_name"`
	ClientStatus string     `json:"client_status,omitempty"`
	ToolName     string     `json:"tool_name"`
	FineType     string     `json:"fine_type"`
	Amount       int64      `json:"amount"`
	Status       string     `json:"status"`
	CreationDate time.Time  `json:"creation_date"`
	PaymentDate  *time.Time `json:"payment_date,omitempty"`
}
