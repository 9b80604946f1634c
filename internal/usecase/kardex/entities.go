package kardex

import "time"

// QueryInput holds the optional filters. StartDate and EndDate are whole
// days and must be given together.
type QueryInput struct {
	ToolName  string
	StartDate *time.Time
	EndDate   *time.Time
}

type EntryDTO struct {
	ID              uint64    `json:"id"`
	MovementID      string    `json:"movement_id"`
	ToolID          uint64    `json:"tool_id"`
	ToolName        string    `json:"tool_name"`
	MovementType    string    `json:"movement_type"`
	Quantity        int       `json:"quantity_affected"`
	MovementDate    time.Time `json:"movement_date"`
	UserResponsible string    `json:"user_responsible"`
}
