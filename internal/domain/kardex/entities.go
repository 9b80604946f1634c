package kardex

import (
	"time"

	"toolrental-backend/internal/domain/apperr"
	"toolrental-backend/internal/domain/tool"
)

type MovementKind string

const (
	KindIntake   MovementKind = "intake"
	KindLoanOut  MovementKind = "loan_out"
	KindReturn   MovementKind = "return"
	KindWriteOff MovementKind = "write_off"
	KindRepair   MovementKind = "repair"
)

var ErrInvalidRange = apperr.New(apperr.ErrInvalidArgument, "kardex_invalid_range",
	"date range needs both start and end, with end not before start")

// Quantity is the fixed stock delta of a movement kind. Repair is informational.
func (k MovementKind) Quantity() int {
	switch k {
	case KindIntake, KindReturn:
		return 1
	case KindLoanOut, KindWriteOff:
		return -1
	default:
		return 0
	}
}

// Entry is one immutable ledger line.
type Entry struct {
	ID         uint64       `gorm:"primaryKey;column:id" json:"id"`
	MovementID string       `gorm:"column:movement_id;type:char(32);not null;uniqueIndex:ux_kardex_movement_id" json:"movement_id"`
	ToolID     uint64       `gorm:"not null;index" json:"tool_id"`
	Kind       MovementKind `gorm:"column:movement_type;size:20;not null" json:"movement_type"`
	Quantity   int          `gorm:"column:quantity_affected;not null" json:"quantity_affected"`
	OccurredAt time.Time    `gorm:"column:movement_date;not null;index" json:"movement_date"`
	Actor      string       `gorm:"column:user_responsible;size:200" json:"user_responsible"`

	Tool *tool.Tool `gorm:"foreignKey:ToolID" json:"-"`
}

func (Entry) TableName() string { return "kardex" }

// Filter selects entries. From is inclusive and To exclusive; both nil means
// no time bound.
type Filter struct {
	ToolName string
	From     *time.Time
	To       *time.Time
}
