package tool

import (
	"time"

	"toolrental-backend/internal/domain/apperr"
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusLoaned      Status = "loaned"
	StatusUnderRepair Status = "under_repair"
	StatusWrittenOff  Status = "written_off"
)

var (
	ErrNotFound          = apperr.New(apperr.ErrNotFound, "tool_not_found", "tool not found")
	ErrInvalidTransition = apperr.New(apperr.ErrInvalidState, "tool_invalid_transition", "tool status transition not allowed")
	ErrInvalidValue      = apperr.New(apperr.ErrInvalidArgument, "tool_invalid_value", "replacement value must be at least 1")
)

var validTransitions = map[Status][]Status{
	StatusAvailable:   {StatusLoaned, StatusWrittenOff},
	StatusLoaned:      {StatusAvailable, StatusUnderRepair, StatusWrittenOff},
	StatusUnderRepair: {StatusWrittenOff},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Tool struct {
	ID               uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name             string    `gorm:"size:200;not null;index:idx_tools_name" json:"name"`
	Category         string    `gorm:"size:100" json:"category"`
	ReplacementValue int64     `gorm:"not null" json:"replacement_value"`
	Stock            int       `gorm:"not null;default:0" json:"stock"`
	InitialCondition string    `gorm:"size:255" json:"initial_condition"`
	Status           Status    `gorm:"size:20;not null;default:'available'" json:"status"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Tool) TableName() string { return "tools" }

// Transition moves the tool to next and keeps Stock in step with it:
// one unit on the shelf while available, none otherwise.
func (t *Tool) Transition(next Status) error {
	if !t.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	t.Status = next
	if next == StatusAvailable {
		t.Stock = 1
	} else {
		t.Stock = 0
	}
	return nil
}
