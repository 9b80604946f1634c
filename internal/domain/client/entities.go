package client

import (
	"time"

	"toolrental-backend/internal/domain/apperr"
)

type Status string

const (
	StatusActive     Status = "active"
	StatusRestricted Status = "restricted"
)

var (
	ErrNotFound        = apperr.New(apperr.ErrNotFound, "client_not_found", "client not found")
	ErrMissingIdentity = apperr.New(apperr.ErrInvalidArgument, "client_missing_identity", "caller identity has no subject")

	// another request created the same subject's client first; retrying finds it
	ErrFirstUseConflict = apperr.New(apperr.ErrInvalidState, "client_first_use_conflict",
		"the client record was created by a concurrent request; retry")
)

type Client struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"id"`
	// Subject issued by the identity provider; nil for staff-created clients
	// that have never signed in.
	ExternalID *string   `gorm:"column:external_id;size:64;uniqueIndex:ux_clients_external_id" json:"external_id,omitempty"`
	Name       string    `gorm:"size:200;not null" json:"name"`
	NationalID string    `gorm:"column:national_id;size:20;index" json:"national_id"`
	Email      string    `gorm:"size:255" json:"email"`
	Phone      string    `gorm:"size:40" json:"phone"`
	Status     Status    `gorm:"size:20;not null;default:'active'" json:"status"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Client) TableName() string { return "clients" }

func (c *Client) Restrict() { c.Status = StatusRestricted }
func (c *Client) Activate() { c.Status = StatusActive }

// Identity is the authenticated caller as seen by the identity provider.
// It is passed explicitly to every operation that acts on the caller's behalf.
type Identity struct {
	Subject    string
	Name       string
	Email      string
	NationalID string
	Phone      string
	Role       string
}

// Actor is the name written to the ledger for actions performed by id.
func (id Identity) Actor() string {
	if id.Name != "" {
		return id.Name
	}
	return id.Subject
}

// NewFromIdentity materialises an active client from identity claims.
func NewFromIdentity(id Identity) *Client {
	sub := id.Subject
	return &Client{
		ExternalID: &sub,
		Name:       id.Name,
		Email:      id.Email,
		NationalID: id.NationalID,
		Phone:      id.Phone,
		Status:     StatusActive,
	}
}
