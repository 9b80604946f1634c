package gormrepo

import (
	"context"

	clientDomain "toolrental-backend/internal/domain/client"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClientRepository struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) *ClientRepository { return &ClientRepository{db: db} }

func (r *ClientRepository) Create(ctx context.Context, c *clientDomain.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientRepository) Save(ctx context.Context, c *clientDomain.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClientRepository) GetByID(ctx context.Context, id uint64) (*clientDomain.Client, error) {
	var out clientDomain.Client
	if err := r.db.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ClientRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*clientDomain.Client, error) {
	var out clientDomain.Client
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ClientRepository) GetByExternalIDForUpdate(ctx context.Context, externalID string) (*clientDomain.Client, error) {
	var out clientDomain.Client
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("external_id = ?", externalID).
		First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ClientRepository) List(ctx context.Context) ([]clientDomain.Client, error) {
	var out []clientDomain.Client
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}
