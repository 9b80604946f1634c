package gormrepo

import (
	"context"

	toolDomain "toolrental-backend/internal/domain/tool"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ToolRepository struct{ db *gorm.DB }

func NewToolRepository(db *gorm.DB) *ToolRepository { return &ToolRepository{db: db} }

func (r *ToolRepository) Create(ctx context.Context, t *toolDomain.Tool) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *ToolRepository) Save(ctx context.Context, t *toolDomain.Tool) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *ToolRepository) GetByID(ctx context.Context, id uint64) (*toolDomain.Tool, error) {
	var out toolDomain.Tool
	if err := r.db.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ToolRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*toolDomain.Tool, error) {
	var out toolDomain.Tool
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ToolRepository) List(ctx context.Context) ([]toolDomain.Tool, error) {
	var out []toolDomain.Tool
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}
