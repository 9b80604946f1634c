package gormrepo

import (
	"context"

	kardexDomain "toolrental-backend/internal/domain/kardex"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KardexRepository struct{ db *gorm.DB }

func NewKardexRepository(db *gorm.DB) *KardexRepository { return &KardexRepository{db: db} }

func (r *KardexRepository) Append(ctx context.Context, e *kardexDomain.Entry) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(e).Error
}

func (r *KardexRepository) Find(ctx context.Context, f kardexDomain.Filter) ([]kardexDomain.Entry, error) {
	q := r.db.WithContext(ctx).Model(&kardexDomain.Entry{}).Preload("Tool")
	if f.ToolName != "" {
		q = q.Joins("JOIN tools ON tools.id = kardex.tool_id").
			Where("LOWER(tools.name) = LOWER(?)", f.ToolName)
	}
	if f.From != nil {
		q = q.Where("kardex.movement_date >= ?", f.From.UTC())
	}
	if f.To != nil {
		q = q.Where("kardex.movement_date < ?", f.To.UTC())
	}
	var out []kardexDomain.Entry
	if err := q.Order("kardex.id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
