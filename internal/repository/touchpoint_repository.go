package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pulse/internal/model"
)

// TouchpointRepository defines touchpoint persistence operations. Touchpoints are append-only.
type TouchpointRepository interface {
	Create(ctx context.Context, tp *model.Touchpoint) error
	ListByRepIDs(ctx context.Context, repIDs []uuid.UUID) ([]model.Touchpoint, error)
}

type touchpointRepository struct {
	db *gorm.DB
}

// NewTouchpointRepository creates a new touchpoint repository.
func NewTouchpointRepository(db *gorm.DB) TouchpointRepository {
	return &touchpointRepository{db: db}
}

func (r *touchpointRepository) Create(ctx context.Context, tp *model.Touchpoint) error {
	return r.db.WithContext(ctx).Create(tp).Error
}

func (r *touchpointRepository) ListByRepIDs(ctx context.Context, repIDs []uuid.UUID) ([]model.Touchpoint, error) {
	var tps []model.Touchpoint
	if len(repIDs) == 0 {
		return tps, nil
	}
	if err := r.db.WithContext(ctx).Where("rep_id IN ?", repIDs).Find(&tps).Error; err != nil {
		return nil, err
	}
	return tps, nil
}
