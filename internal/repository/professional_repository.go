package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pulse/internal/model"
)

// ProfessionalRepository defines professional persistence operations.
// Lookups scoped by rep return gorm.ErrRecordNotFound for professionals owned by someone else.
type ProfessionalRepository interface {
	Create(ctx context.Context, professional *model.Professional) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Professional, error)
	FindByIDAndRep(ctx context.Context, id, repID uuid.UUID) (*model.Professional, error)
	FindByRepAndEmail(ctx context.Context, repID uuid.UUID, email string) (*model.Professional, error)
	ListByRep(ctx context.Context, repID uuid.UUID) ([]model.Professional, error)
	ListByRepIDs(ctx context.Context, repIDs []uuid.UUID) ([]model.Professional, error)
}

type professionalRepository struct {
	db *gorm.DB
}

// NewProfessionalRepository creates a new professional repository.
func NewProfessionalRepository(db *gorm.DB) ProfessionalRepository {
	return &professionalRepository{db: db}
}

func (r *professionalRepository) Create(ctx context.Context, professional *model.Professional) error {
	return r.db.WithContext(ctx).Create(professional).Error
}

func (r *professionalRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Professional, error) {
	var p model.Professional
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *professionalRepository) FindByIDAndRep(ctx context.Context, id, repID uuid.UUID) (*model.Professional, error) {
	var p model.Professional
	if err := r.db.WithContext(ctx).Where("id = ? AND rep_id = ?", id, repID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *professionalRepository) FindByRepAndEmail(ctx context.Context, repID uuid.UUID, email string) (*model.Professional, error) {
	var p model.Professional
	err := r.db.WithContext(ctx).
		Where("rep_id = ? AND LOWER(email) = LOWER(?)", repID, email).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByRep returns the rep's network, newest first.
func (r *professionalRepository) ListByRep(ctx context.Context, repID uuid.UUID) ([]model.Professional, error) {
	var pros []model.Professional
	err := r.db.WithContext(ctx).
		Where("rep_id = ?", repID).
		Order("created_at DESC").
		Find(&pros).Error
	if err != nil {
		return nil, err
	}
	return pros, nil
}

func (r *professionalRepository) ListByRepIDs(ctx context.Context, repIDs []uuid.UUID) ([]model.Professional, error) {
	var pros []model.Professional
	if len(repIDs) == 0 {
		return pros, nil
	}
	if err := r.db.WithContext(ctx).Where("rep_id IN ?", repIDs).Find(&pros).Error; err != nil {
		return nil, err
	}
	return pros, nil
}
