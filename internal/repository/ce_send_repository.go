package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pulse/internal/model"
)

// CeSendRepository defines CE send persistence operations.
type CeSendRepository interface {
	Create(ctx context.Context, send *model.CeSend) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CeSend, error)
	FindByIDAndRep(ctx context.Context, id, repID uuid.UUID) (*model.CeSend, error)
	MarkRedeemed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	ListForProfessionalEmail(ctx context.Context, email string) ([]model.CeSend, error)
	ListByRep(ctx context.Context, repID uuid.UUID) ([]model.CeSend, error)
	ListByRepIDs(ctx context.Context, repIDs []uuid.UUID) ([]model.CeSend, error)
}

type ceSendRepository struct {
	db *gorm.DB
}

// NewCeSendRepository creates a new CE send repository.
func NewCeSendRepository(db *gorm.DB) CeSendRepository {
	return &ceSendRepository{db: db}
}

func (r *ceSendRepository) Create(ctx context.Context, send *model.CeSend) error {
	return r.db.WithContext(ctx).Omit("Professional", "Rep").Create(send).Error
}

// FindByID loads the send with its professional.
func (r *ceSendRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.CeSend, error) {
	var send model.CeSend
	if err := r.db.WithContext(ctx).Preload("Professional").Where("id = ?", id).First(&send).Error; err != nil {
		return nil, err
	}
	return &send, nil
}

func (r *ceSendRepository) FindByIDAndRep(ctx context.Context, id, repID uuid.UUID) (*model.CeSend, error) {
	var send model.CeSend
	err := r.db.WithContext(ctx).
		Preload("Rep").
		Where("id = ? AND rep_id = ?", id, repID).
		First(&send).Error
	if err != nil {
		return nil, err
	}
	return &send, nil
}

// MarkRedeemed sets redeemed_at only if it is still empty.
// It reports whether this call performed the transition.
func (r *ceSendRepository) MarkRedeemed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.CeSend{}).
		Where("id = ? AND redeemed_at IS NULL", id).
		Update("redeemed_at", at)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ListForProfessionalEmail returns sends addressed to any professional record with the email.
// Ordering is newest first with id as a tie-breaker so repeated reads are stable.
func (r *ceSendRepository) ListForProfessionalEmail(ctx context.Context, email string) ([]model.CeSend, error) {
	var sends []model.CeSend
	err := r.db.WithContext(ctx).
		Preload("Rep").
		Joins("JOIN professionals ON professionals.id = ce_sends.professional_id").
		Where("LOWER(professionals.email) = LOWER(?)", email).
		Order("ce_sends.created_at DESC").
		Order("ce_sends.id DESC").
		Find(&sends).Error
	if err != nil {
		return nil, err
	}
	return sends, nil
}

// ListByRep returns the rep's sends with professionals, newest first.
func (r *ceSendRepository) ListByRep(ctx context.Context, repID uuid.UUID) ([]model.CeSend, error) {
	var sends []model.CeSend
	err := r.db.WithContext(ctx).
		Preload("Professional").
		Where("rep_id = ?", repID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&sends).Error
	if err != nil {
		return nil, err
	}
	return sends, nil
}

func (r *ceSendRepository) ListByRepIDs(ctx context.Context, repIDs []uuid.UUID) ([]model.CeSend, error) {
	var sends []model.CeSend
	if len(repIDs) == 0 {
		return sends, nil
	}
	if err := r.db.WithContext(ctx).Where("rep_id IN ?", repIDs).Find(&sends).Error; err != nil {
		return nil, err
	}
	return sends, nil
}
