package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pulse/internal/model"
)

// ProfileRepository defines profile persistence operations.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	CreateWithInvite(ctx context.Context, profile *model.Profile, code string, now time.Time) error
	MarkEmailVerified(ctx context.Context, id uuid.UUID, at time.Time) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	FindByEmail(ctx context.Context, email string) (*model.Profile, error)
	ListRepsByOrg(ctx context.Context, orgID uuid.UUID) ([]model.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// CreateWithInvite claims a single-use invite and creates the profile in one transaction.
// The profile takes the invite's organization and role. An unknown, used or expired code
// yields gorm.ErrRecordNotFound and nothing is written.
func (r *profileRepository) CreateWithInvite(ctx context.Context, profile *model.Profile, code string, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var invite model.OrgInvite
		err := tx.Where("code = ? AND used_at IS NULL AND expires_at > ?", code, now).First(&invite).Error
		if err != nil {
			return err
		}

		orgID := invite.OrgID
		profile.OrgID = &orgID
		profile.Role = invite.Role
		if err := tx.Create(profile).Error; err != nil {
			return err
		}

		res := tx.Model(&model.OrgInvite{}).
			Where("id = ? AND used_at IS NULL", invite.ID).
			Updates(map[string]interface{}{"used_by": profile.ID, "used_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *profileRepository) MarkEmailVerified(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.Profile{}).
		Where("id = ? AND email_verified_at IS NULL", id).
		Update("email_verified_at", at).Error
}

func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByEmail matches the email case-insensitively.
func (r *profileRepository) FindByEmail(ctx context.Context, email string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListRepsByOrg returns the reps of an organization ordered by name.
func (r *profileRepository) ListRepsByOrg(ctx context.Context, orgID uuid.UUID) ([]model.Profile, error) {
	var reps []model.Profile
	err := r.db.WithContext(ctx).
		Where("org_id = ? AND role = ?", orgID, model.RoleRep).
		Order("full_name ASC").
		Find(&reps).Error
	if err != nil {
		return nil, err
	}
	return reps, nil
}
