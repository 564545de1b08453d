package repository

import (
	"context"

	"gorm.io/gorm"

	"pulse/internal/model"
)

// InviteRepository stores organization invites. Redemption happens in ProfileRepository.CreateWithInvite.
type InviteRepository interface {
	Create(ctx context.Context, invite *model.OrgInvite) error
	FindByCode(ctx context.Context, code string) (*model.OrgInvite, error)
}

type inviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository creates a new invite repository.
func NewInviteRepository(db *gorm.DB) InviteRepository {
	return &inviteRepository{db: db}
}

func (r *inviteRepository) Create(ctx context.Context, invite *model.OrgInvite) error {
	return r.db.WithContext(ctx).Create(invite).Error
}

func (r *inviteRepository) FindByCode(ctx context.Context, code string) (*model.OrgInvite, error) {
	var invite model.OrgInvite
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&invite).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}
