package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pulse/internal/coupon"
	apperrors "pulse/internal/errors"
	"pulse/internal/model"
	"pulse/internal/repository"
)

const inviteCodeLength = 10

// InviteService lets managers bring reps and co-managers into their organization.
type InviteService interface {
	Create(ctx context.Context, managerID uuid.UUID, role model.Role) (*model.OrgInvite, error)
}

type inviteService struct {
	profiles repository.ProfileRepository
	invites  repository.InviteRepository
	now      func() time.Time
}

// NewInviteService creates a new invite service.
func NewInviteService(profiles repository.ProfileRepository, invites repository.InviteRepository) InviteService {
	return &inviteService{profiles: profiles, invites: invites, now: time.Now}
}

// Create issues a single-use invite into the manager's own organization.
func (s *inviteService) Create(ctx context.Context, managerID uuid.UUID, role model.Role) (*model.OrgInvite, error) {
	if role != model.RoleRep && role != model.RoleManager {
		return nil, apperrors.ErrForbidden
	}

	manager, err := s.profiles.FindByID(ctx, managerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find manager: %w", err)
	}
	if manager.Role != model.RoleManager {
		return nil, apperrors.ErrForbidden
	}
	if manager.OrgID == nil {
		return nil, apperrors.ErrNoOrganization
	}

	suffix, err := coupon.RandomCode(inviteCodeLength)
	if err != nil {
		return nil, fmt.Errorf("generate invite code: %w", err)
	}
	now := s.now()
	invite := &model.OrgInvite{
		Code:      "PULSE-" + suffix,
		OrgID:     *manager.OrgID,
		Role:      role,
		CreatedBy: manager.ID,
		ExpiresAt: now.Add(model.InviteTTL),
	}
	if err := s.invites.Create(ctx, invite); err != nil {
		return nil, fmt.Errorf("create invite: %w", err)
	}
	log.Printf("[ORG] %s invited a %s into org %s", manager.ID, role, invite.OrgID)
	return invite, nil
}
