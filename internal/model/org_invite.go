package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InviteTTL is how long an organization invite stays redeemable.
const InviteTTL = 7 * 24 * time.Hour

// OrgInvite is a single-use code a manager hands out to bring a rep or another manager into the organization.
type OrgInvite struct {
	ID        uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Code      string     `json:"code" gorm:"size:32;uniqueIndex;not null"`
	OrgID     uuid.UUID  `json:"org_id" gorm:"type:char(36);not null;index"`
	Role      Role       `json:"role" gorm:"type:varchar(20);not null"`
	CreatedBy uuid.UUID  `json:"created_by" gorm:"type:char(36);not null"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"not null"`
	UsedBy    *uuid.UUID `json:"used_by,omitempty" gorm:"type:char(36)"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (OrgInvite) TableName() string { return "org_invites" }

// BeforeCreate sets UUID before creating the record.
func (i *OrgInvite) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
