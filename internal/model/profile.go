package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of account roles. It drives dashboard routing and endpoint access.
type Role string

const (
	RoleManager      Role = "manager"
	RoleRep          Role = "rep"
	RoleProfessional Role = "professional"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleRep, RoleProfessional:
		return true
	}
	return false
}

// ResolveRole turns loosely typed signup metadata into a Role.
// An explicit valid role wins; an account type of "sales" means rep; anything else is a professional.
func ResolveRole(role, accountType string) Role {
	if r := Role(strings.ToLower(strings.TrimSpace(role))); r.Valid() {
		return r
	}
	if strings.EqualFold(strings.TrimSpace(accountType), "sales") {
		return RoleRep
	}
	return RoleProfessional
}

// Profile is an authenticated account: a manager, a rep or a professional.
type Profile struct {
	ID           uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FullName     string     `json:"full_name" gorm:"size:255"`
	Role         Role       `json:"role" gorm:"type:varchar(20);not null;index"`
	OrgID        *uuid.UUID `json:"org_id,omitempty" gorm:"type:char(36);index"`
	// EmailVerifiedAt is set once the owner follows the verification link.
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TableName pins the table name.
func (Profile) TableName() string { return "profiles" }

// BeforeCreate sets UUID before creating the record.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// EmailVerified reports whether the profile proved it owns its email.
func (p *Profile) EmailVerified() bool {
	return p != nil && p.EmailVerifiedAt != nil
}

// DisplayName returns the trimmed full name, or "Rep" when none is set.
func (p *Profile) DisplayName() string {
	if p == nil {
		return "Rep"
	}
	if name := strings.TrimSpace(p.FullName); name != "" {
		return name
	}
	return "Rep"
}
