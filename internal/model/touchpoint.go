package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TouchpointType classifies a rep interaction.
type TouchpointType string

const (
	TouchpointCESend TouchpointType = "ce_send"
)

// CESendPoints is the gamification score of a CE send touchpoint.
const CESendPoints = 5

// Touchpoint is an append-only activity entry between a rep and a professional.
type Touchpoint struct {
	ID             uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	RepID          uuid.UUID      `json:"rep_id" gorm:"type:char(36);not null;index"`
	ProfessionalID uuid.UUID      `json:"professional_id" gorm:"type:char(36);not null;index"`
	Type           TouchpointType `json:"type" gorm:"type:varchar(32);not null"`
	Notes          string         `json:"notes" gorm:"type:text"`
	Points         int            `json:"points" gorm:"not null;default:0"`
	CreatedAt      time.Time      `json:"created_at" gorm:"index"`
}

func (Touchpoint) TableName() string { return "touchpoints" }

// BeforeCreate sets UUID before creating the record.
func (t *Touchpoint) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
