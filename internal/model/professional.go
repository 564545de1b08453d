package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Professional is a healthcare professional in a rep's network.
type Professional struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	RepID      uuid.UUID `json:"rep_id" gorm:"type:char(36);not null;index"`
	Name       string    `json:"name" gorm:"size:255;not null"`
	Email      string    `json:"email" gorm:"size:255;not null;index"`
	Phone      *string   `json:"phone" gorm:"size:50"`
	Facility   *string   `json:"facility" gorm:"size:255"`
	City       *string   `json:"city" gorm:"size:120"`
	State      *string   `json:"state" gorm:"size:2"`
	Discipline *string   `json:"discipline" gorm:"size:120"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}

func (Professional) TableName() string { return "professionals" }

// BeforeCreate sets UUID before creating the record.
func (p *Professional) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
