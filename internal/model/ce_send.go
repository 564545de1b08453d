package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Discount is the offer attached to a CE send.
type Discount string

const (
	DiscountFree    Discount = "100% Free"
	DiscountHalf    Discount = "50% Off"
	DiscountQuarter Discount = "25% Off"
)

// Discounts lists the accepted discounts in display order.
var Discounts = []Discount{DiscountFree, DiscountHalf, DiscountQuarter}

// Valid reports whether d is one of the accepted discounts.
func (d Discount) Valid() bool {
	switch d {
	case DiscountFree, DiscountHalf, DiscountQuarter:
		return true
	}
	return false
}

// Percent returns the coupon percentage for d, or 0 when d is not valid.
func (d Discount) Percent() int {
	switch d {
	case DiscountFree:
		return 100
	case DiscountHalf:
		return 50
	case DiscountQuarter:
		return 25
	}
	return 0
}

// CouponValidity is how long a CE coupon stays redeemable after it is sent.
const CouponValidity = 90 * 24 * time.Hour

// CeSend records a course sent by a rep to a professional.
// A send is created once and may later be redeemed; RedeemedAt is set at most once.
type CeSend struct {
	ID              uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	RepID           uuid.UUID  `json:"rep_id" gorm:"type:char(36);not null;index"`
	ProfessionalID  uuid.UUID  `json:"professional_id" gorm:"type:char(36);not null;index"`
	CourseID        string     `json:"course_id" gorm:"size:64"`
	CourseName      string     `json:"course_name" gorm:"size:255;not null"`
	CourseHours     int        `json:"course_hours" gorm:"not null"`
	Discount        Discount   `json:"discount" gorm:"type:varchar(20);not null"`
	CouponCode      string     `json:"coupon_code" gorm:"size:64;not null;uniqueIndex"`
	CouponID        int64      `json:"coupon_id"`
	ProductID       *int64     `json:"product_id"`
	PersonalMessage *string    `json:"personal_message" gorm:"type:text"`
	CreatedAt       time.Time  `json:"created_at" gorm:"index"`
	RedeemedAt      *time.Time `json:"redeemed_at"`

	Professional Professional `json:"-" gorm:"foreignKey:ProfessionalID"`
	Rep          Profile      `json:"-" gorm:"foreignKey:RepID"`
}

func (CeSend) TableName() string { return "ce_sends" }

// BeforeCreate sets UUID before creating the record.
func (s *CeSend) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ExpiresAt is the display expiry of the coupon; it is not stored or enforced here.
func (s *CeSend) ExpiresAt() time.Time {
	return s.CreatedAt.Add(CouponValidity)
}

// Redeemed reports whether the course was marked redeemed.
func (s *CeSend) Redeemed() bool {
	return s.RedeemedAt != nil
}
