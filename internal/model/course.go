package model

import (
	"github.com/shopspring/decimal"
)

// Course is a catalog entry sold through the store.
type Course struct {
	ID        string           `json:"id" gorm:"size:64;primaryKey"`
	Name      string           `json:"name" gorm:"size:255;not null"`
	Hours     int              `json:"hours" gorm:"not null"`
	Price     *decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Topic     *string          `json:"topic" gorm:"size:120"`
	ProductID *int64           `json:"product_id"`
}

func (Course) TableName() string { return "courses" }

// CourseProfession links a course to a profession it is approved for.
type CourseProfession struct {
	CourseID   string `json:"course_id" gorm:"size:64;primaryKey"`
	Profession string `json:"profession" gorm:"size:120;primaryKey"`
	Course     Course `json:"course" gorm:"foreignKey:CourseID"`
}

func (CourseProfession) TableName() string { return "course_professions" }

// DisciplineState records that a profession's board in State accepts the catalog.
type DisciplineState struct {
	Profession string `json:"profession" gorm:"size:120;primaryKey"`
	State      string `json:"state" gorm:"size:2;primaryKey"`
}

func (DisciplineState) TableName() string { return "discipline_states" }
