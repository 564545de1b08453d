package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pulse/internal/model"
)

// CourseRepository defines catalog persistence operations.
type CourseRepository interface {
	FindByID(ctx context.Context, id string) (*model.Course, error)
	ListCatalog(ctx context.Context) ([]model.CourseProfession, error)
	HasDisciplineState(ctx context.Context, profession, state string) (bool, error)
	UpsertCourse(ctx context.Context, course *model.Course, professions []string) error
	UpsertDisciplineState(ctx context.Context, ds *model.DisciplineState) error
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) FindByID(ctx context.Context, id string) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// ListCatalog returns every course/profession pair with its course loaded.
func (r *courseRepository) ListCatalog(ctx context.Context) ([]model.CourseProfession, error) {
	var rows []model.CourseProfession
	if err := r.db.WithContext(ctx).Preload("Course").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *courseRepository) HasDisciplineState(ctx context.Context, profession, state string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.DisciplineState{}).
		Where("profession = ? AND state = ?", profession, state).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpsertCourse writes a course and its profession links in one transaction.
func (r *courseRepository) UpsertCourse(ctx context.Context, course *model.Course, professions []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(course).Error; err != nil {
			return err
		}
		for _, p := range professions {
			link := &model.CourseProfession{CourseID: course.ID, Profession: p}
			if err := tx.Omit("Course").Clauses(clause.OnConflict{DoNothing: true}).Create(link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *courseRepository) UpsertDisciplineState(ctx context.Context, ds *model.DisciplineState) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(ds).Error
}
