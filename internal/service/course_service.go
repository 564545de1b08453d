package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pulse/internal/cache"
	apperrors "pulse/internal/errors"
	"pulse/internal/model"
	"pulse/internal/repository"
)

// Approval states of a course for a professional's licensing board.
const (
	ApprovalNational    = "national"
	ApprovalNoState     = "no-state"
	ApprovalApproved    = "approved"
	ApprovalNotApproved = "not-approved"
)

// disciplineAliases maps the labels used when adding a professional to catalog professions.
var disciplineAliases = map[string]string{
	"Nursing":     "Nursing",
	"Social Work": "Social Work",
	"Case Mgmt":   "Case Management",
	"PT":          "PT",
	"OT":          "OT",
	"SLP":         "ST",
	"ST":          "ST",
}

// nationallyApproved professions accept the catalog in every state.
var nationallyApproved = map[string]bool{
	"Nursing":         true,
	"Case Management": true,
}

// MapDiscipline returns the catalog profession for a discipline label; unknown labels pass through.
func MapDiscipline(discipline string) string {
	if p, ok := disciplineAliases[discipline]; ok {
		return p
	}
	return discipline
}

// CatalogCourse is a course offered to a professional.
type CatalogCourse struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Hours      int              `json:"hours"`
	Price      *decimal.Decimal `json:"price"`
	Topic      *string          `json:"topic"`
	ProductID  *int64           `json:"productId"`
	Profession string           `json:"profession"`
	Approval   string           `json:"approval,omitempty"`
}

// CourseService serves the course catalog.
type CourseService interface {
	Catalog(ctx context.Context, repID uuid.UUID, professionalID string) ([]CatalogCourse, error)
}

type courseService struct {
	courses       repository.CourseRepository
	professionals repository.ProfessionalRepository
	cache         *cache.Client
}

// NewCourseService creates a new course service.
func NewCourseService(courses repository.CourseRepository, professionals repository.ProfessionalRepository, c *cache.Client) CourseService {
	return &courseService{courses: courses, professionals: professionals, cache: c}
}

// Catalog lists courses sorted by name. With a professional, rows are narrowed to their
// discipline, de-duplicated by course and tagged with the approval status for their state.
func (s *courseService) Catalog(ctx context.Context, repID uuid.UUID, professionalID string) ([]CatalogCourse, error) {
	var pro *model.Professional
	if professionalID != "" {
		id, err := uuid.Parse(professionalID)
		if err != nil {
			return nil, apperrors.ErrProfessionalNotFound
		}
		pro, err = s.professionals.FindByIDAndRep(ctx, id, repID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfessionalNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("find professional: %w", err)
		}
	}

	discipline, state := "", ""
	if pro != nil {
		if pro.Discipline != nil {
			discipline = MapDiscipline(strings.TrimSpace(*pro.Discipline))
		}
		if pro.State != nil {
			state = strings.ToUpper(strings.TrimSpace(*pro.State))
		}
	}

	key := cache.CatalogKey(discipline, state)
	if pro != nil {
		var cached []CatalogCourse
		if s.cache.GetJSON(ctx, key, &cached) {
			return cached, nil
		}
	}

	all, err := s.courses.ListCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	rows := make([]model.CourseProfession, 0, len(all))
	for _, r := range all {
		if r.Course.ID != "" {
			rows = append(rows, r)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Course.Name < rows[j].Course.Name
	})

	if pro == nil {
		out := make([]CatalogCourse, 0, len(rows))
		for _, r := range rows {
			out = append(out, catalogCourse(r))
		}
		return out, nil
	}

	out := make([]CatalogCourse, 0, len(rows))
	seen := make(map[string]bool)
	approvals := make(map[string]string)
	for _, r := range rows {
		if discipline != "" && r.Profession != discipline {
			continue
		}
		if seen[r.CourseID] {
			continue
		}
		seen[r.CourseID] = true

		approval, ok := approvals[r.Profession]
		if !ok {
			approval, err = s.approval(ctx, r.Profession, state)
			if err != nil {
				return nil, err
			}
			approvals[r.Profession] = approval
		}
		c := catalogCourse(r)
		c.Approval = approval
		out = append(out, c)
	}

	_ = s.cache.SetJSON(ctx, key, out, cache.CatalogTTL)
	return out, nil
}

func (s *courseService) approval(ctx context.Context, profession, state string) (string, error) {
	if state == "" {
		if nationallyApproved[profession] {
			return ApprovalNational, nil
		}
		return ApprovalNoState, nil
	}
	ok, err := s.courses.HasDisciplineState(ctx, profession, state)
	if err != nil {
		return "", fmt.Errorf("check state approval: %w", err)
	}
	if ok {
		return ApprovalApproved, nil
	}
	return ApprovalNotApproved, nil
}

func catalogCourse(r model.CourseProfession) CatalogCourse {
	return CatalogCourse{
		ID:         r.Course.ID,
		Name:       r.Course.Name,
		Hours:      r.Course.Hours,
		Price:      r.Course.Price,
		Topic:      r.Course.Topic,
		ProductID:  r.Course.ProductID,
		Profession: r.Profession,
	}
}
