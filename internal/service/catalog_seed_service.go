package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pulse/internal/model"
	"pulse/internal/repository"
)

// CatalogEntry is one course of a catalog seed file.
type CatalogEntry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Hours       int      `json:"hours"`
	Price       string   `json:"price"`
	Topic       string   `json:"topic"`
	ProductID   int64    `json:"productId"`
	Professions []string `json:"professions"`
}

// DisciplineStateEntry marks a state board that accepts the catalog for a profession.
type DisciplineStateEntry struct {
	Profession string `json:"profession"`
	State      string `json:"state"`
}

// CatalogSeed is the document loaded by the seed command and the seed endpoint.
type CatalogSeed struct {
	Courses          []CatalogEntry         `json:"courses"`
	DisciplineStates []DisciplineStateEntry `json:"disciplineStates"`
}

// SeedResult reports what a seed run wrote.
type SeedResult struct {
	Courses          int `json:"courses"`
	DisciplineStates int `json:"disciplineStates"`
	Skipped          int `json:"skipped"`
}

var defaultProfessions = []string{"Nursing", "Social Work", "Case Management"}

// DefaultCatalog is the built-in catalog used when no seed URL is configured.
func DefaultCatalog() *CatalogSeed {
	return &CatalogSeed{
		Courses: []CatalogEntry{
			{ID: "ethics", Name: "Ethics in Caring for the Elderly", Hours: 2, Topic: "Ethics", Professions: defaultProfessions},
			{ID: "palliative", Name: "Palliative and Hospice Care", Hours: 3, Topic: "End of Life", Professions: defaultProfessions},
			{ID: "mental-health", Name: "Mental Health and The Elderly", Hours: 2, Topic: "Mental Health", Professions: defaultProfessions},
			{ID: "chronic", Name: "Chronic Disease Management", Hours: 2, Topic: "Clinical", Professions: []string{"Nursing", "Case Management", "PT", "OT"}},
			{ID: "patient-safety", Name: "Patient Safety", Hours: 2, Topic: "Safety", Professions: []string{"Nursing", "PT", "OT", "ST"}},
		},
		DisciplineStates: []DisciplineStateEntry{
			{Profession: "Social Work", State: "TX"},
			{Profession: "Social Work", State: "FL"},
			{Profession: "PT", State: "TX"},
			{Profession: "OT", State: "TX"},
			{Profession: "ST", State: "TX"},
		},
	}
}

// SeedService loads the course catalog.
type SeedService interface {
	FetchCatalog(ctx context.Context, url string) (*CatalogSeed, error)
	SeedCatalog(ctx context.Context, seed *CatalogSeed) (*SeedResult, error)
}

type seedService struct {
	courses repository.CourseRepository
	client  *http.Client
}

// NewSeedService creates a new catalog seed service.
func NewSeedService(courses repository.CourseRepository) SeedService {
	return &seedService{
		courses: courses,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchCatalog downloads a catalog seed document.
func (s *seedService) FetchCatalog(ctx context.Context, url string) (*CatalogSeed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog source returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var seed CatalogSeed
	if err := json.Unmarshal(body, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return &seed, nil
}

// SeedCatalog upserts every valid course and discipline state. Invalid entries are skipped.
func (s *seedService) SeedCatalog(ctx context.Context, seed *CatalogSeed) (*SeedResult, error) {
	res := &SeedResult{}
	for _, entry := range seed.Courses {
		course, ok := toCourse(entry)
		if !ok {
			log.Printf("[SEED] skipping course %q", entry.ID)
			res.Skipped++
			continue
		}
		if err := s.courses.UpsertCourse(ctx, course, entry.Professions); err != nil {
			return res, fmt.Errorf("error seeding course %s: %w", entry.ID, err)
		}
		res.Courses++
	}

	for _, entry := range seed.DisciplineStates {
		profession := strings.TrimSpace(entry.Profession)
		state := strings.ToUpper(strings.TrimSpace(entry.State))
		if profession == "" || len(state) != 2 {
			log.Printf("[SEED] skipping discipline state %q/%q", entry.Profession, entry.State)
			res.Skipped++
			continue
		}
		if err := s.courses.UpsertDisciplineState(ctx, &model.DisciplineState{Profession: profession, State: state}); err != nil {
			return res, fmt.Errorf("error seeding discipline state %s/%s: %w", profession, state, err)
		}
		res.DisciplineStates++
	}
	return res, nil
}

func toCourse(e CatalogEntry) (*model.Course, bool) {
	id := strings.TrimSpace(e.ID)
	name := strings.TrimSpace(e.Name)
	if id == "" || name == "" || e.Hours <= 0 {
		return nil, false
	}
	course := &model.Course{ID: id, Name: name, Hours: e.Hours, Topic: optional(e.Topic)}
	if e.Price != "" {
		price, err := decimal.NewFromString(e.Price)
		if err != nil {
			return nil, false
		}
		course.Price = &price
	}
	if e.ProductID > 0 {
		pid := e.ProductID
		course.ProductID = &pid
	}
	return course, true
}
