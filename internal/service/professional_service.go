package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "pulse/internal/errors"
	"pulse/internal/model"
	"pulse/internal/repository"
)

// AddProfessionalInput is a new contact for a rep's network.
type AddProfessionalInput struct {
	Name       string
	Email      string
	Phone      string
	Facility   string
	City       string
	State      string
	Discipline string
}

// ProfessionalService manages a rep's network.
type ProfessionalService interface {
	Add(ctx context.Context, repID uuid.UUID, in AddProfessionalInput) (*model.Professional, error)
	List(ctx context.Context, repID uuid.UUID) ([]model.Professional, error)
}

type professionalService struct {
	repo repository.ProfessionalRepository
}

// NewProfessionalService creates a new professional service.
func NewProfessionalService(repo repository.ProfessionalRepository) ProfessionalService {
	return &professionalService{repo: repo}
}

// Add inserts a professional unless the rep already has one with the same email, ignoring case.
func (s *professionalService) Add(ctx context.Context, repID uuid.UUID, in AddProfessionalInput) (*model.Professional, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return nil, apperrors.ErrMissingFields
	}

	_, err := s.repo.FindByRepAndEmail(ctx, repID, email)
	if err == nil {
		return nil, apperrors.ErrProfessionalExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check professional email: %w", err)
	}

	p := &model.Professional{
		RepID:      repID,
		Name:       name,
		Email:      email,
		Phone:      optional(in.Phone),
		Facility:   optional(in.Facility),
		City:       optional(in.City),
		State:      optional(strings.ToUpper(in.State)),
		Discipline: optional(in.Discipline),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		// a concurrent add for the same email trips idx_professionals_rep_email
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrProfessionalExists
		}
		return nil, fmt.Errorf("create professional: %w", err)
	}
	return p, nil
}

// List returns the rep's professionals, newest first.
func (s *professionalService) List(ctx context.Context, repID uuid.UUID) ([]model.Professional, error) {
	pros, err := s.repo.ListByRep(ctx, repID)
	if err != nil {
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	return pros, nil
}

// optional trims s and maps empty to nil.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
