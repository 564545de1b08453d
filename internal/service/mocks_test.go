package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"pulse/internal/auth"
	"pulse/internal/coupon"
	"pulse/internal/model"
	"pulse/internal/notify"
)

// MockProfileRepository is a mock implementation of ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) CreateWithInvite(ctx context.Context, profile *model.Profile, code string, now time.Time) error {
	args := m.Called(ctx, profile, code, now)
	return args.Error(0)
}

func (m *MockProfileRepository) MarkEmailVerified(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByEmail(ctx context.Context, email string) (*model.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) ListRepsByOrg(ctx context.Context, orgID uuid.UUID) ([]model.Profile, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Profile), args.Error(1)
}

// MockInviteRepository is a mock implementation of InviteRepository.
type MockInviteRepository struct {
	mock.Mock
}

func (m *MockInviteRepository) Create(ctx context.Context, invite *model.OrgInvite) error {
	args := m.Called(ctx, invite)
	return args.Error(0)
}

func (m *MockInviteRepository) FindByCode(ctx context.Context, code string) (*model.OrgInvite, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrgInvite), args.Error(1)
}

// MockProfessionalRepository is a mock implementation of ProfessionalRepository.
type MockProfessionalRepository struct {
	mock.Mock
}

func (m *MockProfessionalRepository) Create(ctx context.Context, p *model.Professional) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfessionalRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Professional, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Professional), args.Error(1)
}

func (m *MockProfessionalRepository) FindByIDAndRep(ctx context.Context, id, repID uuid.UUID) (*model.Professional, error) {
	args := m.Called(ctx, id, repID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Professional), args.Error(1)
}

func (m *MockProfessionalRepository) FindByRepAndEmail(ctx context.Context, repID uuid.UUID, email string) (*model.Professional, error) {
	args := m.Called(ctx, repID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Professional), args.Error(1)
}

func (m *MockProfessionalRepository) ListByRep(ctx context.Context, repID uuid.UUID) ([]model.Professional, error) {
	args := m.Called(ctx, repID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Professional), args.Error(1)
}

func (m *MockProfessionalRepository) ListByRepIDs(ctx context.Context, repIDs []uuid.UUID) ([]model.Professional, error) {
	args := m.Called(ctx, repIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Professional), args.Error(1)
}

// MockCourseRepository is a mock implementation of CourseRepository.
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) FindByID(ctx context.Context, id string) (*model.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *MockCourseRepository) ListCatalog(ctx context.Context) ([]model.CourseProfession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CourseProfession), args.Error(1)
}

func (m *MockCourseRepository) HasDisciplineState(ctx context.Context, profession, state string) (bool, error) {
	args := m.Called(ctx, profession, state)
	return args.Bool(0), args.Error(1)
}

func (m *MockCourseRepository) UpsertCourse(ctx context.Context, course *model.Course, professions []string) error {
	args := m.Called(ctx, course, professions)
	return args.Error(0)
}

func (m *MockCourseRepository) UpsertDisciplineState(ctx context.Context, ds *model.DisciplineState) error {
	args := m.Called(ctx, ds)
	return args.Error(0)
}

// MockCeSendRepository is a mock implementation of CeSendRepository.
type MockCeSendRepository struct {
	mock.Mock
}

func (m *MockCeSendRepository) Create(ctx context.Context, send *model.CeSend) error {
	args := m.Called(ctx, send)
	return args.Error(0)
}

func (m *MockCeSendRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.CeSend, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CeSend), args.Error(1)
}

func (m *MockCeSendRepository) FindByIDAndRep(ctx context.Context, id, repID uuid.UUID) (*model.CeSend, error) {
	args := m.Called(ctx, id, repID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CeSend), args.Error(1)
}

func (m *MockCeSendRepository) MarkRedeemed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	args := m.Called(ctx, id, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockCeSendRepository) ListForProfessionalEmail(ctx context.Context, email string) ([]model.CeSend, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CeSend), args.Error(1)
}

func (m *MockCeSendRepository) ListByRep(ctx context.Context, repID uuid.UUID) ([]model.CeSend, error) {
	args := m.Called(ctx, repID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CeSend), args.Error(1)
}

func (m *MockCeSendRepository) ListByRepIDs(ctx context.Context, repIDs []uuid.UUID) ([]model.CeSend, error) {
	args := m.Called(ctx, repIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CeSend), args.Error(1)
}

// MockTouchpointRepository is a mock implementation of TouchpointRepository.
type MockTouchpointRepository struct {
	mock.Mock
}

func (m *MockTouchpointRepository) Create(ctx context.Context, tp *model.Touchpoint) error {
	args := m.Called(ctx, tp)
	return args.Error(0)
}

func (m *MockTouchpointRepository) ListByRepIDs(ctx context.Context, repIDs []uuid.UUID) ([]model.Touchpoint, error) {
	args := m.Called(ctx, repIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Touchpoint), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, data auth.RefreshTokenData, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, data, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (*auth.RefreshTokenData, error) {
	args := m.Called(ctx, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.RefreshTokenData), args.Error(1)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

// MockGateway is a mock implementation of coupon.Gateway.
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Create(ctx context.Context, p coupon.Params) (*coupon.Coupon, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coupon.Coupon), args.Error(1)
}

// MockMailer is a mock implementation of notify.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg notify.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
