package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"pulse/internal/auth"
	"pulse/internal/coupon"
	"pulse/internal/model"
	"pulse/internal/service"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

// newContext builds an echo context with a JSON body and, when claims is set, an authenticated caller.
func newContext(method, target, body string, claims *auth.Claims) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set("user", &jwt.Token{Claims: claims})
	}
	return c, rec
}

func claimsFor(id uuid.UUID, email string, role model.Role) *auth.Claims {
	return &auth.Claims{UserID: id.String(), Email: email, Role: role, Type: auth.TokenTypeAccess}
}

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (*model.Profile, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, string, *model.Profile, error) {
	args := m.Called(ctx, email, password)
	if args.Get(2) == nil {
		return args.String(0), args.String(1), nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*model.Profile), args.Error(3)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) Me(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockAuthService) VerifyEmail(ctx context.Context, token string) (*model.Profile, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockAuthService) ResendVerification(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockInviteService is a mock implementation of service.InviteService.
type MockInviteService struct {
	mock.Mock
}

func (m *MockInviteService) Create(ctx context.Context, managerID uuid.UUID, role model.Role) (*model.OrgInvite, error) {
	args := m.Called(ctx, managerID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrgInvite), args.Error(1)
}

// MockProfessionalService is a mock implementation of service.ProfessionalService.
type MockProfessionalService struct {
	mock.Mock
}

func (m *MockProfessionalService) Add(ctx context.Context, repID uuid.UUID, in service.AddProfessionalInput) (*model.Professional, error) {
	args := m.Called(ctx, repID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Professional), args.Error(1)
}

func (m *MockProfessionalService) List(ctx context.Context, repID uuid.UUID) ([]model.Professional, error) {
	args := m.Called(ctx, repID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Professional), args.Error(1)
}

// MockCEService is a mock implementation of service.CEService.
type MockCEService struct {
	mock.Mock
}

func (m *MockCEService) Send(ctx context.Context, callerID uuid.UUID, in service.SendInput) (*service.SendResult, error) {
	args := m.Called(ctx, callerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SendResult), args.Error(1)
}

func (m *MockCEService) MarkRedeemed(ctx context.Context, callerID uuid.UUID, ceSendID string) error {
	args := m.Called(ctx, callerID, ceSendID)
	return args.Error(0)
}

func (m *MockCEService) MyCourses(ctx context.Context, callerID uuid.UUID) ([]service.MyCourse, error) {
	args := m.Called(ctx, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.MyCourse), args.Error(1)
}

func (m *MockCEService) SendReminder(ctx context.Context, callerID uuid.UUID, ceSendID string) error {
	args := m.Called(ctx, callerID, ceSendID)
	return args.Error(0)
}

func (m *MockCEService) History(ctx context.Context, repID uuid.UUID) ([]service.HistoryItem, error) {
	args := m.Called(ctx, repID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.HistoryItem), args.Error(1)
}

// MockStatsService is a mock implementation of service.StatsService.
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) ManagerStats(ctx context.Context, managerID uuid.UUID) (*service.ManagerStats, error) {
	args := m.Called(ctx, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ManagerStats), args.Error(1)
}

// MockCourseService is a mock implementation of service.CourseService.
type MockCourseService struct {
	mock.Mock
}

func (m *MockCourseService) Catalog(ctx context.Context, repID uuid.UUID, professionalID string) ([]service.CatalogCourse, error) {
	args := m.Called(ctx, repID, professionalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.CatalogCourse), args.Error(1)
}

// MockCouponService is a mock implementation of service.CouponService.
type MockCouponService struct {
	mock.Mock
}

func (m *MockCouponService) Create(ctx context.Context, in service.CreateCouponInput) (*coupon.Coupon, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coupon.Coupon), args.Error(1)
}

// MockSeedService is a mock implementation of service.SeedService.
type MockSeedService struct {
	mock.Mock
}

func (m *MockSeedService) FetchCatalog(ctx context.Context, url string) (*service.CatalogSeed, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CatalogSeed), args.Error(1)
}

func (m *MockSeedService) SeedCatalog(ctx context.Context, seed *service.CatalogSeed) (*service.SeedResult, error) {
	args := m.Called(ctx, seed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SeedResult), args.Error(1)
}
