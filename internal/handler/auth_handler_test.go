package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "pulse/internal/errors"
	"pulse/internal/model"
	"pulse/internal/service"
)

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockAuthService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "sales signup with invite",
			body: `{"email":"rep@example.com","password":"secret1","full_name":"Marcus Johnson","account_type":"sales","invite_code":"PULSE-AB12CD34EF"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, mock.MatchedBy(func(in service.RegisterInput) bool {
					return in.AccountType == "sales" && in.InviteCode == "PULSE-AB12CD34EF"
				})).Return(&model.Profile{ID: uuid.New(), Email: "rep@example.com", Role: model.RoleRep}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "spent invite",
			body: `{"email":"rep@example.com","password":"secret1","full_name":"Marcus Johnson","invite_code":"PULSE-USED"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, mock.Anything).Return(nil, apperrors.ErrInvalidInvite)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INVITE",
		},
		{
			name: "org_id in the body is ignored",
			body: `{"email":"boss@example.com","password":"secret1","full_name":"Pat Lee","role":"manager","org_id":"` + uuid.NewString() + `"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, service.RegisterInput{
					Email: "boss@example.com", Password: "secret1", FullName: "Pat Lee", Role: "manager",
				}).Return(&model.Profile{ID: uuid.New(), Email: "boss@example.com", Role: model.RoleManager}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate email",
			body: `{"email":"rep@example.com","password":"secret1","full_name":"Marcus Johnson"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, mock.Anything).Return(nil, service.ErrUserAlreadyExists)
			},
			wantStatus: http.StatusConflict,
			wantCode:   "USER_ALREADY_EXISTS",
		},
		{
			name:       "unknown role",
			body:       `{"email":"rep@example.com","password":"secret1","full_name":"Marcus Johnson","role":"admin"}`,
			setupMock:  func(*MockAuthService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "short password",
			body:       `{"email":"rep@example.com","password":"123","full_name":"Marcus Johnson"}`,
			setupMock:  func(*MockAuthService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAuthService)
			tt.setupMock(svc)

			c, rec := newContext(http.MethodPost, "/api/auth/register", tt.body, nil)
			err := NewAuthHandler(svc).Register(c)
			if tt.wantCode != "" {
				assertHTTPError(t, err, tt.wantStatus, tt.wantCode)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStatus, rec.Code)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, "rep@example.com", "secret1").
		Return("access", "refresh", &model.Profile{Email: "rep@example.com", Role: model.RoleRep}, nil)
	svc.On("Login", mock.Anything, "rep@example.com", "wrong").
		Return("", "", nil, service.ErrInvalidCredentials)
	h := NewAuthHandler(svc)

	c, rec := newContext(http.MethodPost, "/api/auth/login", `{"email":"rep@example.com","password":"secret1"}`, nil)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"access"`)
	assert.Contains(t, rec.Body.String(), `"role":"rep"`)

	c, _ = newContext(http.MethodPost, "/api/auth/login", `{"email":"rep@example.com","password":"wrong"}`, nil)
	assertHTTPError(t, h.Login(c), http.StatusUnauthorized, "INVALID_CREDENTIALS")
}

func TestAuthHandler_RefreshAndLogout(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("RefreshToken", mock.Anything, "stale").Return("", service.ErrInvalidRefreshToken)
	svc.On("Logout", mock.Anything, "good").Return(nil)
	h := NewAuthHandler(svc)

	c, _ := newContext(http.MethodPost, "/api/auth/refresh", `{"refresh_token":"stale"}`, nil)
	assertHTTPError(t, h.Refresh(c), http.StatusUnauthorized, "INVALID_REFRESH_TOKEN")

	c, rec := newContext(http.MethodPost, "/api/auth/logout", `{"refresh_token":"good"}`, nil)
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	id := uuid.New()
	svc := new(MockAuthService)
	svc.On("Me", mock.Anything, id).Return(nil, apperrors.ErrProfileNotFound)

	c, _ := newContext(http.MethodGet, "/api/me", "", claimsFor(id, "ghost@example.com", model.RoleRep))
	assertHTTPError(t, NewAuthHandler(svc).Me(c), http.StatusNotFound, "PROFILE_NOT_FOUND")

	c, _ = newContext(http.MethodGet, "/api/me", "", nil)
	assertHTTPError(t, NewAuthHandler(svc).Me(c), http.StatusUnauthorized, "UNAUTHORIZED")
}

func TestAuthHandler_VerifyEmail(t *testing.T) {
	id := uuid.New()
	svc := new(MockAuthService)
	svc.On("VerifyEmail", mock.Anything, "good").Return(&model.Profile{ID: id, Email: "jane@clinic.org", Role: model.RoleProfessional}, nil)
	svc.On("VerifyEmail", mock.Anything, "forged").Return(nil, apperrors.ErrInvalidVerifyToken)
	h := NewAuthHandler(svc)

	c, rec := newContext(http.MethodPost, "/api/auth/verify-email", `{"token":"good"}`, nil)
	require.NoError(t, h.VerifyEmail(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"jane@clinic.org"`)

	c, _ = newContext(http.MethodPost, "/api/auth/verify-email", `{"token":"forged"}`, nil)
	assertHTTPError(t, h.VerifyEmail(c), http.StatusBadRequest, "INVALID_VERIFICATION_TOKEN")

	c, _ = newContext(http.MethodPost, "/api/auth/verify-email", `{}`, nil)
	assertHTTPError(t, h.VerifyEmail(c), http.StatusBadRequest, "VALIDATION_ERROR")
	svc.AssertExpectations(t)
}

func TestAuthHandler_ResendVerification(t *testing.T) {
	id := uuid.New()
	svc := new(MockAuthService)
	svc.On("ResendVerification", mock.Anything, id).Return(nil).Once()
	svc.On("ResendVerification", mock.Anything, id).Return(apperrors.ErrEmailDelivery).Once()
	h := NewAuthHandler(svc)

	c, rec := newContext(http.MethodPost, "/api/auth/verify-email/resend", "", claimsFor(id, "jane@clinic.org", model.RoleProfessional))
	require.NoError(t, h.ResendVerification(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, _ = newContext(http.MethodPost, "/api/auth/verify-email/resend", "", claimsFor(id, "jane@clinic.org", model.RoleProfessional))
	assertHTTPError(t, h.ResendVerification(c), http.StatusInternalServerError, "EMAIL_FAILED")

	c, _ = newContext(http.MethodPost, "/api/auth/verify-email/resend", "", nil)
	assertHTTPError(t, h.ResendVerification(c), http.StatusUnauthorized, "UNAUTHORIZED")
}
