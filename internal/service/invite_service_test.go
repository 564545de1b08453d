package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "pulse/internal/errors"
	"pulse/internal/model"
)

func TestInviteService_Create(t *testing.T) {
	managerID := uuid.New()
	orgID := uuid.New()

	tests := []struct {
		name          string
		role          model.Role
		setupMock     func(*MockProfileRepository, *MockInviteRepository)
		expectedError error
	}{
		{
			name: "rep invite into own org",
			role: model.RoleRep,
			setupMock: func(p *MockProfileRepository, i *MockInviteRepository) {
				p.On("FindByID", mock.Anything, managerID).Return(&model.Profile{ID: managerID, Role: model.RoleManager, OrgID: &orgID}, nil)
				i.On("Create", mock.Anything, mock.AnythingOfType("*model.OrgInvite")).Return(nil)
			},
		},
		{
			name:          "professionals cannot be invited",
			role:          model.RoleProfessional,
			setupMock:     func(*MockProfileRepository, *MockInviteRepository) {},
			expectedError: apperrors.ErrForbidden,
		},
		{
			name: "caller is not a manager",
			role: model.RoleRep,
			setupMock: func(p *MockProfileRepository, i *MockInviteRepository) {
				p.On("FindByID", mock.Anything, managerID).Return(&model.Profile{ID: managerID, Role: model.RoleRep, OrgID: &orgID}, nil)
			},
			expectedError: apperrors.ErrForbidden,
		},
		{
			name: "manager without organization",
			role: model.RoleManager,
			setupMock: func(p *MockProfileRepository, i *MockInviteRepository) {
				p.On("FindByID", mock.Anything, managerID).Return(&model.Profile{ID: managerID, Role: model.RoleManager}, nil)
			},
			expectedError: apperrors.ErrNoOrganization,
		},
		{
			name: "profile gone",
			role: model.RoleRep,
			setupMock: func(p *MockProfileRepository, i *MockInviteRepository) {
				p.On("FindByID", mock.Anything, managerID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles := new(MockProfileRepository)
			invites := new(MockInviteRepository)
			tt.setupMock(profiles, invites)

			svc := NewInviteService(profiles, invites).(*inviteService)
			svc.now = func() time.Time { return fixedNow }
			invite, err := svc.Create(context.Background(), managerID, tt.role)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, invite)
				invites.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.True(t, strings.HasPrefix(invite.Code, "PULSE-"))
				assert.Len(t, invite.Code, len("PULSE-")+inviteCodeLength)
				assert.Equal(t, orgID, invite.OrgID)
				assert.Equal(t, tt.role, invite.Role)
				assert.Equal(t, managerID, invite.CreatedBy)
				assert.Equal(t, fixedNow.Add(model.InviteTTL), invite.ExpiresAt)
			}
			profiles.AssertExpectations(t)
			invites.AssertExpectations(t)
		})
	}
}
