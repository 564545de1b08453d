package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pulse/internal/model"
)

func day(d int, month time.Month) time.Time {
	return time.Date(2025, month, d, 15, 0, 0, 0, time.Local)
}

func TestRedemptionRate(t *testing.T) {
	tests := []struct {
		redeemed, total int
		want            string
	}{
		{0, 0, "—"},
		{0, 4, "0%"},
		{1, 3, "33%"},
		{2, 3, "67%"},
		{1, 2, "50%"},
		{3, 3, "100%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RedemptionRate(tt.redeemed, tt.total))
	}
}

func TestBuildManagerStats(t *testing.T) {
	alice := model.Profile{ID: uuid.New(), FullName: "Alice Reed", Role: model.RoleRep}
	bob := model.Profile{ID: uuid.New(), FullName: "Bob Stone", Role: model.RoleRep}
	redeemed := day(12, time.February)
	now := day(14, time.February)

	sends := []model.CeSend{
		{RepID: alice.ID, CreatedAt: day(2, time.February)},
		{RepID: alice.ID, CreatedAt: day(5, time.February), RedeemedAt: &redeemed},
		{RepID: alice.ID, CreatedAt: day(10, time.February)},
	}
	pros := []model.Professional{
		{RepID: alice.ID}, {RepID: alice.ID}, {RepID: bob.ID},
	}
	touchs := []model.Touchpoint{
		{RepID: alice.ID, CreatedAt: day(2, time.February)},
		{RepID: alice.ID, CreatedAt: day(10, time.February)},
	}

	out := BuildManagerStats([]model.Profile{bob, alice}, sends, pros, touchs, now)
	require.NotNil(t, out.Stats)
	assert.Equal(t, 3, out.Stats.TotalCesThisMonth)
	assert.Equal(t, 3, out.Stats.TotalProfessionals)
	assert.Equal(t, 1, out.Stats.ActiveReps)
	assert.Equal(t, "33%", out.Stats.RedemptionRate)

	require.Len(t, out.Reps, 2)
	assert.Equal(t, "Alice Reed", out.Reps[0].Name)
	assert.Equal(t, 3, out.Reps[0].CesThisMonth)
	assert.Equal(t, 2, out.Reps[0].Professionals)
	assert.Equal(t, "33%", out.Reps[0].RedemptionRate)
	assert.Equal(t, "2025-02-10", out.Reps[0].LastActivity)

	assert.Equal(t, "Bob Stone", out.Reps[1].Name)
	assert.Equal(t, 0, out.Reps[1].CesThisMonth)
	assert.Equal(t, 1, out.Reps[1].Professionals)
	assert.Equal(t, "—", out.Reps[1].RedemptionRate)
	assert.Equal(t, "No activity", out.Reps[1].LastActivity)
}

func TestBuildManagerStats_MonthBoundary(t *testing.T) {
	rep := model.Profile{ID: uuid.New()}
	now := day(1, time.March)
	sends := []model.CeSend{
		{RepID: rep.ID, CreatedAt: time.Date(2025, time.February, 28, 23, 59, 0, 0, time.Local)},
		{RepID: rep.ID, CreatedAt: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)},
	}

	out := BuildManagerStats([]model.Profile{rep}, sends, nil, nil, now)
	assert.Equal(t, 1, out.Stats.TotalCesThisMonth)
	assert.Equal(t, 1, out.Reps[0].CesThisMonth)
	assert.Equal(t, "Rep", out.Reps[0].Name)
	assert.Equal(t, "0%", out.Reps[0].RedemptionRate)
}

func TestBuildManagerStats_NoReps(t *testing.T) {
	out := BuildManagerStats(nil, nil, nil, nil, time.Now())
	assert.Nil(t, out.Stats)
	assert.Empty(t, out.Reps)
	assert.NotNil(t, out.Reps)
}

func TestStatsService_ManagerStats(t *testing.T) {
	managerID := uuid.New()
	orgID := uuid.New()
	alice := model.Profile{ID: uuid.New(), FullName: "Alice Reed", Role: model.RoleRep, OrgID: &orgID}

	tests := []struct {
		name      string
		setupMock func(*ceMocks)
		check     func(*testing.T, *ManagerStats, error)
	}{
		{
			name: "manager without an org",
			setupMock: func(m *ceMocks) {
				m.profiles.On("FindByID", mock.Anything, managerID).Return(&model.Profile{ID: managerID, Role: model.RoleManager}, nil)
			},
			check: func(t *testing.T, out *ManagerStats, err error) {
				require.NoError(t, err)
				assert.Nil(t, out.Stats)
				assert.Empty(t, out.Reps)
			},
		},
		{
			name: "unknown manager",
			setupMock: func(m *ceMocks) {
				m.profiles.On("FindByID", mock.Anything, managerID).Return(nil, gorm.ErrRecordNotFound)
			},
			check: func(t *testing.T, out *ManagerStats, err error) {
				require.NoError(t, err)
				assert.Nil(t, out.Stats)
			},
		},
		{
			name: "org without reps",
			setupMock: func(m *ceMocks) {
				m.profiles.On("FindByID", mock.Anything, managerID).Return(&model.Profile{ID: managerID, OrgID: &orgID}, nil)
				m.profiles.On("ListRepsByOrg", mock.Anything, orgID).Return([]model.Profile{}, nil)
			},
			check: func(t *testing.T, out *ManagerStats, err error) {
				require.NoError(t, err)
				assert.Nil(t, out.Stats)
				assert.Empty(t, out.Reps)
			},
		},
		{
			name: "aggregates org activity",
			setupMock: func(m *ceMocks) {
				m.profiles.On("FindByID", mock.Anything, managerID).Return(&model.Profile{ID: managerID, OrgID: &orgID}, nil)
				m.profiles.On("ListRepsByOrg", mock.Anything, orgID).Return([]model.Profile{alice}, nil)
				m.sends.On("ListByRepIDs", mock.Anything, []uuid.UUID{alice.ID}).Return([]model.CeSend{
					{RepID: alice.ID, CreatedAt: day(3, time.February)},
				}, nil)
				m.professionals.On("ListByRepIDs", mock.Anything, []uuid.UUID{alice.ID}).Return([]model.Professional{{RepID: alice.ID}}, nil)
				m.touchpoints.On("ListByRepIDs", mock.Anything, []uuid.UUID{alice.ID}).Return([]model.Touchpoint{}, nil)
			},
			check: func(t *testing.T, out *ManagerStats, err error) {
				require.NoError(t, err)
				require.NotNil(t, out.Stats)
				assert.Equal(t, 1, out.Stats.TotalCesThisMonth)
				assert.Equal(t, "0%", out.Stats.RedemptionRate)
				require.Len(t, out.Reps, 1)
				assert.Equal(t, "No activity", out.Reps[0].LastActivity)
			},
		},
		{
			name: "load failure",
			setupMock: func(m *ceMocks) {
				m.profiles.On("FindByID", mock.Anything, managerID).Return(&model.Profile{ID: managerID, OrgID: &orgID}, nil)
				m.profiles.On("ListRepsByOrg", mock.Anything, orgID).Return([]model.Profile{alice}, nil)
				m.sends.On("ListByRepIDs", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))
				m.professionals.On("ListByRepIDs", mock.Anything, mock.Anything).Return([]model.Professional{}, nil).Maybe()
				m.touchpoints.On("ListByRepIDs", mock.Anything, mock.Anything).Return([]model.Touchpoint{}, nil).Maybe()
			},
			check: func(t *testing.T, out *ManagerStats, err error) {
				assert.Error(t, err)
				assert.Nil(t, out)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newCEMocks()
			tt.setupMock(m)
			svc := NewStatsService(m.profiles, m.sends, m.professionals, m.touchpoints, nil).(*statsService)
			svc.now = func() time.Time { return day(14, time.February) }

			out, err := svc.ManagerStats(context.Background(), managerID)
			tt.check(t, out, err)
			m.profiles.AssertExpectations(t)
			m.sends.AssertExpectations(t)
		})
	}
}
