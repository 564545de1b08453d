package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"pulse/internal/cache"
	"pulse/internal/metrics"
	"pulse/internal/model"
	"pulse/internal/repository"
)

const (
	placeholder     = "—"
	noActivity      = "No activity"
	activityDateFmt = "2006-01-02"
)

// OrgStats are the organization-wide numbers of the manager dashboard.
type OrgStats struct {
	TotalCesThisMonth  int    `json:"totalCesThisMonth"`
	TotalProfessionals int    `json:"totalProfessionals"`
	ActiveReps         int    `json:"activeReps"`
	RedemptionRate     string `json:"redemptionRate"`
}

// RepStats is one leaderboard row.
type RepStats struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	CesThisMonth   int       `json:"cesThisMonth"`
	Professionals  int       `json:"professionals"`
	RedemptionRate string    `json:"redemptionRate"`
	LastActivity   string    `json:"lastActivity"`
}

// ManagerStats is the manager dashboard payload. Stats is nil when the org has no reps.
type ManagerStats struct {
	Stats *OrgStats  `json:"stats"`
	Reps  []RepStats `json:"reps"`
}

// StatsService computes manager dashboards.
type StatsService interface {
	ManagerStats(ctx context.Context, managerID uuid.UUID) (*ManagerStats, error)
}

type statsService struct {
	profiles      repository.ProfileRepository
	sends         repository.CeSendRepository
	professionals repository.ProfessionalRepository
	touchpoints   repository.TouchpointRepository
	cache         *cache.Client
	now           func() time.Time
}

// NewStatsService creates a new statistics service.
func NewStatsService(
	profiles repository.ProfileRepository,
	sends repository.CeSendRepository,
	professionals repository.ProfessionalRepository,
	touchpoints repository.TouchpointRepository,
	c *cache.Client,
) StatsService {
	return &statsService{
		profiles:      profiles,
		sends:         sends,
		professionals: professionals,
		touchpoints:   touchpoints,
		cache:         c,
		now:           time.Now,
	}
}

func emptyStats() *ManagerStats {
	return &ManagerStats{Stats: nil, Reps: []RepStats{}}
}

// ManagerStats resolves the manager's org, loads its reps and aggregates their activity.
func (s *statsService) ManagerStats(ctx context.Context, managerID uuid.UUID) (*ManagerStats, error) {
	manager, err := s.profiles.FindByID(ctx, managerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return emptyStats(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("find manager profile: %w", err)
	}
	if manager.OrgID == nil {
		return emptyStats(), nil
	}

	key := cache.StatsKey(*manager.OrgID)
	var cached ManagerStats
	if s.cache.GetJSON(ctx, key, &cached) {
		metrics.RecordStatsCache(true)
		return &cached, nil
	}
	metrics.RecordStatsCache(false)

	reps, err := s.profiles.ListRepsByOrg(ctx, *manager.OrgID)
	if err != nil {
		return nil, fmt.Errorf("list reps: %w", err)
	}
	if len(reps) == 0 {
		return emptyStats(), nil
	}

	repIDs := make([]uuid.UUID, len(reps))
	for i, r := range reps {
		repIDs[i] = r.ID
	}

	var (
		sends  []model.CeSend
		pros   []model.Professional
		touchs []model.Touchpoint
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sends, err = s.sends.ListByRepIDs(gctx, repIDs)
		return err
	})
	g.Go(func() error {
		var err error
		pros, err = s.professionals.ListByRepIDs(gctx, repIDs)
		return err
	})
	g.Go(func() error {
		var err error
		touchs, err = s.touchpoints.ListByRepIDs(gctx, repIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load rep activity: %w", err)
	}

	out := BuildManagerStats(reps, sends, pros, touchs, s.now())
	_ = s.cache.SetJSON(ctx, key, out, cache.StatsTTL)
	return out, nil
}

// BuildManagerStats aggregates already loaded rows. "This month" starts at midnight on the first
// day of now's calendar month in now's location. Reps keep their input order among equal counts.
func BuildManagerStats(reps []model.Profile, sends []model.CeSend, pros []model.Professional, touchs []model.Touchpoint, now time.Time) *ManagerStats {
	if len(reps) == 0 {
		return emptyStats()
	}
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type tally struct {
		total, redeemed, thisMonth, professionals int
		lastActivity                              time.Time
	}
	byRep := make(map[uuid.UUID]*tally, len(reps))
	for _, r := range reps {
		byRep[r.ID] = &tally{}
	}

	org := &OrgStats{TotalProfessionals: len(pros)}
	var orgRedeemed int
	active := make(map[uuid.UUID]struct{})
	for _, send := range sends {
		t := byRep[send.RepID]
		thisMonth := !send.CreatedAt.Before(firstOfMonth)
		if thisMonth {
			org.TotalCesThisMonth++
			active[send.RepID] = struct{}{}
		}
		if send.Redeemed() {
			orgRedeemed++
		}
		if t == nil {
			continue
		}
		t.total++
		if send.Redeemed() {
			t.redeemed++
		}
		if thisMonth {
			t.thisMonth++
		}
	}
	org.ActiveReps = len(active)
	org.RedemptionRate = RedemptionRate(orgRedeemed, len(sends))

	for _, p := range pros {
		if t := byRep[p.RepID]; t != nil {
			t.professionals++
		}
	}
	for _, tp := range touchs {
		if t := byRep[tp.RepID]; t != nil && tp.CreatedAt.After(t.lastActivity) {
			t.lastActivity = tp.CreatedAt
		}
	}

	rows := make([]RepStats, 0, len(reps))
	for _, r := range reps {
		t := byRep[r.ID]
		last := noActivity
		if !t.lastActivity.IsZero() {
			last = t.lastActivity.In(now.Location()).Format(activityDateFmt)
		}
		rows = append(rows, RepStats{
			ID:             r.ID,
			Name:           r.DisplayName(),
			CesThisMonth:   t.thisMonth,
			Professionals:  t.professionals,
			RedemptionRate: RedemptionRate(t.redeemed, t.total),
			LastActivity:   last,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CesThisMonth > rows[j].CesThisMonth
	})

	return &ManagerStats{Stats: org, Reps: rows}
}

// RedemptionRate formats redeemed/total as a rounded percentage, or a dash when total is zero.
func RedemptionRate(redeemed, total int) string {
	if total == 0 {
		return placeholder
	}
	return fmt.Sprintf("%d%%", int(math.Round(float64(redeemed)/float64(total)*100)))
}
