package dashboard

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"tikkeul/internal/domain"
	"tikkeul/internal/ports"
)

type Service struct {
	repo ports.DashboardRepository
}

func New(repo ports.DashboardRepository) *Service { return &Service{repo: repo} }

// Summary gathers every chart series concurrently.
func (s *Service) Summary(ctx context.Context, filter domain.IncidentFilter) (domain.DashboardSummary, error) {
	var (
		threats []domain.ThreatTypeCount
		daily   []domain.DailyLevels
		works   []domain.WorkTypeShare
		levels  []domain.LevelCount
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { threats, err = s.repo.ThreatTypeCounts(ctx, filter); return })
	g.Go(func() (err error) { daily, err = s.repo.DailyThreatLevels(ctx, filter); return })
	g.Go(func() (err error) { works, err = s.repo.WorkTypeCounts(ctx, filter); return })
	g.Go(func() (err error) { levels, err = s.repo.ThreatLevelCounts(ctx, filter); return })
	if err := g.Wait(); err != nil {
		return domain.DashboardSummary{}, err
	}

	out := domain.DashboardSummary{
		ThreatTypes: nonNil(threats),
		DailyRisk:   DailyRisk(daily),
		WorkTypes:   nonNil(works),
		RiskTiers:   RiskTiers(levels),
	}
	for _, l := range levels {
		out.Total += l.Count
	}
	return out, nil
}

// DailyRisk turns per-day sums into an average threat level rounded to two
// places.
func DailyRisk(days []domain.DailyLevels) []domain.DailyRisk {
	out := make([]domain.DailyRisk, 0, len(days))
	for _, d := range days {
		if d.Count == 0 {
			continue
		}
		idx := decimal.NewFromInt(int64(d.Sum)).
			DivRound(decimal.NewFromInt(int64(d.Count)), 2)
		out = append(out, domain.DailyRisk{Date: d.Date, RiskIndex: idx, Incidents: d.Count})
	}
	return out
}

// RiskTiers buckets level counts into low, medium and high, always in that
// order.
func RiskTiers(levels []domain.LevelCount) []domain.RiskTierCount {
	tiers := []domain.RiskTier{domain.RiskTierLow, domain.RiskTierMedium, domain.RiskTierHigh}
	counts := make(map[domain.RiskTier]int, len(tiers))
	for _, l := range levels {
		counts[domain.RiskTierForLevel(l.Level)] += l.Count
	}
	out := make([]domain.RiskTierCount, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, domain.RiskTierCount{Tier: t, Color: t.Color(), Count: counts[t]})
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
