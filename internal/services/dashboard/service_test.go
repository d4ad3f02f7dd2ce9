package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tikkeul/internal/domain"
)

type fakeRepo struct {
	failWorkTypes bool
}

func (f *fakeRepo) ThreatTypeCounts(_ context.Context, _ domain.IncidentFilter) ([]domain.ThreatTypeCount, error) {
	return []domain.ThreatTypeCount{{Name: "떨어짐", Count: 3}}, nil
}

func (f *fakeRepo) DailyThreatLevels(_ context.Context, _ domain.IncidentFilter) ([]domain.DailyLevels, error) {
	return []domain.DailyLevels{
		{Date: domain.DateOf(2024, time.March, 1), Sum: 7, Count: 3},
		{Date: domain.DateOf(2024, time.March, 2), Sum: 0, Count: 0},
	}, nil
}

func (f *fakeRepo) WorkTypeCounts(_ context.Context, _ domain.IncidentFilter) ([]domain.WorkTypeShare, error) {
	if f.failWorkTypes {
		return nil, errors.New("boom")
	}
	return nil, nil
}

func (f *fakeRepo) ThreatLevelCounts(_ context.Context, _ domain.IncidentFilter) ([]domain.LevelCount, error) {
	return []domain.LevelCount{{Level: 1, Count: 1}, {Level: 4, Count: 1}, {Level: 5, Count: 1}}, nil
}

func TestSummary(t *testing.T) {
	got, err := New(&fakeRepo{}).Summary(context.Background(), domain.IncidentFilter{})
	require.NoError(t, err)

	assert.Equal(t, 3, got.Total)
	assert.Equal(t, []domain.ThreatTypeCount{{Name: "떨어짐", Count: 3}}, got.ThreatTypes)
	assert.NotNil(t, got.WorkTypes)
	assert.Empty(t, got.WorkTypes)

	require.Len(t, got.DailyRisk, 1)
	assert.True(t, decimal.RequireFromString("2.33").Equal(got.DailyRisk[0].RiskIndex))
	assert.Equal(t, 3, got.DailyRisk[0].Incidents)

	assert.Equal(t, []domain.RiskTierCount{
		{Tier: domain.RiskTierLow, Color: "#4CAF50", Count: 1},
		{Tier: domain.RiskTierMedium, Color: "#FFB61A", Count: 0},
		{Tier: domain.RiskTierHigh, Color: "#E53935", Count: 2},
	}, got.RiskTiers)
}

func TestSummaryPropagatesErrors(t *testing.T) {
	_, err := New(&fakeRepo{failWorkTypes: true}).Summary(context.Background(), domain.IncidentFilter{})
	assert.EqualError(t, err, "boom")
}
