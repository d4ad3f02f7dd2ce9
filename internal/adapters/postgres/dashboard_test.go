package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tikkeul/internal/domain"
)

func TestDailyThreatLevels(t *testing.T) {
	db, mock := newMockDB(t)
	from := domain.DateOf(2024, time.March, 1)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT i.date, SUM(i.threat_level)::int, COUNT(*)::int FROM incidents i WHERE i.date >= $1 GROUP BY i.date ORDER BY i.date")).
		WithArgs(from.Time).
		WillReturnRows(pgxmock.NewRows([]string{"date", "sum", "count"}).
			AddRow(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), 7, 3).
			AddRow(time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), 5, 1))

	got, err := db.DailyThreatLevels(context.Background(), domain.IncidentFilter{From: &from})
	require.NoError(t, err)
	assert.Equal(t, []domain.DailyLevels{
		{Date: domain.DateOf(2024, time.March, 1), Sum: 7, Count: 3},
		{Date: domain.DateOf(2024, time.March, 2), Sum: 5, Count: 1},
	}, got)
}
