package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"tikkeul/internal/domain"
)

func (db *DB) ThreatTypeCounts(ctx context.Context, filter domain.IncidentFilter) ([]domain.ThreatTypeCount, error) {
	q := builder().Select("tt.name", "COUNT(*)::int").
		From("incidents i").
		Join("threat_types tt ON tt.id = i.threat_type_id").
		GroupBy("tt.id", "tt.name").
		OrderBy("COUNT(*) DESC", "tt.id")
	rows, err := db.query(ctx, applyFilter(q, filter))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.ThreatTypeCount])
}

func (db *DB) WorkTypeCounts(ctx context.Context, filter domain.IncidentFilter) ([]domain.WorkTypeShare, error) {
	q := builder().Select("wt.name", "COUNT(*)::int").
		From("incidents i").
		Join("work_types wt ON wt.id = i.work_type_id").
		GroupBy("wt.id", "wt.name").
		OrderBy("COUNT(*) DESC", "wt.id")
	rows, err := db.query(ctx, applyFilter(q, filter))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.WorkTypeShare])
}

func (db *DB) DailyThreatLevels(ctx context.Context, filter domain.IncidentFilter) ([]domain.DailyLevels, error) {
	q := builder().Select("i.date", "SUM(i.threat_level)::int", "COUNT(*)::int").
		From("incidents i").
		GroupBy("i.date").
		OrderBy("i.date")
	rows, err := db.query(ctx, applyFilter(q, filter))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DailyLevels, error) {
		var (
			d   time.Time
			out domain.DailyLevels
		)
		if err := row.Scan(&d, &out.Sum, &out.Count); err != nil {
			return out, err
		}
		out.Date = domain.NewDate(d)
		return out, nil
	})
}

func (db *DB) ThreatLevelCounts(ctx context.Context, filter domain.IncidentFilter) ([]domain.LevelCount, error) {
	q := builder().Select("i.threat_level", "COUNT(*)::int").
		From("incidents i").
		GroupBy("i.threat_level").
		OrderBy("i.threat_level")
	rows, err := db.query(ctx, applyFilter(q, filter))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.LevelCount])
}
