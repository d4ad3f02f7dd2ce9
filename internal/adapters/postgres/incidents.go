package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"tikkeul/internal/domain"
)

func (db *DB) CreateIncident(ctx context.Context, in domain.NewIncident) (id int, err error) {
	tx, err := db.conn.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var imageURL *string
	if in.ImageURL != "" {
		imageURL = &in.ImageURL
	}
	sql, args, err := builder().Insert("incidents").
		Columns(
			"worker_id", "industry_type_large_id", "industry_type_medium_id",
			"threat_type_id", "threat_level", "work_type_id",
			"description", "date", "factory_id", "image_url",
		).
		Values(
			in.WorkerID, in.IndustryTypeLargeID, in.IndustryTypeMediumID,
			in.ThreatTypeID, in.ThreatLevel, in.WorkTypeID,
			in.Description, domain.Date(in.Date).Time, in.FactoryID, imageURL,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}
	if err = tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, wrapErr(err)
	}

	if len(in.Checks) > 0 {
		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"incident_checks"},
			checkColumns,
			pgx.CopyFromRows(checkRows(id, in.Checks)),
		)
		if err != nil {
			return 0, fmt.Errorf("insert checks: %w", wrapErr(err))
		}
	}
	return id, tx.Commit(ctx)
}

var checkColumns = []string{"incident_id", "position", "question", "answer"}

// checkRows lays the checks out for COPY. position keeps the order the
// questions were asked in.
func checkRows(incidentID int, checks domain.CheckPairs) [][]any {
	rows := make([][]any, 0, len(checks))
	for pos, c := range checks {
		rows = append(rows, []any{incidentID, pos, c.Question, c.Answer})
	}
	return rows
}

type incidentRow struct {
	ID                 int
	ThreatLevel        int
	Description        string
	Date               time.Time
	ImageURL           *string
	WorkerID           int
	WorkerName         string
	WorkerSex          string
	AgeRangeID         int
	AgeRange           string
	ExperienceID       int
	Experience         string
	ThreatTypeID       int
	ThreatType         string
	WorkTypeID         int
	WorkType           string
	FactoryID          int
	FactoryName        string
	IndustryLargeID    *int
	IndustryLargeName  *string
	IndustryMediumID   *int
	IndustryMediumName *string
}

func scanIncidentRow(row pgx.CollectableRow) (incidentRow, error) {
	var r incidentRow
	err := row.Scan(
		&r.ID, &r.ThreatLevel, &r.Description, &r.Date, &r.ImageURL,
		&r.WorkerID, &r.WorkerName, &r.WorkerSex,
		&r.AgeRangeID, &r.AgeRange,
		&r.ExperienceID, &r.Experience,
		&r.ThreatTypeID, &r.ThreatType,
		&r.WorkTypeID, &r.WorkType,
		&r.FactoryID, &r.FactoryName,
		&r.IndustryLargeID, &r.IndustryLargeName,
		&r.IndustryMediumID, &r.IndustryMediumName,
	)
	return r, err
}

func incidentSelect() sq.SelectBuilder {
	return builder().Select(
		"i.id", "i.threat_level", "i.description", "i.date", "i.image_url",
		"w.id", "w.name", "w.sex",
		"ar.id", "ar.range",
		"er.id", "er.range",
		"tt.id", "tt.name",
		"wt.id", "wt.name",
		"f.id", "f.name",
		"il.id", "il.name",
		"im.id", "im.name",
	).
		From("incidents i").
		Join("workers w ON w.id = i.worker_id").
		Join("age_ranges ar ON ar.id = w.age_range_id").
		Join("work_experience_ranges er ON er.id = w.work_experience_range_id").
		Join("threat_types tt ON tt.id = i.threat_type_id").
		Join("work_types wt ON wt.id = i.work_type_id").
		Join("factories f ON f.id = i.factory_id").
		LeftJoin("industry_types il ON il.id = i.industry_type_large_id").
		LeftJoin("industry_types im ON im.id = i.industry_type_medium_id")
}

// applyFilter narrows a query over the "i" incidents alias.
func applyFilter(q sq.SelectBuilder, f domain.IncidentFilter) sq.SelectBuilder {
	if f.FactoryID != nil {
		q = q.Where(sq.Eq{"i.factory_id": *f.FactoryID})
	}
	if f.From != nil {
		q = q.Where(sq.GtOrEq{"i.date": f.From.Time})
	}
	if f.To != nil {
		q = q.Where(sq.LtOrEq{"i.date": f.To.Time})
	}
	return q
}

func (db *DB) GetIncident(ctx context.Context, id int) (domain.Incident, error) {
	incs, err := db.selectIncidents(ctx, incidentSelect().Where(sq.Eq{"i.id": id}))
	if err != nil {
		return domain.Incident{}, err
	}
	if len(incs) == 0 {
		return domain.Incident{}, domain.ErrNotFound
	}
	return incs[0], nil
}

func (db *DB) ListIncidents(ctx context.Context, filter domain.IncidentFilter) ([]domain.Incident, error) {
	return db.selectIncidents(ctx, applyFilter(incidentSelect(), filter).OrderBy("i.date DESC", "i.id DESC"))
}

func (db *DB) selectIncidents(ctx context.Context, q sq.SelectBuilder) ([]domain.Incident, error) {
	rows, err := db.query(ctx, q)
	if err != nil {
		return nil, err
	}
	raw, err := pgx.CollectRows(rows, scanIncidentRow)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []domain.Incident{}, nil
	}

	ids := make([]int, 0, len(raw))
	for _, r := range raw {
		ids = append(ids, r.ID)
	}
	checks, err := db.incidentChecks(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Incident, 0, len(raw))
	for _, r := range raw {
		inc, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		if c, ok := checks[r.ID]; ok {
			inc.Checks = c
		}
		out = append(out, inc)
	}
	return out, nil
}

func (db *DB) incidentChecks(ctx context.Context, ids []int) (map[int]domain.Checks, error) {
	rows, err := db.query(ctx, builder().
		Select("incident_id", "question", "answer").
		From("incident_checks").
		Where(sq.Eq{"incident_id": ids}).
		OrderBy("incident_id", "position"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int]domain.Checks, len(ids))
	for rows.Next() {
		var (
			id int
			a  domain.CheckAnswer
		)
		if err := rows.Scan(&id, &a.Question, &a.Answer); err != nil {
			return nil, err
		}
		out[id] = append(out[id], a)
	}
	return out, rows.Err()
}

func (r incidentRow) toDomain() (domain.Incident, error) {
	inc := domain.Incident{
		ID: r.ID,
		Worker: domain.Worker{
			ID:                  r.WorkerID,
			Name:                r.WorkerName,
			AgeRange:            domain.NewCategory(r.AgeRangeID, r.AgeRange),
			Sex:                 r.WorkerSex,
			WorkExperienceRange: domain.NewCategory(r.ExperienceID, r.Experience),
		},
		ThreatType:     domain.NewCategory(r.ThreatTypeID, r.ThreatType),
		ThreatLevel:    r.ThreatLevel,
		WorkType:       domain.NewCategory(r.WorkTypeID, r.WorkType),
		Checks:         domain.Checks{},
		Description:    r.Description,
		Date:           domain.NewDate(r.Date),
		Factory:        domain.Factory{ID: r.FactoryID, Name: r.FactoryName},
		AdditionalData: map[string]json.RawMessage{},
	}

	extra := map[string]any{}
	if r.ImageURL != nil {
		extra["imageUrl"] = *r.ImageURL
	}
	if r.IndustryLargeID != nil && r.IndustryLargeName != nil {
		extra["industryTypeLarge"] = domain.NewCategory(*r.IndustryLargeID, *r.IndustryLargeName)
	}
	if r.IndustryMediumID != nil && r.IndustryMediumName != nil {
		extra["industryTypeMedium"] = domain.NewCategory(*r.IndustryMediumID, *r.IndustryMediumName)
	}
	for k, v := range extra {
		b, err := json.Marshal(v)
		if err != nil {
			return domain.Incident{}, err
		}
		inc.AdditionalData[k] = b
	}
	return inc, nil
}
