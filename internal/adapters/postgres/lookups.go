package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"tikkeul/internal/domain"
)

func (db *DB) listCategories(ctx context.Context, q sq.SelectBuilder) ([]domain.Category, error) {
	rows, err := db.query(ctx, q)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Category])
}

func (db *DB) ListFactories(ctx context.Context) ([]domain.Factory, error) {
	rows, err := db.query(ctx, builder().Select("id", "name").From("factories").OrderBy("id"))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Factory])
}

func (db *DB) GetFactory(ctx context.Context, id int) (domain.Factory, error) {
	var f domain.Factory
	err := db.conn.QueryRow(ctx, `SELECT id, name FROM factories WHERE id = $1`, id).Scan(&f.ID, &f.Name)
	return f, wrapErr(err)
}

func (db *DB) ListThreatTypes(ctx context.Context) ([]domain.Category, error) {
	return db.listCategories(ctx, builder().Select("id", "name").From("threat_types").OrderBy("id"))
}

func (db *DB) ListWorkTypes(ctx context.Context) ([]domain.Category, error) {
	return db.listCategories(ctx, builder().Select("id", "name").From("work_types").OrderBy("id"))
}

func (db *DB) ListChecks(ctx context.Context) ([]domain.CheckQuestion, error) {
	rows, err := db.query(ctx, builder().Select("id", "question").From("checks").OrderBy("position", "id"))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.CheckQuestion])
}

func (db *DB) ListAgeRanges(ctx context.Context) ([]domain.Category, error) {
	return db.listCategories(ctx, builder().Select("id", "range").From("age_ranges").OrderBy("id"))
}

func (db *DB) ListWorkExperienceRanges(ctx context.Context) ([]domain.Category, error) {
	return db.listCategories(ctx, builder().Select("id", "range").From("work_experience_ranges").OrderBy("id"))
}

func (db *DB) ListIndustryTypes(ctx context.Context, size domain.IndustrySize) ([]domain.Category, error) {
	return db.listCategories(ctx, builder().Select("id", "name").
		From("industry_types").
		Where(sq.Eq{"size": string(size)}).
		OrderBy("id"))
}
