package postgres

import (
	"context"
	"time"

	"tikkeul/internal/domain"
)

func (db *DB) CreateWorker(ctx context.Context, w domain.NewWorker) (int, error) {
	sql, args, err := builder().Insert("workers").
		Columns("name", "age_range_id", "sex", "work_experience_range_id").
		Values(w.Name, w.AgeRangeID, w.Sex, w.WorkExperienceRangeID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}
	var id int
	if err := db.conn.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, wrapErr(err)
	}
	return id, nil
}

// DeleteOrphanWorkers removes workers created before createdBefore that no
// incident references.
func (db *DB) DeleteOrphanWorkers(ctx context.Context, createdBefore time.Time) (int64, error) {
	tag, err := db.conn.Exec(ctx, `
		DELETE FROM workers w
		WHERE w.created_at < $1
		  AND NOT EXISTS (SELECT 1 FROM incidents i WHERE i.worker_id = w.id)`,
		createdBefore,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
