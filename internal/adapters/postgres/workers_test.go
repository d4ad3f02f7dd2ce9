package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tikkeul/internal/domain"
)

var insertWorkerSQL = regexp.QuoteMeta(
	"INSERT INTO workers (name,age_range_id,sex,work_experience_range_id) VALUES ($1,$2,$3,$4) RETURNING id")

func TestCreateWorker(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(insertWorkerSQL).
		WithArgs("김철수", 2, "male", 3).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(31))

	id, err := db.CreateWorker(context.Background(), domain.NewWorker{
		Name: "김철수", AgeRangeID: 2, Sex: "male", WorkExperienceRangeID: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 31, id)
}

func TestCreateWorkerUnknownAgeRange(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(insertWorkerSQL).
		WithArgs("김철수", 99, "male", 3).
		WillReturnError(&pgconn.PgError{Code: foreignKeyViolation, ConstraintName: "workers_age_range_id_fkey"})

	_, err := db.CreateWorker(context.Background(), domain.NewWorker{
		Name: "김철수", AgeRangeID: 99, Sex: "male", WorkExperienceRangeID: 3,
	})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "unknown ageRange_id", ve.Msg)
}

func TestDeleteOrphanWorkers(t *testing.T) {
	db, mock := newMockDB(t)
	cutoff := time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM workers w") + `(?s).*` +
		regexp.QuoteMeta("NOT EXISTS (SELECT 1 FROM incidents i WHERE i.worker_id = w.id)")).
		WithArgs(cutoff).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	n, err := db.DeleteOrphanWorkers(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
