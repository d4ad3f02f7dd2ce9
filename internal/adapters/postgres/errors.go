package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"tikkeul/internal/domain"
)

const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

// referenceFields names the request field behind each foreign key a client
// id can violate.
var referenceFields = map[string]string{
	"workers_age_range_id_fkey":             "ageRange_id",
	"workers_work_experience_range_id_fkey": "workExperienceRange_id",
	"incidents_worker_id_fkey":              "worker_id",
	"incidents_threat_type_id_fkey":         "threatType_id",
	"incidents_work_type_id_fkey":           "workType_id",
	"incidents_factory_id_fkey":             "factory_id",
	"incidents_industry_type_large_fkey":    "industryTypeLarge_id",
	"incidents_industry_type_medium_fkey":   "industryTypeMedium_id",
}

// wrapErr translates driver errors into domain errors.
func wrapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case uniqueViolation:
		return domain.ErrConflict
	case foreignKeyViolation:
		if field, ok := referenceFields[pgErr.ConstraintName]; ok {
			return domain.Invalid("unknown " + field)
		}
		return domain.Invalid("unknown reference")
	}
	return err
}
