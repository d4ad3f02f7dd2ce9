package ports

import (
	"context"
	"time"

	"tikkeul/internal/domain"
)

// LookupRepository serves the classification tables the report form is
// built from.
type LookupRepository interface {
	ListFactories(ctx context.Context) ([]domain.Factory, error)
	GetFactory(ctx context.Context, id int) (domain.Factory, error)
	ListThreatTypes(ctx context.Context) ([]domain.Category, error)
	ListWorkTypes(ctx context.Context) ([]domain.Category, error)
	ListChecks(ctx context.Context) ([]domain.CheckQuestion, error)
	// Range lookups come back with the range text as Name.
	ListAgeRanges(ctx context.Context) ([]domain.Category, error)
	ListWorkExperienceRanges(ctx context.Context) ([]domain.Category, error)
	ListIndustryTypes(ctx context.Context, size domain.IndustrySize) ([]domain.Category, error)
}

type WorkerRepository interface {
	CreateWorker(ctx context.Context, w domain.NewWorker) (id int, err error)
}

// IncidentRepository stores incidents and reads them back denormalized.
type IncidentRepository interface {
	CreateIncident(ctx context.Context, in domain.NewIncident) (id int, err error)
	GetIncident(ctx context.Context, id int) (domain.Incident, error)
	ListIncidents(ctx context.Context, filter domain.IncidentFilter) ([]domain.Incident, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, u domain.User) error
	GetUser(ctx context.Context, username string) (domain.User, error)
}

// DashboardRepository provides the raw aggregates behind the charts.
type DashboardRepository interface {
	ThreatTypeCounts(ctx context.Context, filter domain.IncidentFilter) ([]domain.ThreatTypeCount, error)
	DailyThreatLevels(ctx context.Context, filter domain.IncidentFilter) ([]domain.DailyLevels, error)
	WorkTypeCounts(ctx context.Context, filter domain.IncidentFilter) ([]domain.WorkTypeShare, error)
	ThreatLevelCounts(ctx context.Context, filter domain.IncidentFilter) ([]domain.LevelCount, error)
}

// OrphanRepository removes worker rows no incident refers to.
type OrphanRepository interface {
	DeleteOrphanWorkers(ctx context.Context, createdBefore time.Time) (deleted int64, err error)
}
