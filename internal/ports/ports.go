package ports

import (
	"context"
	"io"

	"tikkeul/internal/domain"
)

// Lookups lists the report form's classification tables.
type Lookups interface {
	Factories(ctx context.Context) ([]domain.Factory, error)
	Factory(ctx context.Context, id int) (domain.Factory, error)
	ThreatTypes(ctx context.Context) ([]domain.Category, error)
	WorkTypes(ctx context.Context) ([]domain.Category, error)
	Checks(ctx context.Context) ([]domain.CheckQuestion, error)
	AgeRanges(ctx context.Context) ([]domain.Category, error)
	WorkExperienceRanges(ctx context.Context) ([]domain.Category, error)
	IndustryTypes(ctx context.Context, size domain.IndustrySize) ([]domain.Category, error)
}

type Workers interface {
	Create(ctx context.Context, w domain.NewWorker) (int, error)
}

type Incidents interface {
	Create(ctx context.Context, in domain.NewIncident) (int, error)
	Get(ctx context.Context, id int) (domain.Incident, error)
	List(ctx context.Context, filter domain.IncidentFilter) ([]domain.Incident, error)
}

// Auth registers accounts and issues/validates bearer tokens.
type Auth interface {
	CreateUser(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (token string, err error)
	Authenticate(ctx context.Context, token string) (username string, err error)
}

// Uploads issues signed upload URLs and stores chunked image uploads.
type Uploads interface {
	RequestUpload(ctx context.Context, fileName, fileType string) (domain.UploadTicket, error)
	WriteChunk(ctx context.Context, key string, sig UploadSignature, offset int64, body io.Reader) error
	Open(ctx context.Context, key string) (io.ReadSeekCloser, string, error)
}

// UploadSignature is the query part of a signed upload URL.
type UploadSignature struct {
	Expires  int64
	FileType string
	Sig      string
}

type Dashboard interface {
	Summary(ctx context.Context, filter domain.IncidentFilter) (domain.DashboardSummary, error)
}
