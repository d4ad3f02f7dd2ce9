package incidents

import (
	"context"
	"strings"

	"tikkeul/internal/domain"
	"tikkeul/internal/metrics"
	"tikkeul/internal/pkg/logger"
	"tikkeul/internal/pkg/validation"
	"tikkeul/internal/ports"
)

type Service struct {
	repo ports.IncidentRepository
}

func New(repo ports.IncidentRepository) *Service { return &Service{repo: repo} }

func (s *Service) Create(ctx context.Context, in domain.NewIncident) (int, error) {
	in.Description = strings.TrimSpace(in.Description)
	if err := validation.Struct(in); err != nil {
		return 0, err
	}
	if domain.Date(in.Date).IsZero() {
		return 0, domain.Invalid("date is required")
	}
	seen := make(map[string]struct{}, len(in.Checks))
	for _, c := range in.Checks {
		if _, dup := seen[c.Question]; dup {
			return 0, domain.Invalid("duplicate checklist question: " + c.Question)
		}
		seen[c.Question] = struct{}{}
	}

	id, err := s.repo.CreateIncident(ctx, in)
	if err != nil {
		return 0, err
	}
	metrics.IncidentsCreatedTotal.Inc()
	logger.Infof(ctx, "incident %d reported (factory=%d level=%d)", id, in.FactoryID, in.ThreatLevel)
	return id, nil
}

func (s *Service) Get(ctx context.Context, id int) (domain.Incident, error) {
	if id <= 0 {
		return domain.Incident{}, domain.ErrNotFound
	}
	return s.repo.GetIncident(ctx, id)
}

func (s *Service) List(ctx context.Context, filter domain.IncidentFilter) ([]domain.Incident, error) {
	if filter.FactoryID != nil && *filter.FactoryID == domain.NoFactoryID {
		return []domain.Incident{}, nil
	}
	if filter.From != nil && filter.To != nil && filter.To.Time.Before(filter.From.Time) {
		return nil, domain.Invalid("to must not be before from")
	}
	return s.repo.ListIncidents(ctx, filter)
}
