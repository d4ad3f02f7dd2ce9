package workers

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
	repo ports.WorkerRepository
}

func New(repo ports.WorkerRepository) *Service { return &Service{repo: repo} }

func (s *Service) Create(ctx context.Context, w domain.NewWorker) (int, error) {
	w.Name = strings.TrimSpace(w.Name)
	if err := validation.Struct(w); err != nil {
		return 0, err
	}
	id, err := s.repo.CreateWorker(ctx, w)
	if err != nil {
		return 0, err
	}
	metrics.WorkersCreatedTotal.Inc()
	logger.Debugf(ctx, "worker %d created", id)
	return id, nil
}
