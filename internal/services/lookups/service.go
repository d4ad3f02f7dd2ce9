package lookups

import (
	"context"

	"tikkeul/internal/domain"
	"tikkeul/internal/ports"
)

type Service struct {
	repo ports.LookupRepository
}

func New(repo ports.LookupRepository) *Service { return &Service{repo: repo} }

func (s *Service) Factories(ctx context.Context) ([]domain.Factory, error) {
	return s.repo.ListFactories(ctx)
}

// Factory returns domain.ErrNotFound for ids that do not exist, including
// the domain.NoFactoryID sentinel.
func (s *Service) Factory(ctx context.Context, id int) (domain.Factory, error) {
	if id <= 0 {
		return domain.Factory{}, domain.ErrNotFound
	}
	return s.repo.GetFactory(ctx, id)
}

func (s *Service) ThreatTypes(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListThreatTypes(ctx)
}

func (s *Service) WorkTypes(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListWorkTypes(ctx)
}

func (s *Service) Checks(ctx context.Context) ([]domain.CheckQuestion, error) {
	return s.repo.ListChecks(ctx)
}

func (s *Service) AgeRanges(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListAgeRanges(ctx)
}

func (s *Service) WorkExperienceRanges(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListWorkExperienceRanges(ctx)
}

func (s *Service) IndustryTypes(ctx context.Context, size domain.IndustrySize) ([]domain.Category, error) {
	switch size {
	case domain.IndustryLarge, domain.IndustryMedium:
		return s.repo.ListIndustryTypes(ctx, size)
	default:
		return nil, domain.Invalid("size must be large or medium")
	}
}
