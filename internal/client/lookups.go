package client

import (
	"context"

	"golang.org/x/sync/errgroup"

	"tikkeul/internal/domain"
	"tikkeul/internal/pkg/logger"
)

// Lookups is everything the report form and list views need up front.
// A list whose fetch failed is empty.
type Lookups struct {
	Factories            []domain.Factory
	ThreatTypes          []domain.Category
	WorkTypes            []domain.Category
	Checks               []string
	AgeRanges            []domain.Category
	WorkExperienceRanges []domain.Category
	IndustryLarge        []domain.Category
	IndustryMedium       []domain.Category
}

// LoadLookups fetches every lookup concurrently. A failed fetch is logged
// and leaves its list empty; it never affects the others and LoadLookups
// itself never fails.
func (c *Client) LoadLookups(ctx context.Context) Lookups {
	out := Lookups{
		Factories:            []domain.Factory{},
		ThreatTypes:          []domain.Category{},
		WorkTypes:            []domain.Category{},
		Checks:               []string{},
		AgeRanges:            []domain.Category{},
		WorkExperienceRanges: []domain.Category{},
		IndustryLarge:        []domain.Category{},
		IndustryMedium:       []domain.Category{},
	}

	var g errgroup.Group
	g.Go(isolate(ctx, "factories", &out.Factories, c.Factories))
	g.Go(isolate(ctx, "threatTypes", &out.ThreatTypes, c.ThreatTypes))
	g.Go(isolate(ctx, "workTypes", &out.WorkTypes, c.WorkTypes))
	g.Go(isolate(ctx, "checks", &out.Checks, c.Checks))
	g.Go(isolate(ctx, "ageRanges", &out.AgeRanges, c.AgeRanges))
	g.Go(isolate(ctx, "workExperienceRanges", &out.WorkExperienceRanges, c.WorkExperienceRanges))
	g.Go(isolate(ctx, "industryTypes/large", &out.IndustryLarge, func(ctx context.Context) ([]domain.Category, error) {
		return c.IndustryTypes(ctx, domain.IndustryLarge)
	}))
	g.Go(isolate(ctx, "industryTypes/medium", &out.IndustryMedium, func(ctx context.Context) ([]domain.Category, error) {
		return c.IndustryTypes(ctx, domain.IndustryMedium)
	}))
	_ = g.Wait()
	return out
}

func isolate[T any](ctx context.Context, name string, dst *[]T, fetch func(context.Context) ([]T, error)) func() error {
	return func() error {
		v, err := fetch(ctx)
		if err != nil {
			logger.Errorf(ctx, "fetch %s: %v", name, err)
			return nil
		}
		*dst = v
		return nil
	}
}

// FactoryIncidents picks the first factory, or the "no factories" sentinel
// when the list is empty, and loads its incidents. No request is made for
// the sentinel.
func (c *Client) FactoryIncidents(ctx context.Context, factories []domain.Factory) (domain.Factory, []domain.Incident, error) {
	selected := domain.NoFactoriesAvailable()
	if len(factories) > 0 {
		selected = factories[0]
	}
	if selected.ID == domain.NoFactoryID {
		return selected, []domain.Incident{}, nil
	}
	incs, err := c.FactoryIncidentList(ctx, selected.ID)
	if err != nil {
		return selected, []domain.Incident{}, err
	}
	return selected, incs, nil
}
