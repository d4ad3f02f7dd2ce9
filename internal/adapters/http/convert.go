package httpadapter

import (
	"encoding/json"
	"fmt"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"tikkeul/internal/api"
	"tikkeul/internal/domain"
)

func toAPICategory(c domain.Category) api.Category {
	return api.Category{Id: c.ID, Name: c.Name}
}

func toAPICategories(cs []domain.Category) []api.Category {
	out := make([]api.Category, 0, len(cs))
	for _, c := range cs {
		out = append(out, toAPICategory(c))
	}
	return out
}

// toAPIRanges renames name to range for the age and experience lookups.
func toAPIRanges(cs []domain.Category) []api.RangeCategory {
	out := make([]api.RangeCategory, 0, len(cs))
	for _, c := range cs {
		out = append(out, api.RangeCategory{Id: c.ID, Range: c.Name})
	}
	return out
}

func toAPIFactory(f domain.Factory) api.Factory {
	return api.Factory{Id: f.ID, Name: f.Name}
}

func toAPIIncident(inc domain.Incident) (api.Incident, error) {
	out := api.Incident{
		Id: inc.ID,
		Worker: api.Worker{
			Id:                  inc.Worker.ID,
			Name:                inc.Worker.Name,
			AgeRange:            toAPICategory(inc.Worker.AgeRange),
			Sex:                 inc.Worker.Sex,
			WorkExperienceRange: toAPICategory(inc.Worker.WorkExperienceRange),
		},
		ThreatType:  toAPICategory(inc.ThreatType),
		ThreatLevel: inc.ThreatLevel,
		WorkType:    toAPICategory(inc.WorkType),
		Checks:      inc.Checks,
		Description: inc.Description,
		Date:        openapi_types.Date{Time: inc.Date.Time},
		Factory:     toAPIFactory(inc.Factory),
	}
	var err error
	if out.ImageUrl, err = extraField[string](inc, "imageUrl"); err != nil {
		return out, err
	}
	if out.IndustryTypeLarge, err = extraField[api.Category](inc, "industryTypeLarge"); err != nil {
		return out, err
	}
	if out.IndustryTypeMedium, err = extraField[api.Category](inc, "industryTypeMedium"); err != nil {
		return out, err
	}
	return out, nil
}

// extraField decodes one optional key of inc.AdditionalData.
func extraField[T any](inc domain.Incident, key string) (*T, error) {
	raw, ok := inc.AdditionalData[key]
	if !ok {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("incident %d %s: %w", inc.ID, key, err)
	}
	return &v, nil
}

func fromAPIWorker(b api.NewWorker) domain.NewWorker {
	return domain.NewWorker{
		Name:                  b.Name,
		AgeRangeID:            b.AgeRangeId,
		Sex:                   b.Sex,
		WorkExperienceRangeID: b.WorkExperienceRangeId,
	}
}

func fromAPIIncident(b api.NewIncident) domain.NewIncident {
	in := domain.NewIncident{
		WorkerID:             b.WorkerId,
		IndustryTypeLargeID:  b.IndustryTypeLargeId,
		IndustryTypeMediumID: b.IndustryTypeMediumId,
		ThreatTypeID:         b.ThreatTypeId,
		ThreatLevel:          b.ThreatLevel,
		WorkTypeID:           b.WorkTypeId,
		Checks:               b.Checks,
		Date:                 b.Date,
		FactoryID:            b.FactoryId,
	}
	if b.Description != nil {
		in.Description = *b.Description
	}
	if b.ImageUrl != nil {
		in.ImageURL = *b.ImageUrl
	}
	return in
}

func toFilter(factoryID *int, from, to *openapi_types.Date) domain.IncidentFilter {
	return domain.IncidentFilter{FactoryID: factoryID, From: toDate(from), To: toDate(to)}
}

func toDate(d *openapi_types.Date) *domain.Date {
	if d == nil {
		return nil
	}
	out := domain.NewDate(d.Time)
	return &out
}
