package httpadapter

import (
	"context"

	"tikkeul/internal/api"
	"tikkeul/internal/domain"
)

func (s *Server) GetFactories(ctx context.Context, _ api.GetFactoriesRequestObject) (api.GetFactoriesResponseObject, error) {
	fs, err := s.svc.Lookups.Factories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]api.Factory, 0, len(fs))
	for _, f := range fs {
		out = append(out, toAPIFactory(f))
	}
	return api.GetFactories200JSONResponse{Factories: out}, nil
}

func (s *Server) GetFactory(ctx context.Context, req api.GetFactoryRequestObject) (api.GetFactoryResponseObject, error) {
	f, err := s.svc.Lookups.Factory(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.GetFactory200JSONResponse(toAPIFactory(f)), nil
}

func (s *Server) GetThreatTypes(ctx context.Context, _ api.GetThreatTypesRequestObject) (api.GetThreatTypesResponseObject, error) {
	cs, err := s.svc.Lookups.ThreatTypes(ctx)
	if err != nil {
		return nil, err
	}
	return api.GetThreatTypes200JSONResponse{ThreatTypes: toAPICategories(cs)}, nil
}

func (s *Server) GetWorkTypes(ctx context.Context, _ api.GetWorkTypesRequestObject) (api.GetWorkTypesResponseObject, error) {
	cs, err := s.svc.Lookups.WorkTypes(ctx)
	if err != nil {
		return nil, err
	}
	return api.GetWorkTypes200JSONResponse{WorkTypes: toAPICategories(cs)}, nil
}

func (s *Server) GetChecks(ctx context.Context, _ api.GetChecksRequestObject) (api.GetChecksResponseObject, error) {
	qs, err := s.svc.Lookups.Checks(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]api.CheckQuestion, 0, len(qs))
	for _, q := range qs {
		out = append(out, api.CheckQuestion{Id: q.ID, Question: q.Question})
	}
	return api.GetChecks200JSONResponse{Checks: out}, nil
}

func (s *Server) GetAgeRanges(ctx context.Context, _ api.GetAgeRangesRequestObject) (api.GetAgeRangesResponseObject, error) {
	cs, err := s.svc.Lookups.AgeRanges(ctx)
	if err != nil {
		return nil, err
	}
	return api.GetAgeRanges200JSONResponse{AgeRanges: toAPIRanges(cs)}, nil
}

func (s *Server) GetWorkExperienceRanges(ctx context.Context, _ api.GetWorkExperienceRangesRequestObject) (api.GetWorkExperienceRangesResponseObject, error) {
	cs, err := s.svc.Lookups.WorkExperienceRanges(ctx)
	if err != nil {
		return nil, err
	}
	return api.GetWorkExperienceRanges200JSONResponse{WorkExperienceRanges: toAPIRanges(cs)}, nil
}

func (s *Server) GetIndustryTypes(ctx context.Context, req api.GetIndustryTypesRequestObject) (api.GetIndustryTypesResponseObject, error) {
	cs, err := s.svc.Lookups.IndustryTypes(ctx, domain.IndustrySize(req.Size))
	if err != nil {
		return nil, err
	}
	return api.GetIndustryTypes200JSONResponse{IndustryTypes: toAPICategories(cs)}, nil
}
