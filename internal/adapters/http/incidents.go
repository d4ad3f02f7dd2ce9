package httpadapter

import (
	"context"

	"tikkeul/internal/api"
	"tikkeul/internal/domain"
)

func (s *Server) CreateWorker(ctx context.Context, req api.CreateWorkerRequestObject) (api.CreateWorkerResponseObject, error) {
	if req.Body == nil {
		return nil, domain.Invalid("missing body")
	}
	id, err := s.svc.Workers.Create(ctx, fromAPIWorker(*req.Body))
	if err != nil {
		return nil, err
	}
	return api.CreateWorker201JSONResponse{Id: id}, nil
}

func (s *Server) CreateIncident(ctx context.Context, req api.CreateIncidentRequestObject) (api.CreateIncidentResponseObject, error) {
	if req.Body == nil {
		return nil, domain.Invalid("missing body")
	}
	id, err := s.svc.Incidents.Create(ctx, fromAPIIncident(*req.Body))
	if err != nil {
		return nil, err
	}
	return api.CreateIncident201JSONResponse{Id: id}, nil
}

func (s *Server) ListIncidents(ctx context.Context, req api.ListIncidentsRequestObject) (api.ListIncidentsResponseObject, error) {
	p := req.Params
	incs, err := s.listIncidents(ctx, toFilter(p.FactoryId, p.From, p.To))
	if err != nil {
		return nil, err
	}
	return api.ListIncidents200JSONResponse{Incidents: incs}, nil
}

func (s *Server) ListFactoryIncidents(ctx context.Context, req api.ListFactoryIncidentsRequestObject) (api.ListFactoryIncidentsResponseObject, error) {
	incs, err := s.listIncidents(ctx, toFilter(&req.Id, req.Params.From, req.Params.To))
	if err != nil {
		return nil, err
	}
	return api.ListFactoryIncidents200JSONResponse{Incidents: incs}, nil
}

func (s *Server) listIncidents(ctx context.Context, filter domain.IncidentFilter) ([]api.Incident, error) {
	incs, err := s.svc.Incidents.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]api.Incident, 0, len(incs))
	for _, inc := range incs {
		ai, err := toAPIIncident(inc)
		if err != nil {
			return nil, err
		}
		out = append(out, ai)
	}
	return out, nil
}

func (s *Server) GetIncident(ctx context.Context, req api.GetIncidentRequestObject) (api.GetIncidentResponseObject, error) {
	inc, err := s.svc.Incidents.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	ai, err := toAPIIncident(inc)
	if err != nil {
		return nil, err
	}
	return api.GetIncident200JSONResponse(ai), nil
}

func (s *Server) GetDashboardSummary(ctx context.Context, req api.GetDashboardSummaryRequestObject) (api.GetDashboardSummaryResponseObject, error) {
	p := req.Params
	sum, err := s.svc.Dashboard.Summary(ctx, toFilter(p.FactoryId, p.From, p.To))
	if err != nil {
		return nil, err
	}
	return api.GetDashboardSummary200JSONResponse(sum), nil
}
