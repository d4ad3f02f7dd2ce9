package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tikkeul/internal/domain"
)

func (c *Client) Factories(ctx context.Context) ([]domain.Factory, error) {
	var resp factoriesResponse
	if err := c.getJSON(ctx, "/factories", &resp); err != nil {
		return nil, err
	}
	return toFactories(resp.Factories), nil
}

func (c *Client) Factory(ctx context.Context, id int) (domain.Factory, error) {
	var resp factorySchema
	if err := c.getJSON(ctx, "/factories/"+strconv.Itoa(id), &resp); err != nil {
		return domain.Factory{}, err
	}
	return domain.Factory{ID: resp.ID, Name: resp.Name}, nil
}

func (c *Client) ThreatTypes(ctx context.Context) ([]domain.Category, error) {
	var resp threatTypesResponse
	if err := c.getJSON(ctx, "/threatTypes", &resp); err != nil {
		return nil, err
	}
	return toCategories(resp.ThreatTypes), nil
}

func (c *Client) WorkTypes(ctx context.Context) ([]domain.Category, error) {
	var resp workTypesResponse
	if err := c.getJSON(ctx, "/workTypes", &resp); err != nil {
		return nil, err
	}
	return toCategories(resp.WorkTypes), nil
}

// Checks returns the checklist questions in server order.
func (c *Client) Checks(ctx context.Context) ([]string, error) {
	var resp checksResponse
	if err := c.getJSON(ctx, "/checks", &resp); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(resp.Checks))
	for _, q := range resp.Checks {
		out = append(out, q.Question)
	}
	return out, nil
}

func (c *Client) AgeRanges(ctx context.Context) ([]domain.Category, error) {
	var resp ageRangesResponse
	if err := c.getJSON(ctx, "/ageRanges", &resp); err != nil {
		return nil, err
	}
	return fromRanges(resp.AgeRanges), nil
}

func (c *Client) WorkExperienceRanges(ctx context.Context) ([]domain.Category, error) {
	var resp workExperienceRangesResponse
	if err := c.getJSON(ctx, "/workExperienceRanges", &resp); err != nil {
		return nil, err
	}
	return fromRanges(resp.WorkExperienceRanges), nil
}

func (c *Client) IndustryTypes(ctx context.Context, size domain.IndustrySize) ([]domain.Category, error) {
	var resp industryTypesResponse
	if err := c.getJSON(ctx, "/industryTypes/"+string(size), &resp); err != nil {
		return nil, err
	}
	return toCategories(resp.IndustryTypes), nil
}

func (c *Client) CreateWorker(ctx context.Context, w domain.NewWorker) (int, error) {
	var resp createdResponse
	if err := c.doJSON(ctx, http.MethodPost, "/workers", w, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// CreateIncident posts in. The response body is not inspected beyond
// success.
func (c *Client) CreateIncident(ctx context.Context, in domain.NewIncident) error {
	return c.doJSON(ctx, http.MethodPost, "/incidents", in, nil)
}

// Incident fetches one incident and decodes it tolerantly. A 404 comes back
// as ErrNotFound.
func (c *Client) Incident(ctx context.Context, id int) (domain.Incident, error) {
	path := "/incidents/" + strconv.Itoa(id)
	resp, err := c.send(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return domain.Incident{}, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Incident{}, err
	}
	inc, err := domain.DecodeIncident(raw, c.clock)
	if err != nil {
		return domain.Incident{}, &DecodeError{Endpoint: path, Err: err}
	}
	return inc, nil
}

func (c *Client) FactoryIncidentList(ctx context.Context, factoryID int) ([]domain.Incident, error) {
	return c.incidentList(ctx, "/incidents/factory/"+strconv.Itoa(factoryID))
}

func (c *Client) Incidents(ctx context.Context) ([]domain.Incident, error) {
	return c.incidentList(ctx, "/incidents")
}

func (c *Client) incidentList(ctx context.Context, path string) ([]domain.Incident, error) {
	var resp incidentsResponse
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}
	out := make([]domain.Incident, 0, len(resp.Incidents))
	for i, raw := range resp.Incidents {
		inc, err := domain.DecodeIncident(raw, c.clock)
		if err != nil {
			return nil, &DecodeError{Endpoint: path, Err: fmt.Errorf("incident %d: %w", i, err)}
		}
		out = append(out, inc)
	}
	return out, nil
}

func (c *Client) DashboardSummary(ctx context.Context, filter domain.IncidentFilter) (domain.DashboardSummary, error) {
	q := url.Values{}
	if filter.FactoryID != nil {
		q.Set("factory_id", strconv.Itoa(*filter.FactoryID))
	}
	if filter.From != nil {
		q.Set("from", filter.From.Time.Format(time.DateOnly))
	}
	if filter.To != nil {
		q.Set("to", filter.To.Time.Format(time.DateOnly))
	}
	path := "/dashboard/summary"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out domain.DashboardSummary
	resp, err := c.send(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()
	return out, c.decode(path, resp.Body, &out)
}

func (c *Client) putChunk(ctx context.Context, rawURL, contentType, contentRange string, chunk []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, rawURL, bytes.NewReader(chunk))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Content-Range", contentRange)
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	return nil
}
