package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tikkeul/internal/domain"
)

type fakeReporter struct {
	calls       []string
	workerErr   error
	incidentErr error
	incidents   []domain.NewIncident
}

func (f *fakeReporter) CreateWorker(_ context.Context, _ domain.NewWorker) (int, error) {
	f.calls = append(f.calls, "worker")
	if f.workerErr != nil {
		return 0, f.workerErr
	}
	return 77, nil
}

func (f *fakeReporter) CreateIncident(_ context.Context, in domain.NewIncident) error {
	f.calls = append(f.calls, "incident")
	f.incidents = append(f.incidents, in)
	return f.incidentErr
}

func filledForm() *ReportForm {
	f := NewReportForm(Lookups{
		Factories: []domain.Factory{{ID: 1, Name: "평택 공장"}},
		Checks:    []string{"안전모 착용", "안전화 착용"},
	})
	f.WorkerName = "김철수"
	f.AgeRangeID = 2
	f.Sex = "남"
	f.WorkExperienceRangeID = 1
	f.ThreatTypeID = 2
	f.ThreatLevel = 4
	f.WorkTypeID = 3
	f.Description = "작업 중 추락"
	f.Date = domain.DateOf(2024, time.March, 1)
	return f
}

func TestSubmitIncompleteChecklistMakesNoCalls(t *testing.T) {
	f := filledForm()
	require.True(t, f.Checklist.Answer("안전모 착용", true))

	api := &fakeReporter{}
	err := f.Submit(context.Background(), api)
	assert.ErrorIs(t, err, ErrChecklistIncomplete)
	assert.Equal(t, MsgChecklistIncomplete, err.Error())
	assert.Empty(t, api.calls)

	require.NotNil(t, f.Checklist[0].Answer)
	assert.True(t, *f.Checklist[0].Answer)
	assert.Nil(t, f.Checklist[1].Answer)
}

func TestSubmitRequiredFields(t *testing.T) {
	cases := map[string]func(*ReportForm){
		"no name":      func(f *ReportForm) { f.WorkerName = "" },
		"no threat":    func(f *ReportForm) { f.ThreatTypeID = 0 },
		"level 0":      func(f *ReportForm) { f.ThreatLevel = 0 },
		"no date":      func(f *ReportForm) { f.Date = domain.Date{} },
		"no factories": func(f *ReportForm) { f.FactoryID = domain.NoFactoryID },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := filledForm()
			f.Checklist.Answer("안전모 착용", true)
			f.Checklist.Answer("안전화 착용", false)
			mutate(f)
			api := &fakeReporter{}
			assert.ErrorIs(t, f.Submit(context.Background(), api), ErrValidation)
			assert.Empty(t, api.calls)
		})
	}
}

func TestSubmitCreatesWorkerThenIncident(t *testing.T) {
	f := filledForm()
	f.Checklist.Answer("안전화 착용", false)
	f.Checklist.Answer("안전모 착용", true)
	f.IndustryTypeLargeID = 4

	api := &fakeReporter{}
	require.NoError(t, f.Submit(context.Background(), api))
	assert.Equal(t, []string{"worker", "incident"}, api.calls)

	got := api.incidents[0]
	assert.Equal(t, 77, got.WorkerID)
	assert.Equal(t, domain.CheckPairs{{Question: "안전모 착용", Answer: true}, {Question: "안전화 착용", Answer: false}}, got.Checks)
	require.NotNil(t, got.IndustryTypeLargeID)
	assert.Equal(t, 4, *got.IndustryTypeLargeID)
	assert.Nil(t, got.IndustryTypeMediumID)
}

func TestSubmitFailures(t *testing.T) {
	f := filledForm()
	f.Checklist.Answer("안전모 착용", true)
	f.Checklist.Answer("안전화 착용", true)

	api := &fakeReporter{workerErr: errors.New("offline")}
	err := f.Submit(context.Background(), api)
	var se *SubmitError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, MsgReportFailed, err.Error())
	assert.Zero(t, se.WorkerID)
	assert.Equal(t, []string{"worker"}, api.calls)

	api = &fakeReporter{incidentErr: &APIError{Status: 500}}
	err = f.Submit(context.Background(), api)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 77, se.WorkerID)
	assert.Equal(t, []string{"worker", "incident"}, api.calls)
}

// TestSubmitWirePayload drives the form against a live handler and checks
// the exact bytes of both requests.
func TestSubmitWirePayload(t *testing.T) {
	var workerBody, incidentBody string
	mux := lookupMux()
	mux.HandleFunc("POST /workers", func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		workerBody = string(b)
		writeBody(w, 201, `{"id":31}`)
	})
	mux.HandleFunc("POST /incidents", func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		incidentBody = string(b)
		writeBody(w, 201, `{"id":1}`)
	})
	c, rec := newTestClient(t, mux)
	ctx := context.Background()

	l := c.LoadLookups(ctx)
	f := NewReportForm(l)
	assert.Equal(t, 1, f.FactoryID)
	f.WorkerName = "김철수"
	f.AgeRangeID = l.AgeRanges[0].ID
	f.Sex = "남"
	f.WorkExperienceRangeID = l.WorkExperienceRanges[0].ID
	f.ThreatTypeID = l.ThreatTypes[0].ID
	f.ThreatLevel = 4
	f.WorkTypeID = l.WorkTypes[0].ID
	f.Checklist.Answer("안전모 착용", true)
	f.Description = "작업 중 추락"
	f.Date = domain.DateOf(2024, time.March, 1)

	require.NoError(t, f.Submit(ctx, c))
	assert.Equal(t, 1, rec.count("POST /workers"))
	assert.Equal(t, 1, rec.count("POST /incidents"))

	var worker map[string]any
	require.NoError(t, json.Unmarshal([]byte(workerBody), &worker))
	assert.Equal(t, map[string]any{
		"name": "김철수", "ageRange_id": 5.0, "sex": "남", "workExperienceRange_id": 1.0,
	}, worker)

	assert.JSONEq(t, `{
		"worker_id": 31,
		"threatType_id": 2,
		"threatLevel": 4,
		"workType_id": 3,
		"checks": [["안전모 착용", true]],
		"description": "작업 중 추락",
		"date": "2024-03-01T00:00:00.000Z",
		"factory_id": 1
	}`, incidentBody)
}
