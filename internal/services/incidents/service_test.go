package incidents

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tikkeul/internal/domain"
)

type fakeRepo struct {
	created []domain.NewIncident
	byID    map[int]domain.Incident
	filters []domain.IncidentFilter
}

func (f *fakeRepo) CreateIncident(_ context.Context, in domain.NewIncident) (int, error) {
	f.created = append(f.created, in)
	return len(f.created), nil
}

func (f *fakeRepo) GetIncident(_ context.Context, id int) (domain.Incident, error) {
	inc, ok := f.byID[id]
	if !ok {
		return domain.Incident{}, domain.ErrNotFound
	}
	return inc, nil
}

func (f *fakeRepo) ListIncidents(_ context.Context, filter domain.IncidentFilter) ([]domain.Incident, error) {
	f.filters = append(f.filters, filter)
	return []domain.Incident{{ID: 7}}, nil
}

func validIncident() domain.NewIncident {
	return domain.NewIncident{
		WorkerID:     1,
		ThreatTypeID: 2,
		ThreatLevel:  4,
		WorkTypeID:   3,
		Checks:       domain.CheckPairs{{Question: "안전모 착용", Answer: true}},
		Description:  "  작업 중 추락 ",
		Date:         domain.ISODate(domain.DateOf(2024, time.March, 1)),
		FactoryID:    1,
	}
}

func TestCreateStoresTrimmedIncident(t *testing.T) {
	repo := &fakeRepo{}
	id, err := New(repo).Create(context.Background(), validIncident())
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "작업 중 추락", repo.created[0].Description)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	cases := map[string]func(*domain.NewIncident){
		"missing date":     func(in *domain.NewIncident) { in.Date = domain.ISODate{} },
		"level too high":   func(in *domain.NewIncident) { in.ThreatLevel = 6 },
		"level zero":       func(in *domain.NewIncident) { in.ThreatLevel = 0 },
		"no factory":       func(in *domain.NewIncident) { in.FactoryID = 0 },
		"duplicate checks": func(in *domain.NewIncident) { in.Checks = append(in.Checks, in.Checks[0]) },
		"bad image url":    func(in *domain.NewIncident) { in.ImageURL = "not a url" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &fakeRepo{}
			in := validIncident()
			mutate(&in)
			_, err := New(repo).Create(context.Background(), in)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Empty(t, repo.created)
		})
	}
}

func TestGetMapsMissingToNotFound(t *testing.T) {
	svc := New(&fakeRepo{byID: map[int]domain.Incident{3: {ID: 3}}})

	inc, err := svc.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, inc.ID)

	_, err = svc.Get(context.Background(), 4)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Get(context.Background(), domain.NoFactoryID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListSentinelFactorySkipsRepository(t *testing.T) {
	repo := &fakeRepo{}
	id := domain.NoFactoryID
	incs, err := New(repo).List(context.Background(), domain.IncidentFilter{FactoryID: &id})
	require.NoError(t, err)
	assert.Empty(t, incs)
	assert.Empty(t, repo.filters)
}

func TestListRejectsInvertedRange(t *testing.T) {
	from := domain.DateOf(2024, time.March, 2)
	to := domain.DateOf(2024, time.March, 1)
	_, err := New(&fakeRepo{}).List(context.Background(), domain.IncidentFilter{From: &from, To: &to})
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
}
