package workers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tikkeul/internal/domain"
)

type fakeRepo struct{ got []domain.NewWorker }

func (f *fakeRepo) CreateWorker(_ context.Context, w domain.NewWorker) (int, error) {
	f.got = append(f.got, w)
	return 41 + len(f.got), nil
}

func TestCreateWorker(t *testing.T) {
	repo := &fakeRepo{}
	id, err := New(repo).Create(context.Background(), domain.NewWorker{
		Name: " 김철수 ", AgeRangeID: 2, Sex: "남", WorkExperienceRangeID: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 42, id)
	assert.Equal(t, "김철수", repo.got[0].Name)
}

func TestCreateWorkerValidation(t *testing.T) {
	repo := &fakeRepo{}
	_, err := New(repo).Create(context.Background(), domain.NewWorker{Name: "   ", AgeRangeID: 2, Sex: "남", WorkExperienceRangeID: 3})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name is required", ve.Msg)

	_, err = New(repo).Create(context.Background(), domain.NewWorker{Name: "a", AgeRangeID: 2, Sex: "x", WorkExperienceRangeID: 3})
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, repo.got)
}
