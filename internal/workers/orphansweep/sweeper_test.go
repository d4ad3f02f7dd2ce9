package orphansweep

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	cutoffs []time.Time
	deleted int64
	err     error
}

func (f *fakeRepo) DeleteOrphanWorkers(_ context.Context, before time.Time) (int64, error) {
	f.cutoffs = append(f.cutoffs, before)
	return f.deleted, f.err
}

func TestSweepOnceUsesGraceCutoff(t *testing.T) {
	now := time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{deleted: 2}
	s := New(repo, 24*time.Hour, clockwork.NewFakeClockAt(now))

	n, err := s.SweepOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, []time.Time{now.Add(-24 * time.Hour)}, repo.cutoffs)
}

func TestSweepOnceReturnsRepoError(t *testing.T) {
	s := New(&fakeRepo{err: errors.New("db down")}, time.Hour, clockwork.NewFakeClock())
	_, err := s.SweepOnce(context.Background())
	assert.EqualError(t, err, "db down")
}

func TestRunRejectsBadSchedule(t *testing.T) {
	s := New(&fakeRepo{}, time.Hour, nil)
	assert.Error(t, s.Run(context.Background(), "not a schedule"))
}

func TestRunDisabledAndCancel(t *testing.T) {
	s := New(&fakeRepo{}, time.Hour, nil)
	assert.NoError(t, s.Run(context.Background(), ""))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "@hourly") }()
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
