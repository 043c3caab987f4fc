package analytics

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "visitors.db"), "test-salt")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestHashIP(t *testing.T) {
	s := newTestStore(t)

	h := s.HashIP("203.0.113.7")
	assert.Len(t, h, 16)
	assert.Equal(t, h, s.HashIP("203.0.113.7"))
	assert.NotEqual(t, h, s.HashIP("203.0.113.8"))
}

func TestOpen_RandomSalt(t *testing.T) {
	a, err := Open(filepath.Join(t.TempDir(), "a.db"), "")
	require.NoError(t, err)
	defer a.Close()
	b, err := Open(filepath.Join(t.TempDir(), "b.db"), "")
	require.NoError(t, err)
	defer b.Close()

	assert.NotEqual(t, a.HashIP("1.2.3.4"), b.HashIP("1.2.3.4"))
}

func TestTrackAndStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	// Eight days ago: counted in totals only.
	s.now = func() time.Time { return now.Add(-8 * 24 * time.Hour) }
	require.NoError(t, s.Track(ctx, "10.0.0.1", "ua", "/"))

	// Two days ago.
	s.now = func() time.Time { return now.Add(-48 * time.Hour) }
	require.NoError(t, s.Track(ctx, "10.0.0.2", "ua", "/projects"))

	s.now = func() time.Time { return now }
	require.NoError(t, s.Track(ctx, "10.0.0.1", "ua", "/"))
	require.NoError(t, s.Track(ctx, "10.0.0.3", "ua", "/"))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalVisitors)
	assert.Equal(t, int64(3), stats.UniqueVisitors)
	assert.Equal(t, int64(2), stats.VisitorsToday)
	assert.Equal(t, int64(3), stats.VisitorsThisWeek)

	require.Len(t, stats.TopPaths, 2)
	assert.Equal(t, PathCount{Path: "/", Views: 3}, stats.TopPaths[0])

	require.Len(t, stats.RecentVisitors, 4)
	assert.Equal(t, "/", stats.RecentVisitors[0].Path)
	assert.Equal(t, s.HashIP("10.0.0.3"), stats.RecentVisitors[0].HashedIP)
}

func TestCleanup(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	s.now = func() time.Time { return now.AddDate(-2, 0, 0) }
	require.NoError(t, s.Track(ctx, "10.0.0.1", "ua", "/"))
	s.now = func() time.Time { return now }
	require.NoError(t, s.Track(ctx, "10.0.0.1", "ua", "/"))

	n, err := s.Cleanup(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	recent, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestClosedStore(t *testing.T) {
	var s *Store
	assert.ErrorIs(t, s.Track(context.Background(), "", "", "/"), ErrClosed)
	_, err := s.Stats(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
	assert.NoError(t, s.Close())
}
