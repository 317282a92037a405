package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func at(s *Store, ts time.Time) {
	s.now = func() time.Time { return ts }
}

func TestHashIPStableAndOpaque(t *testing.T) {
	s := openTest(t)
	a := s.HashIP("10.0.0.1")
	assert.Equal(t, a, s.HashIP("10.0.0.1"))
	assert.NotEqual(t, a, s.HashIP("10.0.0.2"))
	assert.Len(t, a, 16)
	assert.NotContains(t, a, "10.0.0.1")
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	at(s, now.Add(-10*24*time.Hour))
	require.NoError(t, s.RecordVisit(ctx, "1.1.1.1", "old", "/"))
	at(s, now.Add(-3*24*time.Hour))
	require.NoError(t, s.RecordVisit(ctx, "2.2.2.2", "week", "/"))
	at(s, now.Add(-time.Hour))
	require.NoError(t, s.RecordVisit(ctx, "2.2.2.2", "today", "/"))
	require.NoError(t, s.RecordDownload(ctx, "2.2.2.2"))
	at(s, now)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalVisitors)
	assert.Equal(t, int64(2), stats.UniqueVisitors)
	assert.Equal(t, int64(1), stats.VisitorsToday)
	assert.Equal(t, int64(2), stats.VisitorsThisWeek)
	assert.Equal(t, int64(1), stats.CVDownloads)

	require.Len(t, stats.RecentVisitors, 3)
	assert.Equal(t, "today", stats.RecentVisitors[0].UserAgent)
	assert.Equal(t, "old", stats.RecentVisitors[2].UserAgent)
}

func TestCleanup(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	at(s, now.AddDate(-2, 0, 0))
	require.NoError(t, s.RecordVisit(ctx, "1.1.1.1", "ua", "/"))
	require.NoError(t, s.RecordDownload(ctx, "1.1.1.1"))
	at(s, now.AddDate(0, -1, 0))
	require.NoError(t, s.RecordVisit(ctx, "1.1.1.1", "ua", "/"))
	at(s, now)

	n, err := s.Cleanup(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalVisitors)
	assert.Zero(t, stats.CVDownloads)
}

func TestNewToken(t *testing.T) {
	a, err := NewToken()
	require.NoError(t, err)
	b, err := NewToken()
	require.NoError(t, err)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
