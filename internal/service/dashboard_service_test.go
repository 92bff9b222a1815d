package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjmp-dev/parish-admin-api/internal/dto"
	"github.com/sjmp-dev/parish-admin-api/internal/models"
	appErrors "github.com/sjmp-dev/parish-admin-api/pkg/errors"
)

type fakeDashboardCounter struct {
	totals  map[string]int
	monthly map[string][]dto.MonthCount
	calls   int
}

func (f *fakeDashboardCounter) CountByType(_ context.Context, requestType string) (int, error) {
	f.calls++
	return f.totals[requestType], nil
}

func (f *fakeDashboardCounter) MonthlyCounts(_ context.Context, requestType string) ([]dto.MonthCount, error) {
	return f.monthly[requestType], nil
}

type fakeMembers struct{}

func (fakeMembers) Count(context.Context) (int, error) { return 42, nil }
func (fakeMembers) Monthly(context.Context) ([12]int, error) {
	return [12]int{0, 3, 0, 0, 7}, nil
}

type fakeRecentActivity struct{}

func (fakeRecentActivity) Recent(_ context.Context, limit int) ([]models.ActivityLog, error) {
	entries := []models.ActivityLog{
		{Action: models.ActivityCreate, EntityType: "baptism", SubjectLabel: "Juan"},
		{Action: models.ActivityDelete, EntityType: "staff", SubjectLabel: "Old Account"},
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

type memoryCache struct {
	store    map[string][]byte
	inactive bool
}

func (m *memoryCache) Active() bool { return !m.inactive }

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := m.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if m.store == nil {
		m.store = map[string][]byte{}
	}
	m.store[key] = raw
	return nil
}

func TestDashboardServiceTotalByType(t *testing.T) {
	counter := &fakeDashboardCounter{totals: map[string]int{"baptism": 11}}
	svc := NewDashboardService(counter, fakeMembers{}, fakeRecentActivity{}, nil, time.Minute, nil)

	result, err := svc.TotalByType(context.Background(), "baptism")
	require.NoError(t, err)
	assert.Equal(t, 11, result.Count)
}

func TestDashboardServiceTotalByTypeUsesCache(t *testing.T) {
	counter := &fakeDashboardCounter{totals: map[string]int{"baptism": 11}}
	cache := &memoryCache{}
	svc := NewDashboardService(counter, fakeMembers{}, fakeRecentActivity{}, cache, time.Minute, nil)

	_, err := svc.TotalByType(context.Background(), "baptism")
	require.NoError(t, err)
	result, err := svc.TotalByType(context.Background(), "baptism")
	require.NoError(t, err)

	assert.Equal(t, 11, result.Count)
	assert.Equal(t, 1, counter.calls)
}

func TestDashboardServiceInactiveCacheSkipsLookups(t *testing.T) {
	counter := &fakeDashboardCounter{totals: map[string]int{"baptism": 11}}
	cache := &memoryCache{inactive: true}
	metrics := NewMetricsService()
	svc := NewDashboardService(counter, fakeMembers{}, fakeRecentActivity{}, cache, time.Minute, nil).WithMetrics(metrics)

	_, err := svc.TotalByType(context.Background(), "baptism")
	require.NoError(t, err)
	_, err = svc.TotalByType(context.Background(), "baptism")
	require.NoError(t, err)

	// Every read goes to the store, nothing is cached, and no lookup
	// is counted against the metrics.
	assert.Equal(t, 2, counter.calls)
	assert.Empty(t, cache.store)
	assert.Zero(t, testutil.ToFloat64(metrics.cacheMisses))
	assert.Zero(t, testutil.ToFloat64(metrics.cacheHits))
}

func TestDashboardServiceMonthlyByType(t *testing.T) {
	counter := &fakeDashboardCounter{monthly: map[string][]dto.MonthCount{
		"pamisa": {{Month: 1, Count: 2}, {Month: 12, Count: 9}},
	}}
	svc := NewDashboardService(counter, fakeMembers{}, fakeRecentActivity{}, nil, time.Minute, nil)

	result, err := svc.MonthlyByType(context.Background(), "pamisa")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Months[0])
	assert.Equal(t, 9, result.Months[11])
}

func TestDashboardServiceUsers(t *testing.T) {
	svc := NewDashboardService(&fakeDashboardCounter{}, fakeMembers{}, fakeRecentActivity{}, nil, time.Minute, nil)

	total, err := svc.TotalUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, total.Count)

	monthly, err := svc.MonthlyUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, monthly.Months[1])
	assert.Equal(t, 7, monthly.Months[4])
}

func TestDashboardServiceRecentActivity(t *testing.T) {
	svc := NewDashboardService(&fakeDashboardCounter{}, fakeMembers{}, fakeRecentActivity{}, nil, time.Minute, nil)

	entries, err := svc.RecentActivity(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActivityCreate, entries[0].Action)
}
