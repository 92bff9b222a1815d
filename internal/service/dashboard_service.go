package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sjmp-dev/parish-admin-api/internal/dto"
	"github.com/sjmp-dev/parish-admin-api/internal/models"
)

type dashboardCounter interface {
	CountByType(ctx context.Context, requestType string) (int, error)
	MonthlyCounts(ctx context.Context, requestType string) ([]dto.MonthCount, error)
}

type dashboardCache interface {
	Active() bool
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type dashboardMembers interface {
	Count(ctx context.Context) (int, error)
	Monthly(ctx context.Context) ([12]int, error)
}

type dashboardActivity interface {
	Recent(ctx context.Context, limit int) ([]models.ActivityLog, error)
}

// DashboardService serves the counters and monthly charts on the admin
// landing page. Counters are cached briefly when Redis is configured; a
// cache failure falls through to the database.
type DashboardService struct {
	counts   dashboardCounter
	members  dashboardMembers
	activity dashboardActivity
	cache    dashboardCache
	ttl      time.Duration
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewDashboardService constructs the service. cache may be nil.
func NewDashboardService(counts dashboardCounter, members dashboardMembers, activity dashboardActivity, cache dashboardCache, ttl time.Duration, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &DashboardService{
		counts:   counts,
		members:  members,
		activity: activity,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

// WithMetrics wires cache hit/miss counters into dashboard lookups.
func (s *DashboardService) WithMetrics(m *MetricsService) *DashboardService {
	s.metrics = m
	return s
}

// TotalByType returns the all-time counter for one request type.
func (s *DashboardService) TotalByType(ctx context.Context, requestType string) (dto.CountResponse, error) {
	key := fmt.Sprintf("dashboard:total:%s", requestType)
	var cached dto.CountResponse
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	count, err := s.counts.CountByType(ctx, requestType)
	if err != nil {
		return dto.CountResponse{}, err
	}
	result := dto.CountResponse{Count: count}
	s.cacheSet(ctx, key, result)
	return result, nil
}

// MonthlyByType returns the per-month chart series for one request type.
func (s *DashboardService) MonthlyByType(ctx context.Context, requestType string) (dto.MonthlyResponse, error) {
	key := fmt.Sprintf("dashboard:monthly:%s", requestType)
	var cached dto.MonthlyResponse
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	counts, err := s.counts.MonthlyCounts(ctx, requestType)
	if err != nil {
		return dto.MonthlyResponse{}, err
	}
	result := dto.MonthlyResponse{Months: bucketMonths(counts)}
	s.cacheSet(ctx, key, result)
	return result, nil
}

// TotalUsers returns the registered member counter.
func (s *DashboardService) TotalUsers(ctx context.Context) (dto.CountResponse, error) {
	key := "dashboard:total:users"
	var cached dto.CountResponse
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	count, err := s.members.Count(ctx)
	if err != nil {
		return dto.CountResponse{}, err
	}
	result := dto.CountResponse{Count: count}
	s.cacheSet(ctx, key, result)
	return result, nil
}

// MonthlyUsers returns the member registration chart series.
func (s *DashboardService) MonthlyUsers(ctx context.Context) (dto.MonthlyResponse, error) {
	months, err := s.members.Monthly(ctx)
	if err != nil {
		return dto.MonthlyResponse{}, err
	}
	return dto.MonthlyResponse{Months: months}, nil
}

// RecentActivity returns the newest ledger entries.
func (s *DashboardService) RecentActivity(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	return s.activity.Recent(ctx, limit)
}

func (s *DashboardService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil || !s.cache.Active() {
		return false
	}
	if err := s.cache.Get(ctx, key, dest); err != nil {
		s.metrics.RecordCacheLookup(false)
		return false
	}
	s.metrics.RecordCacheLookup(true)
	return true
}

func (s *DashboardService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil || !s.cache.Active() {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.String("key", key), zap.Error(err))
	}
}
