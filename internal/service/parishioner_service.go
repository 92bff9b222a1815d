package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/sjmp-dev/parish-admin-api/internal/dto"
	"github.com/sjmp-dev/parish-admin-api/internal/models"
	appErrors "github.com/sjmp-dev/parish-admin-api/pkg/errors"
)

type parishionerStore interface {
	List(ctx context.Context) ([]models.Parishioner, error)
	Count(ctx context.Context) (int, error)
	MonthlyCounts(ctx context.Context) ([]dto.MonthCount, error)
	Delete(ctx context.Context, id string) error
}

// ParishionerService exposes the read-mostly member directory to the back
// office.
type ParishionerService struct {
	repo     parishionerStore
	activity activityRecorder
	cache    cacheInvalidator
	logger   *zap.Logger
}

// NewParishionerService constructs the service.
func NewParishionerService(repo parishionerStore, activity activityRecorder, logger *zap.Logger) *ParishionerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ParishionerService{repo: repo, activity: activity, logger: logger}
}

// WithCache purges the cached member counter after deletes.
func (s *ParishionerService) WithCache(cache cacheInvalidator) *ParishionerService {
	s.cache = cache
	return s
}

// List returns all registered parishioners.
func (s *ParishionerService) List(ctx context.Context) ([]models.Parishioner, error) {
	return s.repo.List(ctx)
}

// Count returns the member total for the dashboard card.
func (s *ParishionerService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// Monthly buckets registrations per calendar month, January first.
func (s *ParishionerService) Monthly(ctx context.Context) ([12]int, error) {
	counts, err := s.repo.MonthlyCounts(ctx)
	if err != nil {
		return [12]int{}, err
	}
	return bucketMonths(counts), nil
}

// Delete removes a member account.
func (s *ParishionerService) Delete(ctx context.Context, id string, actor string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.ErrNotFound
		}
		return err
	}
	s.activity.Record(ctx, models.ActivityDelete, "parishioner", id, actor)
	if s.cache != nil {
		if err := s.cache.DeleteByPattern(ctx, "dashboard:*:users"); err != nil {
			s.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
		}
	}
	return nil
}

// bucketMonths spreads month rows into a January-first array. Months
// outside 1..12 are dropped.
func bucketMonths(counts []dto.MonthCount) [12]int {
	var months [12]int
	for _, mc := range counts {
		if mc.Month >= 1 && mc.Month <= 12 {
			months[mc.Month-1] = mc.Count
		}
	}
	return months
}
