package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sjmp-dev/parish-admin-api/internal/models"
)

type activityStore interface {
	Create(ctx context.Context, entry *models.ActivityLog) error
	Recent(ctx context.Context, limit int) ([]models.ActivityLog, error)
}

// activityRecorder is what the write-path services need from the ledger.
type activityRecorder interface {
	Record(ctx context.Context, action, entityType, subject, actor string)
}

// ActivityService appends to the activity ledger. Recording never fails
// the business operation that triggered it; sink errors are logged and
// swallowed.
type ActivityService struct {
	repo   activityStore
	logger *zap.Logger
}

// NewActivityService constructs the service.
func NewActivityService(repo activityStore, logger *zap.Logger) *ActivityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityService{repo: repo, logger: logger}
}

// Record appends one entry best-effort.
func (s *ActivityService) Record(ctx context.Context, action, entityType, subject, actor string) {
	entry := &models.ActivityLog{
		Action:       action,
		EntityType:   entityType,
		SubjectLabel: subject,
		ActorLabel:   actor,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Warn("activity log write failed",
			zap.String("action", action),
			zap.String("entityType", entityType),
			zap.Error(err))
	}
}

// Recent returns the newest ledger entries for the dashboard feed.
func (s *ActivityService) Recent(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.Recent(ctx, limit)
}
