package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sjmp-dev/parish-admin-api/internal/dto"
	"github.com/sjmp-dev/parish-admin-api/internal/models"
	"github.com/sjmp-dev/parish-admin-api/internal/registry"
	appErrors "github.com/sjmp-dev/parish-admin-api/pkg/errors"
)

type scheduleStore interface {
	ListSchedules(ctx context.Context, requestType string) ([]models.SacramentRequest, error)
}

// ScheduleService serves the per-sacrament calendar pages.
type ScheduleService struct {
	repo   scheduleStore
	logger *zap.Logger
}

// NewScheduleService constructs the service.
func NewScheduleService(repo scheduleStore, logger *zap.Logger) *ScheduleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{repo: repo, logger: logger}
}

// ListByType returns the calendar rows for one request type, soonest
// first.
func (s *ScheduleService) ListByType(ctx context.Context, requestType string) ([]dto.ScheduleEntry, error) {
	if _, ok := registry.ByName(requestType); !ok {
		return nil, appErrors.ErrNotFound
	}

	requests, err := s.repo.ListSchedules(ctx, requestType)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.ScheduleEntry, 0, len(requests))
	for _, req := range requests {
		entries = append(entries, dto.ScheduleEntry{
			ID:            req.ID,
			Name:          req.SubjectName,
			Type:          req.Sacrament,
			Date:          req.ScheduleDate,
			Time:          req.ScheduleTime,
			Contact:       orPlaceholder(req.ContactNumber),
			Address:       orPlaceholder(req.Address),
			Status:        string(req.Status),
			PaymentStatus: string(req.PaymentStatus),
			RequestNumber: req.RequestNumber,
			Notes:         scheduleNotes(req.SubType),
		})
	}
	return entries, nil
}

// The calendar pages render contact and address verbatim, so blanks
// keep the legacy placeholder.
func orPlaceholder(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

func scheduleNotes(subType string) string {
	if subType == "" {
		return ""
	}
	return "Type: " + subType
}
