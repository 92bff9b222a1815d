package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/sjmp-dev/parish-admin-api/internal/dto"
	"github.com/sjmp-dev/parish-admin-api/internal/models"
	appErrors "github.com/sjmp-dev/parish-admin-api/pkg/errors"
)

type historyStore interface {
	ListByEmail(ctx context.Context, email string) ([]models.SacramentRequest, error)
}

// HistoryService collects everything a parishioner has submitted, across
// all request types, for the account history page.
type HistoryService struct {
	repo   historyStore
	logger *zap.Logger
}

// NewHistoryService constructs the service.
func NewHistoryService(repo historyStore, logger *zap.Logger) *HistoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HistoryService{repo: repo, logger: logger}
}

// ByEmail returns the submission history for one email address.
func (s *HistoryService) ByEmail(ctx context.Context, email string) (*dto.HistoryResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, appErrors.ErrValidation.Clone("email is required")
	}

	requests, err := s.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []models.SacramentRequest{}
	}

	return &dto.HistoryResponse{
		Email:    email,
		Total:    len(requests),
		Requests: requests,
	}, nil
}
