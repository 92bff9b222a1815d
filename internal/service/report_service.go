package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/sjmp-dev/parish-admin-api/internal/dto"
	"github.com/sjmp-dev/parish-admin-api/internal/models"
	"github.com/sjmp-dev/parish-admin-api/internal/registry"
	"github.com/sjmp-dev/parish-admin-api/pkg/config"
)

type reportStore interface {
	CountsByType(ctx context.Context) ([]dto.TypeCount, error)
	CountByStatus(ctx context.Context, status models.Status, types ...string) (int, error)
	CountByPayment(ctx context.Context, paymentStatus models.PaymentStatus) (int, error)
	PaidRevenue(ctx context.Context) (float64, error)
	MonthlyCountsForYear(ctx context.Context, requestType string, year int) ([]dto.MonthCount, error)
	CountInMonth(ctx context.Context, requestType string, year, month int) (int, error)
	Recent(ctx context.Context, limit int) ([]models.SacramentRequest, error)
}

// metricTypes are the request types compared month over month on the
// reports page.
var metricTypes = []string{"baptism", "confirmation", "pamisa", "marriage"}

// ReportService aggregates the reports page numbers. Every query failure
// propagates to the caller; the page shows an error rather than zeros.
type ReportService struct {
	repo   reportStore
	cfg    config.ReportsConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewReportService constructs the service.
func NewReportService(repo reportStore, cfg config.ReportsConfig, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = 10
	}
	return &ReportService{repo: repo, cfg: cfg, logger: logger, now: time.Now}
}

// WithClock overrides the clock. Test hook.
func (s *ReportService) WithClock(now func() time.Time) *ReportService {
	s.now = now
	return s
}

// Summary returns the headline totals.
func (s *ReportService) Summary(ctx context.Context) (*dto.SummaryReport, error) {
	counts, err := s.repo.CountsByType(ctx)
	if err != nil {
		return nil, err
	}

	byType := make(map[string]int, len(counts))
	total := 0
	for _, tc := range counts {
		byType[tc.RequestType] = tc.Count
		total += tc.Count
	}

	pending, err := s.repo.CountByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, err
	}
	paid, err := s.repo.CountByPayment(ctx, models.PaymentPaid)
	if err != nil {
		return nil, err
	}
	revenue, err := s.repo.PaidRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.SummaryReport{
		TotalRequests:   total,
		PendingRequests: pending,
		PaidRequests:    paid,
		TotalRevenue:    revenue,
		CountsByType:    byType,
	}, nil
}

// Distribution returns per-sacrament shares of all requests.
func (s *ReportService) Distribution(ctx context.Context) ([]dto.DistributionEntry, error) {
	counts, err := s.repo.CountsByType(ctx)
	if err != nil {
		return nil, err
	}

	byType := make(map[string]int, len(counts))
	total := 0
	for _, tc := range counts {
		byType[tc.RequestType] = tc.Count
		total += tc.Count
	}

	entries := make([]dto.DistributionEntry, 0, len(registry.All()))
	for _, rt := range registry.All() {
		count := byType[rt.Name]
		pct := 0.0
		if total > 0 {
			pct = math.Round(float64(count)/float64(total)*1000) / 10
		}
		entries = append(entries, dto.DistributionEntry{
			Label:      rt.Sacrament,
			Count:      count,
			Percentage: pct,
		})
	}
	return entries, nil
}

// MonthlyPerformance returns the baptism chart series for a year.
func (s *ReportService) MonthlyPerformance(ctx context.Context, year int) (dto.MonthlyResponse, error) {
	if year <= 0 {
		year = s.now().Year()
	}
	counts, err := s.repo.MonthlyCountsForYear(ctx, "baptism", year)
	if err != nil {
		return dto.MonthlyResponse{}, err
	}
	return dto.MonthlyResponse{Months: bucketMonths(counts)}, nil
}

// RecentRequests returns the newest submissions across all types.
func (s *ReportService) RecentRequests(ctx context.Context) ([]dto.RecentRequest, error) {
	requests, err := s.repo.Recent(ctx, s.cfg.RecentLimit)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.RecentRequest, 0, len(requests))
	for _, req := range requests {
		rows = append(rows, dto.RecentRequest{
			RequestNumber: req.RequestNumber,
			Sacrament:     req.Sacrament,
			SubjectName:   req.SubjectName,
			Status:        string(req.Status),
			PaymentStatus: string(req.PaymentStatus),
			Fee:           req.Fee,
			CreatedAt:     req.CreatedAt.Format("2006-01-02"),
		})
	}
	return rows, nil
}

// PerformanceMetrics compares the current month against the previous one
// for the headline sacraments.
func (s *ReportService) PerformanceMetrics(ctx context.Context) ([]dto.PerformanceMetric, error) {
	now := s.now()
	curYear, curMonth := now.Year(), int(now.Month())
	prev := now.AddDate(0, -1, 0)
	prevYear, prevMonth := prev.Year(), int(prev.Month())

	metrics := make([]dto.PerformanceMetric, 0, len(metricTypes))
	for _, name := range metricTypes {
		rt, ok := registry.ByName(name)
		if !ok {
			continue
		}
		current, err := s.repo.CountInMonth(ctx, name, curYear, curMonth)
		if err != nil {
			return nil, err
		}
		previous, err := s.repo.CountInMonth(ctx, name, prevYear, prevMonth)
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, dto.PerformanceMetric{
			Label:         rt.Sacrament,
			CurrentMonth:  current,
			PreviousMonth: previous,
			ChangePercent: changePercent(current, previous),
		})
	}
	return metrics, nil
}

// changePercent is the month-over-month delta. A rise from zero reads as
// a full 100% gain.
func changePercent(current, previous int) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	raw := float64(current-previous) / float64(previous) * 100
	return math.Round(raw*10) / 10
}

// exportFileName builds the attachment name for a report download.
func exportFileName(format string, at time.Time) string {
	return fmt.Sprintf("parish-report-%s.%s", at.Format("2006-01-02"), format)
}
