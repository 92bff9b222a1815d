package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/sjmp-dev/parish-admin-api/internal/dto"
	"github.com/sjmp-dev/parish-admin-api/pkg/config"
	appErrors "github.com/sjmp-dev/parish-admin-api/pkg/errors"
	"github.com/sjmp-dev/parish-admin-api/pkg/export"
)

type reportSource interface {
	Summary(ctx context.Context) (*dto.SummaryReport, error)
	Distribution(ctx context.Context) ([]dto.DistributionEntry, error)
	RecentRequests(ctx context.Context) ([]dto.RecentRequest, error)
}

// ExportFile is a rendered report download.
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExportService renders the reports page into downloadable CSV or PDF.
type ExportService struct {
	reports reportSource
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	cfg     config.ReportsConfig
	logger  *zap.Logger
	now     func() time.Time
}

// NewExportService constructs the service.
func NewExportService(reports reportSource, cfg config.ReportsConfig, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(cfg.ExportFormats) == 0 {
		cfg.ExportFormats = []string{"csv", "pdf"}
	}
	return &ExportService{
		reports: reports,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// Render builds the report dataset and encodes it in the requested format.
func (s *ExportService) Render(ctx context.Context, format string) (*ExportFile, error) {
	if !s.formatAllowed(format) {
		return nil, appErrors.ErrValidation.Clone(fmt.Sprintf("unsupported export format %q", format))
	}

	data, err := s.buildDataset(ctx)
	if err != nil {
		return nil, err
	}

	switch format {
	case "csv":
		content, err := s.csv.Render(data)
		if err != nil {
			return nil, err
		}
		return &ExportFile{
			FileName:    exportFileName("csv", s.now()),
			ContentType: "text/csv",
			Content:     content,
		}, nil
	case "pdf":
		title := fmt.Sprintf("%s Report", s.cfg.ParishName)
		content, err := s.pdf.Render(data, title)
		if err != nil {
			return nil, err
		}
		return &ExportFile{
			FileName:    exportFileName("pdf", s.now()),
			ContentType: "application/pdf",
			Content:     content,
		}, nil
	}
	return nil, appErrors.ErrValidation.Clone(fmt.Sprintf("unsupported export format %q", format))
}

func (s *ExportService) formatAllowed(format string) bool {
	for _, allowed := range s.cfg.ExportFormats {
		if allowed == format {
			return true
		}
	}
	return false
}

// buildDataset flattens the recent-requests table plus a distribution
// footer into one export table.
func (s *ExportService) buildDataset(ctx context.Context) (export.Dataset, error) {
	recent, err := s.reports.RecentRequests(ctx)
	if err != nil {
		return export.Dataset{}, err
	}
	distribution, err := s.reports.Distribution(ctx)
	if err != nil {
		return export.Dataset{}, err
	}
	summary, err := s.reports.Summary(ctx)
	if err != nil {
		return export.Dataset{}, err
	}

	headers := []string{"Request No", "Sacrament", "Subject", "Status", "Payment", "Fee", "Submitted"}
	rows := make([]map[string]string, 0, len(recent)+len(distribution)+2)
	for _, req := range recent {
		rows = append(rows, map[string]string{
			"Request No": req.RequestNumber,
			"Sacrament":  req.Sacrament,
			"Subject":    req.SubjectName,
			"Status":     req.Status,
			"Payment":    req.PaymentStatus,
			"Fee":        strconv.FormatFloat(req.Fee, 'f', 2, 64),
			"Submitted":  req.CreatedAt,
		})
	}

	rows = append(rows, map[string]string{"Request No": ""})
	for _, entry := range distribution {
		rows = append(rows, map[string]string{
			"Request No": entry.Label,
			"Sacrament":  strconv.Itoa(entry.Count),
			"Subject":    strconv.FormatFloat(entry.Percentage, 'f', 1, 64) + "%",
		})
	}
	rows = append(rows, map[string]string{
		"Request No": "Total revenue",
		"Sacrament":  strconv.FormatFloat(summary.TotalRevenue, 'f', 2, 64),
	})

	return export.Dataset{Headers: headers, Rows: rows}, nil
}
