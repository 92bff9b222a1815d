package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjmp-dev/parish-admin-api/internal/dto"
	"github.com/sjmp-dev/parish-admin-api/pkg/config"
	appErrors "github.com/sjmp-dev/parish-admin-api/pkg/errors"
)

type fakeReportSource struct{}

func (fakeReportSource) Summary(context.Context) (*dto.SummaryReport, error) {
	return &dto.SummaryReport{TotalRevenue: 1500}, nil
}

func (fakeReportSource) Distribution(context.Context) ([]dto.DistributionEntry, error) {
	return []dto.DistributionEntry{{Label: "Baptism", Count: 2, Percentage: 100}}, nil
}

func (fakeReportSource) RecentRequests(context.Context) ([]dto.RecentRequest, error) {
	return []dto.RecentRequest{{
		RequestNumber: "BAPT-1-a",
		Sacrament:     "Baptism",
		SubjectName:   "Juan Dela Cruz",
		Status:        "pending",
		PaymentStatus: "paid",
		Fee:           500,
		CreatedAt:     "2026-05-01",
	}}, nil
}

func TestExportServiceRenderCSV(t *testing.T) {
	svc := NewExportService(fakeReportSource{}, config.ReportsConfig{ParishName: "San Jose Manggagawa Parish"}, nil)

	file, err := svc.Render(context.Background(), "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.True(t, strings.HasSuffix(file.FileName, ".csv"))

	body := string(file.Content)
	assert.Contains(t, body, "Request No,Sacrament,Subject")
	assert.Contains(t, body, "BAPT-1-a,Baptism,Juan Dela Cruz")
	assert.Contains(t, body, "Total revenue,1500.00")
}

func TestExportServiceRenderPDF(t *testing.T) {
	svc := NewExportService(fakeReportSource{}, config.ReportsConfig{ParishName: "San Jose Manggagawa Parish"}, nil)

	file, err := svc.Render(context.Background(), "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasPrefix(string(file.Content), "%PDF"))
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	svc := NewExportService(fakeReportSource{}, config.ReportsConfig{}, nil)

	_, err := svc.Render(context.Background(), "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExportServiceRespectsConfiguredFormats(t *testing.T) {
	svc := NewExportService(fakeReportSource{}, config.ReportsConfig{ExportFormats: []string{"csv"}}, nil)

	_, err := svc.Render(context.Background(), "pdf")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
