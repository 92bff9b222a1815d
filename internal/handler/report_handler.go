package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sjmp-dev/parish-admin-api/internal/service"
	"github.com/sjmp-dev/parish-admin-api/pkg/response"
)

// ReportHandler serves the reports page aggregations and downloads.
// archive may be nil when export archiving is disabled.
type ReportHandler struct {
	reports *service.ReportService
	exports *service.ExportService
	archive *service.ArchiveService
}

// NewReportHandler creates a new handler.
func NewReportHandler(reports *service.ReportService, exports *service.ExportService, archive *service.ArchiveService) *ReportHandler {
	return &ReportHandler{reports: reports, exports: exports, archive: archive}
}

// Summary godoc
// @Summary Report headline totals
// @Tags Reports
// @Produce json
// @Success 200 {object} dto.SummaryReport
// @Router /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.reports.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary)
}

// Distribution godoc
// @Summary Sacrament distribution
// @Tags Reports
// @Produce json
// @Success 200 {array} dto.DistributionEntry
// @Router /reports/sacrament-distribution [get]
func (h *ReportHandler) Distribution(c *gin.Context) {
	entries, err := h.reports.Distribution(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}

// MonthlyPerformance godoc
// @Summary Baptism counts per month for a year
// @Tags Reports
// @Produce json
// @Param year query int false "Calendar year, defaults to the current one"
// @Success 200 {object} dto.MonthlyResponse
// @Router /reports/monthly-performance [get]
func (h *ReportHandler) MonthlyPerformance(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))

	series, err := h.reports.MonthlyPerformance(c.Request.Context(), year)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, series)
}

// RecentRequests godoc
// @Summary Newest submissions across all sacraments
// @Tags Reports
// @Produce json
// @Success 200 {array} dto.RecentRequest
// @Router /reports/recent-requests [get]
func (h *ReportHandler) RecentRequests(c *gin.Context) {
	rows, err := h.reports.RecentRequests(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows)
}

// PerformanceMetrics godoc
// @Summary Month-over-month comparisons
// @Tags Reports
// @Produce json
// @Success 200 {array} dto.PerformanceMetric
// @Router /reports/performance-metrics [get]
func (h *ReportHandler) PerformanceMetrics(c *gin.Context) {
	metrics, err := h.reports.PerformanceMetrics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, metrics)
}

// Export godoc
// @Summary Download the report as CSV or PDF
// @Tags Reports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string true "Export format" Enums(csv, pdf)
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Router /reports/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	file, err := h.exports.Render(c.Request.Context(), c.DefaultQuery("format", "csv"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.archive != nil {
		if token := h.archive.Keep(file); token != "" {
			c.Header("X-Export-Token", token)
		}
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.FileName+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

// DownloadArchive godoc
// @Summary Re-download a previously exported report
// @Tags Reports
// @Produce text/csv
// @Produce application/pdf
// @Param token path string true "Signed export token"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reports/export/archive/{token} [get]
func (h *ReportHandler) DownloadArchive(c *gin.Context) {
	if h.archive == nil {
		response.JSON(c, http.StatusNotFound, gin.H{"message": "export archiving is disabled"})
		return
	}

	file, err := h.archive.Fetch(c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.FileName+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
