package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sjmp-dev/parish-admin-api/internal/dto"
	"github.com/sjmp-dev/parish-admin-api/internal/models"
)

// ReportRepository runs the aggregation queries behind the dashboard and
// reports pages.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates a new instance of ReportRepository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// CountByType counts all requests of one type.
func (r *ReportRepository) CountByType(ctx context.Context, requestType string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM sacrament_requests WHERE request_type = $1`, requestType); err != nil {
		return 0, fmt.Errorf("count %s requests: %w", requestType, err)
	}
	return count, nil
}

// CountsByType groups all requests by their type discriminator.
func (r *ReportRepository) CountsByType(ctx context.Context) ([]dto.TypeCount, error) {
	const query = `SELECT request_type, COUNT(*) AS count
		FROM sacrament_requests GROUP BY request_type`
	var counts []dto.TypeCount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("counts by type: %w", err)
	}
	return counts, nil
}

// CountByStatus counts requests holding a status, restricted to the given
// types when any are passed.
func (r *ReportRepository) CountByStatus(ctx context.Context, status models.Status, types ...string) (int, error) {
	query := `SELECT COUNT(*) FROM sacrament_requests WHERE status = ?`
	args := []interface{}{status}
	if len(types) > 0 {
		var err error
		query, args, err = sqlx.In(query+` AND request_type IN (?)`, status, types)
		if err != nil {
			return 0, fmt.Errorf("count by status: build query: %w", err)
		}
	}
	query = r.db.Rebind(query)
	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count by status: %w", err)
	}
	return count, nil
}

// CountByPayment counts requests holding a payment status.
func (r *ReportRepository) CountByPayment(ctx context.Context, paymentStatus models.PaymentStatus) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM sacrament_requests WHERE payment_status = $1`, paymentStatus); err != nil {
		return 0, fmt.Errorf("count by payment status: %w", err)
	}
	return count, nil
}

// PaidRevenue sums the recorded fees of paid requests. Fees are read from
// the rows themselves, not recomputed from the schedule.
func (r *ReportRepository) PaidRevenue(ctx context.Context) (float64, error) {
	var total float64
	if err := r.db.GetContext(ctx, &total,
		`SELECT COALESCE(SUM(fee), 0) FROM sacrament_requests WHERE payment_status = $1`,
		models.PaymentPaid); err != nil {
		return 0, fmt.Errorf("sum paid revenue: %w", err)
	}
	return total, nil
}

// MonthlyCounts buckets one type's requests by calendar month across all
// years.
func (r *ReportRepository) MonthlyCounts(ctx context.Context, requestType string) ([]dto.MonthCount, error) {
	const query = `SELECT EXTRACT(MONTH FROM created_at)::int AS month, COUNT(*) AS count
		FROM sacrament_requests WHERE request_type = $1 GROUP BY 1 ORDER BY 1`
	var counts []dto.MonthCount
	if err := r.db.SelectContext(ctx, &counts, query, requestType); err != nil {
		return nil, fmt.Errorf("monthly %s counts: %w", requestType, err)
	}
	return counts, nil
}

// MonthlyCountsForYear buckets one type's requests by month within a year.
func (r *ReportRepository) MonthlyCountsForYear(ctx context.Context, requestType string, year int) ([]dto.MonthCount, error) {
	const query = `SELECT EXTRACT(MONTH FROM created_at)::int AS month, COUNT(*) AS count
		FROM sacrament_requests
		WHERE request_type = $1 AND EXTRACT(YEAR FROM created_at) = $2
		GROUP BY 1 ORDER BY 1`
	var counts []dto.MonthCount
	if err := r.db.SelectContext(ctx, &counts, query, requestType, year); err != nil {
		return nil, fmt.Errorf("monthly %s counts for %d: %w", requestType, year, err)
	}
	return counts, nil
}

// CountInMonth counts one type's requests created in a specific month.
func (r *ReportRepository) CountInMonth(ctx context.Context, requestType string, year, month int) (int, error) {
	const query = `SELECT COUNT(*) FROM sacrament_requests
		WHERE request_type = $1
		AND EXTRACT(YEAR FROM created_at) = $2
		AND EXTRACT(MONTH FROM created_at) = $3`
	var count int
	if err := r.db.GetContext(ctx, &count, query, requestType, year, month); err != nil {
		return 0, fmt.Errorf("count %s requests in %d-%02d: %w", requestType, year, month, err)
	}
	return count, nil
}

// Recent returns the newest requests across every type.
func (r *ReportRepository) Recent(ctx context.Context, limit int) ([]models.SacramentRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM sacrament_requests ORDER BY created_at DESC LIMIT $1`, requestColumns)
	var requests []models.SacramentRequest
	if err := r.db.SelectContext(ctx, &requests, query, limit); err != nil {
		return nil, fmt.Errorf("list recent requests: %w", err)
	}
	return requests, nil
}
