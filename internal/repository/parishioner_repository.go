package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sjmp-dev/parish-admin-api/internal/dto"
	"github.com/sjmp-dev/parish-admin-api/internal/models"
)

const parishionerColumns = `id, full_name, email, password_hash, role, address, contact, created_at`

// ParishionerRepository reads member accounts registered through the
// public site. The back office lists, counts and removes them only.
type ParishionerRepository struct {
	db *sqlx.DB
}

// NewParishionerRepository creates a new instance of ParishionerRepository.
func NewParishionerRepository(db *sqlx.DB) *ParishionerRepository {
	return &ParishionerRepository{db: db}
}

// List returns all parishioners, newest first.
func (r *ParishionerRepository) List(ctx context.Context) ([]models.Parishioner, error) {
	query := fmt.Sprintf(`SELECT %s FROM parishioners ORDER BY created_at DESC`, parishionerColumns)
	var parishioners []models.Parishioner
	if err := r.db.SelectContext(ctx, &parishioners, query); err != nil {
		return nil, fmt.Errorf("list parishioners: %w", err)
	}
	return parishioners, nil
}

// Count returns the total number of registered parishioners.
func (r *ParishionerRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM parishioners`); err != nil {
		return 0, fmt.Errorf("count parishioners: %w", err)
	}
	return count, nil
}

// MonthlyCounts buckets registrations by calendar month across all years.
func (r *ParishionerRepository) MonthlyCounts(ctx context.Context) ([]dto.MonthCount, error) {
	const query = `SELECT EXTRACT(MONTH FROM created_at)::int AS month, COUNT(*) AS count
		FROM parishioners GROUP BY 1 ORDER BY 1`
	var counts []dto.MonthCount
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("monthly parishioner counts: %w", err)
	}
	return counts, nil
}

// Delete removes a parishioner account.
func (r *ParishionerRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM parishioners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete parishioner: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete parishioner: rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
