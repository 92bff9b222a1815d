package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sjmp-dev/parish-admin-api/internal/models"
)

const requestColumns = `id, request_type, request_number, sacrament, subject_name, sub_type,
	schedule_date, schedule_time, contact_number, address, status, payment_status, fee,
	payment_date, payment_method, payment_reference, payment_notes,
	cancellation_reason, cancelled_by, cancelled_at,
	rejection_reason, rejected_by, rejected_at,
	approved_by, approved_at, ready_by, ready_at,
	submitted_by_email, details, version, created_at, last_updated`

// RequestRepository provides CRUD over the sacrament_requests table,
// scoped per request type.
type RequestRepository struct {
	db *sqlx.DB
}

// NewRequestRepository creates a new instance of RequestRepository.
func NewRequestRepository(db *sqlx.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// Create inserts a new request. ID, version and timestamps are assigned
// here when absent.
func (r *RequestRepository) Create(ctx context.Context, req *models.SacramentRequest) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if req.CreatedAt.IsZero() {
		req.CreatedAt = now
	}
	req.LastUpdated = now
	req.Version = 1

	const query = `INSERT INTO sacrament_requests (
		id, request_type, request_number, sacrament, subject_name, sub_type,
		schedule_date, schedule_time, contact_number, address, status, payment_status, fee,
		payment_date, payment_method, payment_reference, payment_notes,
		cancellation_reason, cancelled_by, cancelled_at,
		rejection_reason, rejected_by, rejected_at,
		approved_by, approved_at, ready_by, ready_at,
		submitted_by_email, details, version, created_at, last_updated
	) VALUES (
		:id, :request_type, :request_number, :sacrament, :subject_name, :sub_type,
		:schedule_date, :schedule_time, :contact_number, :address, :status, :payment_status, :fee,
		:payment_date, :payment_method, :payment_reference, :payment_notes,
		:cancellation_reason, :cancelled_by, :cancelled_at,
		:rejection_reason, :rejected_by, :rejected_at,
		:approved_by, :approved_at, :ready_by, :ready_at,
		:submitted_by_email, :details, :version, :created_at, :last_updated
	)`
	if _, err := r.db.NamedExecContext(ctx, query, req); err != nil {
		return fmt.Errorf("create %s request: %w", req.RequestType, err)
	}
	return nil
}

// ListByType returns all requests of a type, newest first.
func (r *RequestRepository) ListByType(ctx context.Context, requestType string) ([]models.SacramentRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM sacrament_requests WHERE request_type = $1 ORDER BY created_at DESC`, requestColumns)
	var requests []models.SacramentRequest
	if err := r.db.SelectContext(ctx, &requests, query, requestType); err != nil {
		return nil, fmt.Errorf("list %s requests: %w", requestType, err)
	}
	return requests, nil
}

// FindByID returns one request by id within a type.
func (r *RequestRepository) FindByID(ctx context.Context, requestType, id string) (*models.SacramentRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM sacrament_requests WHERE request_type = $1 AND id = $2 LIMIT 1`, requestColumns)
	var req models.SacramentRequest
	if err := r.db.GetContext(ctx, &req, query, requestType, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find %s request by id: %w", requestType, err)
	}
	return &req, nil
}

// Update persists all mutable fields guarded by the version counter.
// sql.ErrNoRows means the row vanished or was modified concurrently; the
// caller decides which.
func (r *RequestRepository) Update(ctx context.Context, req *models.SacramentRequest) error {
	const query = `UPDATE sacrament_requests SET
		subject_name = :subject_name, sub_type = :sub_type,
		schedule_date = :schedule_date, schedule_time = :schedule_time,
		contact_number = :contact_number, address = :address,
		status = :status, payment_status = :payment_status, fee = :fee,
		payment_date = :payment_date, payment_method = :payment_method,
		payment_reference = :payment_reference, payment_notes = :payment_notes,
		cancellation_reason = :cancellation_reason, cancelled_by = :cancelled_by, cancelled_at = :cancelled_at,
		rejection_reason = :rejection_reason, rejected_by = :rejected_by, rejected_at = :rejected_at,
		approved_by = :approved_by, approved_at = :approved_at,
		ready_by = :ready_by, ready_at = :ready_at,
		submitted_by_email = :submitted_by_email, details = :details,
		version = version + 1, last_updated = :last_updated
	WHERE id = :id AND request_type = :request_type AND version = :version`

	res, err := r.db.NamedExecContext(ctx, query, req)
	if err != nil {
		return fmt.Errorf("update %s request: %w", req.RequestType, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s request: rows affected: %w", req.RequestType, err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	req.Version++
	return nil
}

// Delete removes a request.
func (r *RequestRepository) Delete(ctx context.Context, requestType, id string) error {
	const query = `DELETE FROM sacrament_requests WHERE request_type = $1 AND id = $2`
	res, err := r.db.ExecContext(ctx, query, requestType, id)
	if err != nil {
		return fmt.Errorf("delete %s request: %w", requestType, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s request: rows affected: %w", requestType, err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// RequestNumberExists probes for an existing request number.
func (r *RequestRepository) RequestNumberExists(ctx context.Context, number string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM sacrament_requests WHERE request_number = $1)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, number); err != nil {
		return false, fmt.Errorf("check request number: %w", err)
	}
	return exists, nil
}

// ListByEmail returns every request submitted by an email, across all
// types, newest first. Backs the parishioner history page.
func (r *RequestRepository) ListByEmail(ctx context.Context, email string) ([]models.SacramentRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM sacrament_requests WHERE LOWER(submitted_by_email) = LOWER($1) ORDER BY created_at DESC`, requestColumns)
	var requests []models.SacramentRequest
	if err := r.db.SelectContext(ctx, &requests, query, email); err != nil {
		return nil, fmt.Errorf("list requests by email: %w", err)
	}
	return requests, nil
}

// ListSchedules returns all requests of a type ordered by schedule date
// ascending for the calendar views.
func (r *RequestRepository) ListSchedules(ctx context.Context, requestType string) ([]models.SacramentRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM sacrament_requests WHERE request_type = $1 ORDER BY schedule_date ASC, schedule_time ASC`, requestColumns)
	var requests []models.SacramentRequest
	if err := r.db.SelectContext(ctx, &requests, query, requestType); err != nil {
		return nil, fmt.Errorf("list %s schedules: %w", requestType, err)
	}
	return requests, nil
}
