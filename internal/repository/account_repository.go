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

const accountColumns = `id, name, username, password_hash, role, position, department,
	address, contact, notes, is_active, created_at, last_updated`

// AccountRepository manages staff_accounts rows.
type AccountRepository struct {
	db *sqlx.DB
}

// NewAccountRepository creates a new instance of AccountRepository.
func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// List returns all staff accounts, newest first.
func (r *AccountRepository) List(ctx context.Context) ([]models.StaffAccount, error) {
	query := fmt.Sprintf(`SELECT %s FROM staff_accounts ORDER BY created_at DESC`, accountColumns)
	var accounts []models.StaffAccount
	if err := r.db.SelectContext(ctx, &accounts, query); err != nil {
		return nil, fmt.Errorf("list staff accounts: %w", err)
	}
	return accounts, nil
}

// FindByID returns one staff account.
func (r *AccountRepository) FindByID(ctx context.Context, id string) (*models.StaffAccount, error) {
	query := fmt.Sprintf(`SELECT %s FROM staff_accounts WHERE id = $1 LIMIT 1`, accountColumns)
	var account models.StaffAccount
	if err := r.db.GetContext(ctx, &account, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find staff account by id: %w", err)
	}
	return &account, nil
}

// FindByUsername matches case-insensitively.
func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*models.StaffAccount, error) {
	query := fmt.Sprintf(`SELECT %s FROM staff_accounts WHERE LOWER(username) = LOWER($1) LIMIT 1`, accountColumns)
	var account models.StaffAccount
	if err := r.db.GetContext(ctx, &account, query, username); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find staff account by username: %w", err)
	}
	return &account, nil
}

// Create inserts a new staff account.
func (r *AccountRepository) Create(ctx context.Context, account *models.StaffAccount) error {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	account.CreatedAt = now
	account.LastUpdated = now

	const query = `INSERT INTO staff_accounts (
		id, name, username, password_hash, role, position, department,
		address, contact, notes, is_active, created_at, last_updated
	) VALUES (
		:id, :name, :username, :password_hash, :role, :position, :department,
		:address, :contact, :notes, :is_active, :created_at, :last_updated
	)`
	if _, err := r.db.NamedExecContext(ctx, query, account); err != nil {
		return fmt.Errorf("create staff account: %w", err)
	}
	return nil
}

// Update persists profile fields and the active flag. The password hash is
// updated separately.
func (r *AccountRepository) Update(ctx context.Context, account *models.StaffAccount) error {
	account.LastUpdated = time.Now().UTC()
	const query = `UPDATE staff_accounts SET
		name = :name, username = :username, role = :role, position = :position,
		department = :department, address = :address, contact = :contact,
		notes = :notes, is_active = :is_active, last_updated = :last_updated
	WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, account)
	if err != nil {
		return fmt.Errorf("update staff account: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update staff account: rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdatePassword replaces the stored bcrypt hash.
func (r *AccountRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	const query = `UPDATE staff_accounts SET password_hash = $1, last_updated = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, passwordHash, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update staff password: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update staff password: rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetActive toggles the login flag without touching profile fields.
func (r *AccountRepository) SetActive(ctx context.Context, id string, active bool) error {
	const query = `UPDATE staff_accounts SET is_active = $1, last_updated = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, active, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("set staff account active: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set staff account active: rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a staff account.
func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM staff_accounts WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete staff account: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete staff account: rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
