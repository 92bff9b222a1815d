package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/sjmp-dev/parish-admin-api/internal/models"
)

func accountRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "username", "password_hash", "role", "position", "department",
		"address", "contact", "notes", "is_active", "created_at", "last_updated",
	})
}

func TestAccountRepositoryFindByUsername(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewAccountRepository(db)
	now := time.Now().UTC()
	rows := accountRows().AddRow(
		"acc-1", "Maria Santos", "maria", "$2a$10$hash", models.RoleAdmin,
		"Secretary", "Office", "", "", "", true, now, now,
	)
	mock.ExpectQuery("SELECT (.+) FROM staff_accounts WHERE LOWER\\(username\\)").
		WithArgs("MARIA").
		WillReturnRows(rows)

	account, err := repo.FindByUsername(context.Background(), "MARIA")
	require.NoError(t, err)
	require.Equal(t, "acc-1", account.ID)
	require.True(t, account.IsActive)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepositoryFindByUsernameNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewAccountRepository(db)
	mock.ExpectQuery("SELECT (.+) FROM staff_accounts WHERE LOWER\\(username\\)").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestAccountRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewAccountRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO staff_accounts")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	account := &models.StaffAccount{
		Name:         "Maria Santos",
		Username:     "maria",
		PasswordHash: "$2a$10$hash",
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	require.NoError(t, repo.Create(context.Background(), account))
	require.NotEmpty(t, account.ID)
	require.False(t, account.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepositorySetActiveMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewAccountRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE staff_accounts SET is_active")).
		WithArgs(false, sqlmock.AnyArg(), "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetActive(context.Background(), "missing", false)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestAccountRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewAccountRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM staff_accounts")).
		WithArgs("acc-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "acc-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
