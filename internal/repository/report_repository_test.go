package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/sjmp-dev/parish-admin-api/internal/models"
)

func TestReportRepositoryCountByType(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewReportRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM sacrament_requests WHERE request_type")).
		WithArgs("baptism").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountByType(context.Background(), "baptism")
	require.NoError(t, err)
	require.Equal(t, 7, count)
}

func TestReportRepositoryCountByStatusWithTypes(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewReportRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM sacrament_requests WHERE status")).
		WithArgs("pending", "baptism", "marriage").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountByStatus(context.Background(), models.StatusPending, "baptism", "marriage")
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestReportRepositoryPaidRevenue(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewReportRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(fee), 0) FROM sacrament_requests")).
		WithArgs("paid").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(6500.0))

	total, err := repo.PaidRevenue(context.Background())
	require.NoError(t, err)
	require.Equal(t, 6500.0, total)
}

func TestReportRepositoryMonthlyCounts(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewReportRepository(db)
	rows := sqlmock.NewRows([]string{"month", "count"}).AddRow(1, 2).AddRow(6, 5)
	mock.ExpectQuery("SELECT EXTRACT\\(MONTH FROM created_at\\)").
		WithArgs("baptism").
		WillReturnRows(rows)

	counts, err := repo.MonthlyCounts(context.Background(), "baptism")
	require.NoError(t, err)
	require.Len(t, counts, 2)
	require.Equal(t, 6, counts[1].Month)
	require.Equal(t, 5, counts[1].Count)
}

func TestReportRepositoryCountInMonth(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewReportRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM sacrament_requests")).
		WithArgs("marriage", 2026, 5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountInMonth(context.Background(), "marriage", 2026, 5)
	require.NoError(t, err)
	require.Equal(t, 4, count)
}

func TestReportRepositoryRecent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewReportRepository(db)
	rows := addRequestRow(requestRows(), "req-1", "baptism", "BAPT-1-a", "pending")
	mock.ExpectQuery("SELECT (.+) FROM sacrament_requests ORDER BY created_at DESC").
		WithArgs(10).
		WillReturnRows(rows)

	requests, err := repo.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, requests, 1)
}
