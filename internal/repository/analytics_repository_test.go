package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestAnalyticsRepository_TotalProjects(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "projects" WHERE user_id = \$1`).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.TotalProjects(7)
	require.NoError(t, err)
	require.Equal(t, int64(3), count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_LoadRowsScansCapacityAndLoad(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAnalyticsRepository(db)

	rows := sqlmock.NewRows([]string{"employee_id", "capacity", "current_load"}).
		AddRow(1, 40.0, 35.0).
		AddRow(2, 40.0, 0.0)

	mock.ExpectQuery(`FROM employees e`).
		WithArgs(false, uint64(7)).
		WillReturnRows(rows)

	loads, err := repo.LoadRows(7)
	require.NoError(t, err)
	require.Len(t, loads, 2)
	require.Equal(t, uint64(1), loads[0].EmployeeID)
	require.Equal(t, 40.0, loads[0].Capacity)
	require.Equal(t, 35.0, loads[0].Load)
	require.Equal(t, 0.0, loads[1].Load)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_ProjectsDueBefore(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAnalyticsRepository(db)

	cutoff := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "projects" WHERE user_id = \$1 AND deadline <= \$2`).
		WithArgs(uint64(7), cutoff).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.ProjectsDueBefore(7, cutoff)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
	require.NoError(t, mock.ExpectationsWereMet())
}
