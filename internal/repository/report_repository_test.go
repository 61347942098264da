package repository_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"health-wallet/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportColumns = []string{"uuid", "owner_uuid", "file_name", "storage_path", "mime_type", "report_type", "date", "created_at"}

func TestReportRepository_ListByOwner(t *testing.T) {
	db, mockSQL := newMockDB(t)
	repo := repository.NewReportRepository(db)
	ctx := context.Background()

	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		date       string
		reportType string
		pattern    string
		args       []driver.Value
	}{
		{
			name:    "No filters",
			pattern: `WHERE owner_uuid = \$1\s+ORDER BY date DESC`,
			args:    []driver.Value{"user1"},
		},
		{
			name:    "Date only",
			date:    "2024-01-10",
			pattern: `AND date = \$2 ORDER BY date DESC`,
			args:    []driver.Value{"user1", "2024-01-10"},
		},
		{
			name:       "Report type only",
			reportType: "Blood Test",
			pattern:    `AND report_type = \$2 ORDER BY date DESC`,
			args:       []driver.Value{"user1", "Blood Test"},
		},
		{
			name:       "Date and report type",
			date:       "2024-01-10",
			reportType: "Blood Test",
			pattern:    `AND date = \$2 AND report_type = \$3 ORDER BY date DESC`,
			args:       []driver.Value{"user1", "2024-01-10", "Blood Test"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := sqlmock.NewRows(reportColumns).
				AddRow("report1", "user1", "analysis.pdf", "users/user1/reports/analysis-abc12345.pdf",
					"application/pdf", "Blood Test", date, time.Now())

			mockSQL.ExpectQuery(tt.pattern).
				WithArgs(tt.args...).
				WillReturnRows(rows)

			reports, err := repo.ListByOwner(ctx, db, "user1", tt.date, tt.reportType)

			require.NoError(t, err)
			require.Len(t, reports, 1)
			assert.Equal(t, "report1", reports[0].UUID)
			assert.Equal(t, "Blood Test", reports[0].ReportType)
		})
	}

	assert.NoError(t, mockSQL.ExpectationsWereMet())
}

func TestReportRepository_ListByOwner_DBError(t *testing.T) {
	db, mockSQL := newMockDB(t)
	repo := repository.NewReportRepository(db)
	ctx := context.Background()

	mockSQL.ExpectQuery(`WHERE owner_uuid = \$1`).
		WithArgs("user1").
		WillReturnError(errors.New("db error"))

	_, err := repo.ListByOwner(ctx, db, "user1", "", "")

	require.Error(t, err)
}
