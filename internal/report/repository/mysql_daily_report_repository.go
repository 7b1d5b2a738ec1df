package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/healthapp/healthtrack/internal/database"
	apperrors "github.com/healthapp/healthtrack/internal/errors"
	"github.com/healthapp/healthtrack/internal/report/domain"
)

// MySQLDailyReportRepository handles daily report persistence for MySQL
type MySQLDailyReportRepository struct {
	db *sql.DB
}

// NewMySQLDailyReportRepository creates a new MySQLDailyReportRepository
func NewMySQLDailyReportRepository(db *sql.DB) *MySQLDailyReportRepository {
	return &MySQLDailyReportRepository{
		db: db,
	}
}

// Create inserts a new daily report
func (r *MySQLDailyReportRepository) Create(ctx context.Context, report *domain.DailyReport) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO daily_reports (id, user_id, water, steps, sleep, energy, report_date, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`

	idBytes, userIDBytes, err := marshalReportIDs(report.ID, report.UserID)
	if err != nil {
		return err
	}

	_, err = querier.ExecContext(ctx, query,
		idBytes, userIDBytes, report.Water, report.Steps, report.Sleep,
		report.Energy, report.Date,
	)
	if err != nil {
		if isMySQLDuplicate(err) {
			return domain.ErrDailyReportExists
		}
		return apperrors.Wrap(err, "failed to create daily report")
	}
	return nil
}

// GetByID retrieves a daily report by ID
func (r *MySQLDailyReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyReport, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, water, steps, sleep, energy, report_date, created_at
			  FROM daily_reports WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	return scanMySQLDailyReport(querier.QueryRowContext(ctx, query, idBytes))
}

// GetByUserAndDate retrieves a user's daily report for a calendar day
func (r *MySQLDailyReportRepository) GetByUserAndDate(
	ctx context.Context,
	userID uuid.UUID,
	date time.Time,
) (*domain.DailyReport, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, water, steps, sleep, energy, report_date, created_at
			  FROM daily_reports WHERE user_id = ? AND report_date = ?`

	userIDBytes, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	return scanMySQLDailyReport(querier.QueryRowContext(ctx, query, userIDBytes, date))
}

// Update rewrites the measured values of an existing daily report.
// The report's user and calendar day never change.
func (r *MySQLDailyReportRepository) Update(ctx context.Context, report *domain.DailyReport) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE daily_reports SET water = ?, steps = ?, sleep = ?, energy = ?
			  WHERE id = ?`

	idBytes, err := report.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query,
		report.Water, report.Steps, report.Sleep, report.Energy, idBytes,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update daily report")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrReportNotFound
	}

	return nil
}

// Delete removes a daily report by ID
func (r *MySQLDailyReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM daily_reports WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, idBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete daily report")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrReportNotFound
	}

	return nil
}

// ListByUser retrieves a user's daily reports ordered by most recent first
func (r *MySQLDailyReportRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.DailyReport, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, water, steps, sleep, energy, report_date, created_at
			  FROM daily_reports WHERE user_id = ? ORDER BY report_date DESC`

	userIDBytes, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	rows, err := querier.QueryContext(ctx, query, userIDBytes)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list daily reports")
	}
	defer rows.Close()

	var reports []*domain.DailyReport
	for rows.Next() {
		var report domain.DailyReport
		var idBytes, userBytes []byte
		if err := rows.Scan(
			&idBytes, &userBytes, &report.Water, &report.Steps, &report.Sleep,
			&report.Energy, &report.Date, &report.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan daily report")
		}
		if err := unmarshalReportIDs(&report.ID, idBytes, &report.UserID, userBytes); err != nil {
			return nil, err
		}
		reports = append(reports, &report)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate daily reports")
	}

	return reports, nil
}

// scanMySQLDailyReport scans a single daily report row, converting binary ids.
func scanMySQLDailyReport(row *sql.Row) (*domain.DailyReport, error) {
	var report domain.DailyReport
	var idBytes, userBytes []byte

	err := row.Scan(
		&idBytes, &userBytes, &report.Water, &report.Steps, &report.Sleep,
		&report.Energy, &report.Date, &report.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get daily report")
	}

	if err := unmarshalReportIDs(&report.ID, idBytes, &report.UserID, userBytes); err != nil {
		return nil, err
	}
	return &report, nil
}

// marshalReportIDs converts report and user UUIDs to BINARY(16) form.
func marshalReportIDs(id, userID uuid.UUID) ([]byte, []byte, error) {
	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, nil, apperrors.Wrap(err, "failed to marshal UUID")
	}
	userIDBytes, err := userID.MarshalBinary()
	if err != nil {
		return nil, nil, apperrors.Wrap(err, "failed to marshal UUID")
	}
	return idBytes, userIDBytes, nil
}

// unmarshalReportIDs converts BINARY(16) columns back to UUIDs.
func unmarshalReportIDs(id *uuid.UUID, idBytes []byte, userID *uuid.UUID, userBytes []byte) error {
	if err := id.UnmarshalBinary(idBytes); err != nil {
		return apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if err := userID.UnmarshalBinary(userBytes); err != nil {
		return apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	return nil
}

// isMySQLDuplicate checks if the error is a MySQL unique constraint violation
func isMySQLDuplicate(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}
