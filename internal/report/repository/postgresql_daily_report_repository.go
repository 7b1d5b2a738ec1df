// Package repository provides data persistence implementations for report entities.
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

// PostgreSQLDailyReportRepository handles daily report persistence for PostgreSQL
type PostgreSQLDailyReportRepository struct {
	db *sql.DB
}

// NewPostgreSQLDailyReportRepository creates a new PostgreSQLDailyReportRepository
func NewPostgreSQLDailyReportRepository(db *sql.DB) *PostgreSQLDailyReportRepository {
	return &PostgreSQLDailyReportRepository{
		db: db,
	}
}

// Create inserts a new daily report. The (user_id, report_date) unique index
// backs the one-report-per-day rule at the storage level.
func (r *PostgreSQLDailyReportRepository) Create(ctx context.Context, report *domain.DailyReport) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO daily_reports (id, user_id, water, steps, sleep, energy, report_date, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())`

	_, err := querier.ExecContext(ctx, query,
		report.ID, report.UserID, report.Water, report.Steps, report.Sleep,
		report.Energy, report.Date,
	)
	if err != nil {
		if isPostgreSQLDuplicate(err) {
			return domain.ErrDailyReportExists
		}
		return apperrors.Wrap(err, "failed to create daily report")
	}
	return nil
}

// GetByID retrieves a daily report by ID
func (r *PostgreSQLDailyReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyReport, error) {
	var report domain.DailyReport
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, water, steps, sleep, energy, report_date, created_at
			  FROM daily_reports WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&report.ID, &report.UserID, &report.Water, &report.Steps, &report.Sleep,
		&report.Energy, &report.Date, &report.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get daily report by id")
	}

	return &report, nil
}

// GetByUserAndDate retrieves a user's daily report for a calendar day
func (r *PostgreSQLDailyReportRepository) GetByUserAndDate(
	ctx context.Context,
	userID uuid.UUID,
	date time.Time,
) (*domain.DailyReport, error) {
	var report domain.DailyReport
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, water, steps, sleep, energy, report_date, created_at
			  FROM daily_reports WHERE user_id = $1 AND report_date = $2`

	err := querier.QueryRowContext(ctx, query, userID, date).Scan(
		&report.ID, &report.UserID, &report.Water, &report.Steps, &report.Sleep,
		&report.Energy, &report.Date, &report.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get daily report by user and date")
	}

	return &report, nil
}

// Update rewrites the measured values of an existing daily report.
// The report's user and calendar day never change.
func (r *PostgreSQLDailyReportRepository) Update(ctx context.Context, report *domain.DailyReport) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE daily_reports SET water = $2, steps = $3, sleep = $4, energy = $5
			  WHERE id = $1`

	result, err := querier.ExecContext(ctx, query,
		report.ID, report.Water, report.Steps, report.Sleep, report.Energy,
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
func (r *PostgreSQLDailyReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM daily_reports WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
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
func (r *PostgreSQLDailyReportRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.DailyReport, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, water, steps, sleep, energy, report_date, created_at
			  FROM daily_reports WHERE user_id = $1 ORDER BY report_date DESC`

	rows, err := querier.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list daily reports")
	}
	defer rows.Close()

	var reports []*domain.DailyReport
	for rows.Next() {
		var report domain.DailyReport
		if err := rows.Scan(
			&report.ID, &report.UserID, &report.Water, &report.Steps, &report.Sleep,
			&report.Energy, &report.Date, &report.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan daily report")
		}
		reports = append(reports, &report)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate daily reports")
	}

	return reports, nil
}

// isPostgreSQLDuplicate checks if the error is a PostgreSQL unique constraint violation
func isPostgreSQLDuplicate(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
