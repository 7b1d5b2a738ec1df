package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/healthapp/healthtrack/internal/database"
	apperrors "github.com/healthapp/healthtrack/internal/errors"
	"github.com/healthapp/healthtrack/internal/report/domain"
)

// PostgreSQLSportReportRepository handles sport report persistence for PostgreSQL
type PostgreSQLSportReportRepository struct {
	db *sql.DB
}

// NewPostgreSQLSportReportRepository creates a new PostgreSQLSportReportRepository
func NewPostgreSQLSportReportRepository(db *sql.DB) *PostgreSQLSportReportRepository {
	return &PostgreSQLSportReportRepository{
		db: db,
	}
}

// Create inserts a new sport report. Duration is stored in whole seconds.
func (r *PostgreSQLSportReportRepository) Create(ctx context.Context, report *domain.SportReport) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO sport_reports (id, user_id, activity_type, calories, min_heart_beat, max_heart_beat, duration_seconds, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())`

	_, err := querier.ExecContext(ctx, query,
		report.ID, report.UserID, report.ActivityType, report.Calories,
		report.MinHeartBeat, report.MaxHeartBeat, int64(report.Duration.Seconds()),
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create sport report")
	}
	return nil
}

// GetByID retrieves a sport report by ID
func (r *PostgreSQLSportReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SportReport, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, activity_type, calories, min_heart_beat, max_heart_beat, duration_seconds, created_at
			  FROM sport_reports WHERE id = $1`

	return scanSportReport(querier.QueryRowContext(ctx, query, id))
}

// ListByUser retrieves a user's sport reports ordered by most recent first
func (r *PostgreSQLSportReportRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.SportReport, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, activity_type, calories, min_heart_beat, max_heart_beat, duration_seconds, created_at
			  FROM sport_reports WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := querier.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list sport reports")
	}
	defer rows.Close()

	var reports []*domain.SportReport
	for rows.Next() {
		var report domain.SportReport
		var durationSeconds int64
		if err := rows.Scan(
			&report.ID, &report.UserID, &report.ActivityType, &report.Calories,
			&report.MinHeartBeat, &report.MaxHeartBeat, &durationSeconds, &report.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan sport report")
		}
		report.Duration = time.Duration(durationSeconds) * time.Second
		reports = append(reports, &report)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate sport reports")
	}

	return reports, nil
}

// scanSportReport scans a single sport report row.
func scanSportReport(row *sql.Row) (*domain.SportReport, error) {
	var report domain.SportReport
	var durationSeconds int64

	err := row.Scan(
		&report.ID, &report.UserID, &report.ActivityType, &report.Calories,
		&report.MinHeartBeat, &report.MaxHeartBeat, &durationSeconds, &report.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get sport report")
	}

	report.Duration = time.Duration(durationSeconds) * time.Second
	return &report, nil
}
