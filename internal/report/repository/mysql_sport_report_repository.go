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

// MySQLSportReportRepository handles sport report persistence for MySQL
type MySQLSportReportRepository struct {
	db *sql.DB
}

// NewMySQLSportReportRepository creates a new MySQLSportReportRepository
func NewMySQLSportReportRepository(db *sql.DB) *MySQLSportReportRepository {
	return &MySQLSportReportRepository{
		db: db,
	}
}

// Create inserts a new sport report
func (r *MySQLSportReportRepository) Create(ctx context.Context, report *domain.SportReport) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO sport_reports (id, user_id, activity_type, calories, min_heart_beat, max_heart_beat, duration_seconds, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`

	idBytes, userIDBytes, err := marshalReportIDs(report.ID, report.UserID)
	if err != nil {
		return err
	}

	_, err = querier.ExecContext(ctx, query,
		idBytes, userIDBytes, report.ActivityType, report.Calories,
		report.MinHeartBeat, report.MaxHeartBeat, int64(report.Duration.Seconds()),
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create sport report")
	}
	return nil
}

// GetByID retrieves a sport report by ID
func (r *MySQLSportReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SportReport, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, activity_type, calories, min_heart_beat, max_heart_beat, duration_seconds, created_at
			  FROM sport_reports WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	return scanMySQLSportReport(querier.QueryRowContext(ctx, query, idBytes))
}

// ListByUser retrieves a user's sport reports ordered by most recent first
func (r *MySQLSportReportRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.SportReport, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, user_id, activity_type, calories, min_heart_beat, max_heart_beat, duration_seconds, created_at
			  FROM sport_reports WHERE user_id = ? ORDER BY created_at DESC`

	userIDBytes, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	rows, err := querier.QueryContext(ctx, query, userIDBytes)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list sport reports")
	}
	defer rows.Close()

	var reports []*domain.SportReport
	for rows.Next() {
		var report domain.SportReport
		var idBytes, userBytes []byte
		var durationSeconds int64
		if err := rows.Scan(
			&idBytes, &userBytes, &report.ActivityType, &report.Calories,
			&report.MinHeartBeat, &report.MaxHeartBeat, &durationSeconds, &report.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan sport report")
		}
		if err := unmarshalReportIDs(&report.ID, idBytes, &report.UserID, userBytes); err != nil {
			return nil, err
		}
		report.Duration = time.Duration(durationSeconds) * time.Second
		reports = append(reports, &report)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate sport reports")
	}

	return reports, nil
}

// scanMySQLSportReport scans a single sport report row, converting binary ids.
func scanMySQLSportReport(row *sql.Row) (*domain.SportReport, error) {
	var report domain.SportReport
	var idBytes, userBytes []byte
	var durationSeconds int64

	err := row.Scan(
		&idBytes, &userBytes, &report.ActivityType, &report.Calories,
		&report.MinHeartBeat, &report.MaxHeartBeat, &durationSeconds, &report.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get sport report")
	}

	if err := unmarshalReportIDs(&report.ID, idBytes, &report.UserID, userBytes); err != nil {
		return nil, err
	}
	report.Duration = time.Duration(durationSeconds) * time.Second
	return &report, nil
}
