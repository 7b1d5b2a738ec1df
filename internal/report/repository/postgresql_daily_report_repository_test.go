package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthapp/healthtrack/internal/report/domain"
)

func newDailyReportFixture() *domain.DailyReport {
	return &domain.DailyReport{
		ID:     uuid.Must(uuid.NewV7()),
		UserID: uuid.Must(uuid.NewV7()),
		Water:  8,
		Steps:  10000,
		Sleep:  7,
		Energy: 8,
		Date:   time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC),
	}
}

func dailyReportRows(report *domain.DailyReport) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "water", "steps", "sleep", "energy", "report_date", "created_at",
	}).AddRow(
		report.ID, report.UserID, report.Water, report.Steps, report.Sleep,
		report.Energy, report.Date, time.Now().UTC(),
	)
}

func TestPostgreSQLDailyReportRepository_Create(t *testing.T) {
	t.Run("successful insert", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		report := newDailyReportFixture()
		dbMock.ExpectExec("INSERT INTO daily_reports").
			WithArgs(report.ID, report.UserID, report.Water, report.Steps,
				report.Sleep, report.Energy, report.Date).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPostgreSQLDailyReportRepository(db)
		require.NoError(t, repo.Create(context.Background(), report))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("same-day duplicate maps to conflict", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		dbMock.ExpectExec("INSERT INTO daily_reports").
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "daily_reports_user_id_report_date_key"`))

		repo := NewPostgreSQLDailyReportRepository(db)
		err = repo.Create(context.Background(), newDailyReportFixture())
		assert.ErrorIs(t, err, domain.ErrDailyReportExists)
	})
}

func TestPostgreSQLDailyReportRepository_GetByUserAndDate(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		report := newDailyReportFixture()
		dbMock.ExpectQuery("SELECT (.+) FROM daily_reports WHERE user_id").
			WithArgs(report.UserID, report.Date).
			WillReturnRows(dailyReportRows(report))

		repo := NewPostgreSQLDailyReportRepository(db)
		got, err := repo.GetByUserAndDate(context.Background(), report.UserID, report.Date)
		require.NoError(t, err)
		assert.Equal(t, report.ID, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		dbMock.ExpectQuery("SELECT (.+) FROM daily_reports WHERE user_id").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		repo := NewPostgreSQLDailyReportRepository(db)
		_, err = repo.GetByUserAndDate(context.Background(), uuid.Must(uuid.NewV7()), time.Now().UTC())
		assert.ErrorIs(t, err, domain.ErrReportNotFound)
	})
}

func TestPostgreSQLDailyReportRepository_Update(t *testing.T) {
	t.Run("successful update", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		report := newDailyReportFixture()
		dbMock.ExpectExec("UPDATE daily_reports SET").
			WithArgs(report.ID, report.Water, report.Steps, report.Sleep, report.Energy).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPostgreSQLDailyReportRepository(db)
		require.NoError(t, repo.Update(context.Background(), report))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		dbMock.ExpectExec("UPDATE daily_reports SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewPostgreSQLDailyReportRepository(db)
		err = repo.Update(context.Background(), newDailyReportFixture())
		assert.ErrorIs(t, err, domain.ErrReportNotFound)
	})
}

func TestPostgreSQLDailyReportRepository_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		id := uuid.Must(uuid.NewV7())
		dbMock.ExpectExec("DELETE FROM daily_reports WHERE id").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPostgreSQLDailyReportRepository(db)
		require.NoError(t, repo.Delete(context.Background(), id))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		dbMock.ExpectExec("DELETE FROM daily_reports WHERE id").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewPostgreSQLDailyReportRepository(db)
		err = repo.Delete(context.Background(), uuid.Must(uuid.NewV7()))
		assert.ErrorIs(t, err, domain.ErrReportNotFound)
	})
}

func TestPostgreSQLDailyReportRepository_ListByUser(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	report := newDailyReportFixture()
	second := newDailyReportFixture()
	second.UserID = report.UserID

	rows := dailyReportRows(report).AddRow(
		second.ID, second.UserID, second.Water, second.Steps, second.Sleep,
		second.Energy, second.Date, time.Now().UTC(),
	)
	dbMock.ExpectQuery("SELECT (.+) FROM daily_reports WHERE user_id").
		WithArgs(report.UserID).
		WillReturnRows(rows)

	repo := NewPostgreSQLDailyReportRepository(db)
	reports, err := repo.ListByUser(context.Background(), report.UserID)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, report.ID, reports[0].ID)
}

func TestPostgreSQLSportReportRepository(t *testing.T) {
	t.Run("create stores duration in seconds", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		report := &domain.SportReport{
			ID:           uuid.Must(uuid.NewV7()),
			UserID:       uuid.Must(uuid.NewV7()),
			ActivityType: "running",
			Calories:     450,
			MinHeartBeat: 90,
			MaxHeartBeat: 170,
			Duration:     45 * time.Minute,
		}

		dbMock.ExpectExec("INSERT INTO sport_reports").
			WithArgs(report.ID, report.UserID, report.ActivityType, report.Calories,
				report.MinHeartBeat, report.MaxHeartBeat, int64(2700)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPostgreSQLSportReportRepository(db)
		require.NoError(t, repo.Create(context.Background(), report))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("get restores duration from seconds", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		id := uuid.Must(uuid.NewV7())
		userID := uuid.Must(uuid.NewV7())
		rows := sqlmock.NewRows([]string{
			"id", "user_id", "activity_type", "calories",
			"min_heart_beat", "max_heart_beat", "duration_seconds", "created_at",
		}).AddRow(id, userID, "cycling", 600, 85, 160, int64(3600), time.Now().UTC())

		dbMock.ExpectQuery("SELECT (.+) FROM sport_reports WHERE id").
			WithArgs(id).
			WillReturnRows(rows)

		repo := NewPostgreSQLSportReportRepository(db)
		got, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, time.Hour, got.Duration)
		assert.Equal(t, "cycling", got.ActivityType)
	})
}
