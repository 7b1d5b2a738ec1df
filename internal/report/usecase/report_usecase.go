// Package usecase implements the report business logic. It owns the
// one-daily-report-per-day rule and keeps every operation scoped to the
// authenticated user.
package usecase

import (
	"context"
	"errors"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/healthapp/healthtrack/internal/database"
	"github.com/healthapp/healthtrack/internal/report/domain"
	appValidation "github.com/healthapp/healthtrack/internal/validation"
)

// CreateDailyReportInput contains the input data for a daily report.
type CreateDailyReportInput struct {
	Water  int `json:"water"`
	Steps  int `json:"steps"`
	Sleep  int `json:"sleep"`
	Energy int `json:"energy"`
}

// UpdateDailyReportInput contains the replacement values for a daily report.
// The report's owner and calendar day are fixed at creation.
type UpdateDailyReportInput struct {
	Water  int `json:"water"`
	Steps  int `json:"steps"`
	Sleep  int `json:"sleep"`
	Energy int `json:"energy"`
}

// CreateSportReportInput contains the input data for a sport report.
type CreateSportReportInput struct {
	ActivityType    string `json:"activity_type"`
	Calories        int    `json:"calories"`
	MinHeartBeat    int    `json:"min_heart_beat"`
	MaxHeartBeat    int    `json:"max_heart_beat"`
	DurationMinutes int    `json:"duration_minutes"`
}

// UseCase defines the interface for report business logic operations.
type UseCase interface {
	CreateDailyReport(ctx context.Context, userID uuid.UUID, input CreateDailyReportInput) (*domain.DailyReport, error)
	ListDailyReports(ctx context.Context, userID uuid.UUID) ([]*domain.DailyReport, error)
	GetDailyReport(ctx context.Context, userID, reportID uuid.UUID) (*domain.DailyReport, error)
	UpdateDailyReport(ctx context.Context, userID, reportID uuid.UUID, input UpdateDailyReportInput) (*domain.DailyReport, error)
	DeleteDailyReport(ctx context.Context, userID, reportID uuid.UUID) error
	CreateSportReport(ctx context.Context, userID uuid.UUID, input CreateSportReportInput) (*domain.SportReport, error)
	ListSportReports(ctx context.Context, userID uuid.UUID) ([]*domain.SportReport, error)
	GetSportReport(ctx context.Context, userID, reportID uuid.UUID) (*domain.SportReport, error)
}

// DailyReportRepository defines daily report persistence operations.
type DailyReportRepository interface {
	Create(ctx context.Context, report *domain.DailyReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DailyReport, error)
	GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyReport, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.DailyReport, error)
	Update(ctx context.Context, report *domain.DailyReport) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SportReportRepository defines sport report persistence operations.
type SportReportRepository interface {
	Create(ctx context.Context, report *domain.SportReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SportReport, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SportReport, error)
}

// ReportUseCase handles report-related business logic.
type ReportUseCase struct {
	txManager database.TxManager
	dailyRepo DailyReportRepository
	sportRepo SportReportRepository
	now       func() time.Time
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(
	txManager database.TxManager,
	dailyRepo DailyReportRepository,
	sportRepo SportReportRepository,
) *ReportUseCase {
	return &ReportUseCase{
		txManager: txManager,
		dailyRepo: dailyRepo,
		sportRepo: sportRepo,
		now:       time.Now,
	}
}

func (uc *ReportUseCase) validateDailyReportInput(input CreateDailyReportInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Water,
			validation.Min(0).Error("water must not be negative"),
		),
		validation.Field(&input.Steps,
			validation.Min(0).Error("steps must not be negative"),
		),
		validation.Field(&input.Sleep,
			validation.Min(0).Error("sleep must not be negative"),
			validation.Max(24).Error("sleep must fit in one day"),
		),
		validation.Field(&input.Energy,
			validation.Min(1).Error("energy must be between 1 and 10"),
			validation.Max(10).Error("energy must be between 1 and 10"),
		),
	)
	return appValidation.WrapValidationError(err)
}

func (uc *ReportUseCase) validateUpdateDailyReportInput(input UpdateDailyReportInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Water,
			validation.Min(0).Error("water must not be negative"),
		),
		validation.Field(&input.Steps,
			validation.Min(0).Error("steps must not be negative"),
		),
		validation.Field(&input.Sleep,
			validation.Min(0).Error("sleep must not be negative"),
			validation.Max(24).Error("sleep must fit in one day"),
		),
		validation.Field(&input.Energy,
			validation.Min(1).Error("energy must be between 1 and 10"),
			validation.Max(10).Error("energy must be between 1 and 10"),
		),
	)
	return appValidation.WrapValidationError(err)
}

func (uc *ReportUseCase) validateSportReportInput(input CreateSportReportInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.ActivityType,
			validation.Required.Error("activity_type is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("activity_type must be between 1 and 255 characters"),
		),
		validation.Field(&input.Calories,
			validation.Min(0).Error("calories must not be negative"),
		),
		validation.Field(&input.MinHeartBeat,
			validation.Min(0).Error("min_heart_beat must not be negative"),
		),
		validation.Field(&input.MaxHeartBeat,
			validation.Min(0).Error("max_heart_beat must not be negative"),
		),
		validation.Field(&input.DurationMinutes,
			validation.Min(1).Error("duration_minutes must be positive"),
		),
	)
	if err := appValidation.WrapValidationError(err); err != nil {
		return err
	}
	if input.MinHeartBeat > input.MaxHeartBeat {
		return domain.ErrHeartBeatRange
	}
	return nil
}

// CreateDailyReport submits today's wellness summary for the user.
//
// The existence check and the insert run in one transaction, and the
// (user_id, report_date) unique index catches races the check misses. Either
// path surfaces as ErrDailyReportExists.
func (uc *ReportUseCase) CreateDailyReport(
	ctx context.Context,
	userID uuid.UUID,
	input CreateDailyReportInput,
) (*domain.DailyReport, error) {
	if err := uc.validateDailyReportInput(input); err != nil {
		return nil, err
	}

	day := uc.now().UTC().Truncate(24 * time.Hour)

	report := &domain.DailyReport{
		ID:     uuid.Must(uuid.NewV7()),
		UserID: userID,
		Water:  input.Water,
		Steps:  input.Steps,
		Sleep:  input.Sleep,
		Energy: input.Energy,
		Date:   day,
	}

	err := uc.txManager.WithTx(ctx, func(txCtx context.Context) error {
		_, err := uc.dailyRepo.GetByUserAndDate(txCtx, userID, day)
		if err == nil {
			return domain.ErrDailyReportExists
		}
		if !errors.Is(err, domain.ErrReportNotFound) {
			return err
		}

		return uc.dailyRepo.Create(txCtx, report)
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

// ListDailyReports returns the user's daily reports, most recent first.
func (uc *ReportUseCase) ListDailyReports(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.DailyReport, error) {
	return uc.dailyRepo.ListByUser(ctx, userID)
}

// GetDailyReport returns one daily report. A report belonging to another
// user is reported as not found rather than forbidden, so report IDs leak
// nothing about other accounts.
func (uc *ReportUseCase) GetDailyReport(
	ctx context.Context,
	userID, reportID uuid.UUID,
) (*domain.DailyReport, error) {
	report, err := uc.dailyRepo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.UserID != userID {
		return nil, domain.ErrReportNotFound
	}
	return report, nil
}

// UpdateDailyReport replaces the measured values of one of the user's daily
// reports. The ownership check and the write run in one transaction. A report
// belonging to another user is reported as not found.
func (uc *ReportUseCase) UpdateDailyReport(
	ctx context.Context,
	userID, reportID uuid.UUID,
	input UpdateDailyReportInput,
) (*domain.DailyReport, error) {
	if err := uc.validateUpdateDailyReportInput(input); err != nil {
		return nil, err
	}

	var updated *domain.DailyReport

	err := uc.txManager.WithTx(ctx, func(txCtx context.Context) error {
		report, err := uc.dailyRepo.GetByID(txCtx, reportID)
		if err != nil {
			return err
		}
		if report.UserID != userID {
			return domain.ErrReportNotFound
		}

		report.Water = input.Water
		report.Steps = input.Steps
		report.Sleep = input.Sleep
		report.Energy = input.Energy

		if err := uc.dailyRepo.Update(txCtx, report); err != nil {
			return err
		}

		updated = report
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteDailyReport removes one of the user's daily reports. The ownership
// check and the delete run in one transaction. A report belonging to another
// user is reported as not found.
func (uc *ReportUseCase) DeleteDailyReport(
	ctx context.Context,
	userID, reportID uuid.UUID,
) error {
	return uc.txManager.WithTx(ctx, func(txCtx context.Context) error {
		report, err := uc.dailyRepo.GetByID(txCtx, reportID)
		if err != nil {
			return err
		}
		if report.UserID != userID {
			return domain.ErrReportNotFound
		}

		return uc.dailyRepo.Delete(txCtx, reportID)
	})
}

// CreateSportReport records a workout session for the user.
func (uc *ReportUseCase) CreateSportReport(
	ctx context.Context,
	userID uuid.UUID,
	input CreateSportReportInput,
) (*domain.SportReport, error) {
	if err := uc.validateSportReportInput(input); err != nil {
		return nil, err
	}

	report := &domain.SportReport{
		ID:           uuid.Must(uuid.NewV7()),
		UserID:       userID,
		ActivityType: input.ActivityType,
		Calories:     input.Calories,
		MinHeartBeat: input.MinHeartBeat,
		MaxHeartBeat: input.MaxHeartBeat,
		Duration:     time.Duration(input.DurationMinutes) * time.Minute,
	}

	if err := uc.sportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

// ListSportReports returns the user's sport reports, most recent first.
func (uc *ReportUseCase) ListSportReports(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.SportReport, error) {
	return uc.sportRepo.ListByUser(ctx, userID)
}

// GetSportReport returns one sport report owned by the user.
func (uc *ReportUseCase) GetSportReport(
	ctx context.Context,
	userID, reportID uuid.UUID,
) (*domain.SportReport, error) {
	report, err := uc.sportRepo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.UserID != userID {
		return nil, domain.ErrReportNotFound
	}
	return report, nil
}
