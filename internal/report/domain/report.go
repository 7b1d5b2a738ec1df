// Package domain defines the report domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthapp/healthtrack/internal/errors"
)

// DailyReport is a user's wellness summary for one calendar day.
// A user may have at most one daily report per UTC day.
type DailyReport struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Water     int // glasses of water
	Steps     int
	Sleep     int // hours of sleep
	Energy    int // self-reported energy level 1-10
	Date      time.Time
	CreatedAt time.Time
}

// SportReport records a single workout session.
type SportReport struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ActivityType string
	Calories     int
	MinHeartBeat int
	MaxHeartBeat int
	Duration     time.Duration
	CreatedAt    time.Time
}

// Domain-specific errors for report operations.
var (
	// ErrReportNotFound indicates the requested report does not exist.
	ErrReportNotFound = errors.Wrap(errors.ErrNotFound, "report not found")

	// ErrDailyReportExists indicates a daily report was already submitted for that day.
	ErrDailyReportExists = errors.Wrap(errors.ErrConflict, "daily report already submitted for this day")

	// ErrHeartBeatRange indicates min heart beat exceeds max heart beat.
	ErrHeartBeatRange = errors.Wrap(errors.ErrInvalidInput, "min heart beat must not exceed max heart beat")
)
