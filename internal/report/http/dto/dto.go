// Package dto provides data transfer objects for the report HTTP layer.
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthapp/healthtrack/internal/report/domain"
	"github.com/healthapp/healthtrack/internal/report/usecase"
)

// CreateDailyReportRequest represents the API request for a daily report.
type CreateDailyReportRequest struct {
	Water  int `json:"water"`
	Steps  int `json:"steps"`
	Sleep  int `json:"sleep"`
	Energy int `json:"energy"`
}

// UpdateDailyReportRequest represents the API request for replacing a daily
// report's values.
type UpdateDailyReportRequest struct {
	Water  int `json:"water"`
	Steps  int `json:"steps"`
	Sleep  int `json:"sleep"`
	Energy int `json:"energy"`
}

// CreateSportReportRequest represents the API request for a sport report.
type CreateSportReportRequest struct {
	ActivityType    string `json:"activity_type"`
	Calories        int    `json:"calories"`
	MinHeartBeat    int    `json:"min_heart_beat"`
	MaxHeartBeat    int    `json:"max_heart_beat"`
	DurationMinutes int    `json:"duration_minutes"`
}

// DailyReportResponse represents the API response for a daily report.
type DailyReportResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Water     int       `json:"water"`
	Steps     int       `json:"steps"`
	Sleep     int       `json:"sleep"`
	Energy    int       `json:"energy"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// SportReportResponse represents the API response for a sport report.
type SportReportResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	ActivityType    string    `json:"activity_type"`
	Calories        int       `json:"calories"`
	MinHeartBeat    int       `json:"min_heart_beat"`
	MaxHeartBeat    int       `json:"max_heart_beat"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToCreateDailyReportInput converts a request DTO to a use case input.
func ToCreateDailyReportInput(req CreateDailyReportRequest) usecase.CreateDailyReportInput {
	return usecase.CreateDailyReportInput{
		Water:  req.Water,
		Steps:  req.Steps,
		Sleep:  req.Sleep,
		Energy: req.Energy,
	}
}

// ToUpdateDailyReportInput converts a request DTO to a use case input.
func ToUpdateDailyReportInput(req UpdateDailyReportRequest) usecase.UpdateDailyReportInput {
	return usecase.UpdateDailyReportInput{
		Water:  req.Water,
		Steps:  req.Steps,
		Sleep:  req.Sleep,
		Energy: req.Energy,
	}
}

// ToCreateSportReportInput converts a request DTO to a use case input.
func ToCreateSportReportInput(req CreateSportReportRequest) usecase.CreateSportReportInput {
	return usecase.CreateSportReportInput{
		ActivityType:    req.ActivityType,
		Calories:        req.Calories,
		MinHeartBeat:    req.MinHeartBeat,
		MaxHeartBeat:    req.MaxHeartBeat,
		DurationMinutes: req.DurationMinutes,
	}
}

// ToDailyReportResponse converts a domain DailyReport to a response DTO.
func ToDailyReportResponse(report *domain.DailyReport) DailyReportResponse {
	return DailyReportResponse{
		ID:        report.ID,
		UserID:    report.UserID,
		Water:     report.Water,
		Steps:     report.Steps,
		Sleep:     report.Sleep,
		Energy:    report.Energy,
		Date:      report.Date,
		CreatedAt: report.CreatedAt,
	}
}

// ToDailyReportResponses converts a list of domain DailyReports.
func ToDailyReportResponses(reports []*domain.DailyReport) []DailyReportResponse {
	responses := make([]DailyReportResponse, 0, len(reports))
	for _, report := range reports {
		responses = append(responses, ToDailyReportResponse(report))
	}
	return responses
}

// ToSportReportResponse converts a domain SportReport to a response DTO.
func ToSportReportResponse(report *domain.SportReport) SportReportResponse {
	return SportReportResponse{
		ID:              report.ID,
		UserID:          report.UserID,
		ActivityType:    report.ActivityType,
		Calories:        report.Calories,
		MinHeartBeat:    report.MinHeartBeat,
		MaxHeartBeat:    report.MaxHeartBeat,
		DurationMinutes: int(report.Duration.Minutes()),
		CreatedAt:       report.CreatedAt,
	}
}

// ToSportReportResponses converts a list of domain SportReports.
func ToSportReportResponses(reports []*domain.SportReport) []SportReportResponse {
	responses := make([]SportReportResponse, 0, len(reports))
	for _, report := range reports {
		responses = append(responses, ToSportReportResponse(report))
	}
	return responses
}
