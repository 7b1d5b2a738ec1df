// Package http provides HTTP handlers for report operations. All routes
// require an authenticated identity in the request context.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/healthapp/healthtrack/internal/auth/domain"
	authHTTP "github.com/healthapp/healthtrack/internal/auth/http"
	apperrors "github.com/healthapp/healthtrack/internal/errors"
	"github.com/healthapp/healthtrack/internal/httputil"
	"github.com/healthapp/healthtrack/internal/report/http/dto"
	"github.com/healthapp/healthtrack/internal/report/usecase"
)

// ReportHandler handles report-related HTTP requests.
type ReportHandler struct {
	reportUseCase usecase.UseCase
	logger        *slog.Logger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUseCase usecase.UseCase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
		logger:        logger,
	}
}

// identity pulls the authenticated identity from the request context.
func (h *ReportHandler) identity(c *gin.Context) (*authDomain.Identity, bool) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return nil, false
	}
	return identity, true
}

// CreateDailyReport submits today's wellness summary.
// POST /api/reports/daily - Returns 201 Created, or 409 if already submitted today.
func (h *ReportHandler) CreateDailyReport(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.CreateDailyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	report, err := h.reportUseCase.CreateDailyReport(
		c.Request.Context(), identity.UserID, dto.ToCreateDailyReportInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDailyReportResponse(report))
}

// ListDailyReports returns the authenticated user's daily reports.
// GET /api/reports/daily
func (h *ReportHandler) ListDailyReports(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	reports, err := h.reportUseCase.ListDailyReports(c.Request.Context(), identity.UserID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToDailyReportResponses(reports))
}

// GetDailyReport returns one of the authenticated user's daily reports.
// GET /api/reports/daily/:id
func (h *ReportHandler) GetDailyReport(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	report, err := h.reportUseCase.GetDailyReport(c.Request.Context(), identity.UserID, reportID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToDailyReportResponse(report))
}

// UpdateDailyReport replaces the values of one of the authenticated user's
// daily reports.
// PUT /api/reports/daily/:id
func (h *ReportHandler) UpdateDailyReport(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.UpdateDailyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	report, err := h.reportUseCase.UpdateDailyReport(
		c.Request.Context(), identity.UserID, reportID, dto.ToUpdateDailyReportInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToDailyReportResponse(report))
}

// DeleteDailyReport removes one of the authenticated user's daily reports.
// DELETE /api/reports/daily/:id - Returns 204 No Content.
func (h *ReportHandler) DeleteDailyReport(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.reportUseCase.DeleteDailyReport(c.Request.Context(), identity.UserID, reportID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateSportReport records a workout session.
// POST /api/reports/sport - Returns 201 Created.
func (h *ReportHandler) CreateSportReport(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.CreateSportReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	report, err := h.reportUseCase.CreateSportReport(
		c.Request.Context(), identity.UserID, dto.ToCreateSportReportInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSportReportResponse(report))
}

// ListSportReports returns the authenticated user's sport reports.
// GET /api/reports/sport
func (h *ReportHandler) ListSportReports(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	reports, err := h.reportUseCase.ListSportReports(c.Request.Context(), identity.UserID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToSportReportResponses(reports))
}

// GetSportReport returns one of the authenticated user's sport reports.
// GET /api/reports/sport/:id
func (h *ReportHandler) GetSportReport(c *gin.Context) {
	identity, ok := h.identity(c)
	if !ok {
		return
	}

	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	report, err := h.reportUseCase.GetSportReport(c.Request.Context(), identity.UserID, reportID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToSportReportResponse(report))
}
