package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillboard/skillboard-api/internal/errors"
	"github.com/skillboard/skillboard-api/internal/middleware"
	"github.com/skillboard/skillboard-api/internal/services"
)

// StatsHandler handles the aggregate analytics endpoints.
type StatsHandler struct {
	analyticsService *services.AnalyticsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(analyticsService *services.AnalyticsService) *StatsHandler {
	return &StatsHandler{analyticsService: analyticsService}
}

// Summary handles GET /stats/summary
func (h *StatsHandler) Summary(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	summary, err := h.analyticsService.Summary(userID)
	if err != nil {
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Bench handles GET /stats/bench
func (h *StatsHandler) Bench(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	stats, err := h.analyticsService.Bench(userID)
	if err != nil {
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Availability handles GET /stats/availability
func (h *StatsHandler) Availability(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	stats, err := h.analyticsService.Availability(userID)
	if err != nil {
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Projects handles GET /stats/projects
func (h *StatsHandler) Projects(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	stats, err := h.analyticsService.ProjectStats(userID)
	if err != nil {
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// TaskCompletion handles GET /stats/task-completion
func (h *StatsHandler) TaskCompletion(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	stats, err := h.analyticsService.TaskCompletion(userID)
	if err != nil {
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Roles handles GET /stats/role-staffing
func (h *StatsHandler) Roles(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	stats, err := h.analyticsService.RoleStaffing(userID)
	if err != nil {
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Dashboard handles GET /stats/dashboard
func (h *StatsHandler) Dashboard(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	dashboard, err := h.analyticsService.Dashboard(userID)
	if err != nil {
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
