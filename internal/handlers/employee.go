package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillboard/skillboard-api/internal/dto"
	"github.com/skillboard/skillboard-api/internal/errors"
	"github.com/skillboard/skillboard-api/internal/middleware"
	"github.com/skillboard/skillboard-api/internal/services"
	"github.com/skillboard/skillboard-api/internal/utils"
)

// EmployeeHandler handles employee endpoints.
type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// Create handles POST /employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.employeeService.Create(userID, services.CreateEmployeeInput{
		Name:        req.Name,
		Role:        req.Role,
		WeeklyHours: req.WeeklyHours,
	})
	if err != nil {
		if stderrors.Is(err, services.ErrEmployeeNameRequired) {
			errors.BadRequest(c, err.Error())
			return
		}
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// List handles GET /employees
func (h *EmployeeHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	rows, err := h.employeeService.List(userID)
	if err != nil {
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// Get handles GET /employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	employee, ok := middleware.GetEmployee(c)
	if !ok {
		errors.InternalError(c, "")
		return
	}

	profile, err := h.employeeService.Profile(employee)
	if err != nil {
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// Update handles PUT /employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	employee, ok := middleware.GetEmployee(c)
	if !ok {
		errors.InternalError(c, "")
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.employeeService.Update(employee, services.UpdateEmployeeInput{
		Name:        req.Name,
		Role:        req.Role,
		WeeklyHours: req.WeeklyHours,
	})
	if err != nil {
		if stderrors.Is(err, services.ErrEmployeeNameRequired) {
			errors.BadRequest(c, err.Error())
			return
		}
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(updated))
}

// Delete handles DELETE /employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	employee, ok := middleware.GetEmployee(c)
	if !ok {
		errors.InternalError(c, "")
		return
	}

	if err := h.employeeService.Delete(employee.ID); err != nil {
		errors.InternalError(c, "")
		return
	}

	c.Status(http.StatusNoContent)
}

// Release handles PATCH /employees/:id/release
func (h *EmployeeHandler) Release(c *gin.Context) {
	employee, ok := middleware.GetEmployee(c)
	if !ok {
		errors.InternalError(c, "")
		return
	}

	if err := h.employeeService.Release(employee.ID); err != nil {
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"released": true})
}

// Reviews handles GET /employees/:id/reviews
func (h *EmployeeHandler) Reviews(c *gin.Context) {
	employee, ok := middleware.GetEmployee(c)
	if !ok {
		errors.InternalError(c, "")
		return
	}

	params := utils.GetPaginationParams(c)
	reviews, total, err := h.employeeService.Reviews(employee.ID, params.Limit, params.Offset)
	if err != nil {
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": dto.ToReviewResponses(reviews),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// SuggestedTasks handles GET /employees/:id/suggested-tasks
func (h *EmployeeHandler) SuggestedTasks(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	employee, ok := middleware.GetEmployee(c)
	if !ok {
		errors.InternalError(c, "")
		return
	}

	tasks, err := h.employeeService.SuggestedTasks(userID, employee.ID)
	if err != nil {
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponses(tasks))
}
