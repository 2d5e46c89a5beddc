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

// TaskHandler handles task endpoints.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// Create handles POST /tasks
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	var req dto.CreateStandaloneTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, "Invalid request body")
		return
	}

	deadline, err := utils.ParseDate(req.Deadline)
	if err != nil {
		errors.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.CreateForUser(userID, req.ProjectID, services.CreateTaskInput{
		SkillID:        req.SkillID,
		EstimatedHours: req.EstimatedHours,
		Deadline:       deadline,
	})
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrProjectNotFound):
			errors.NotFound(c, "Project not found")
		case stderrors.Is(err, services.ErrProjectAccessDenied):
			errors.Forbidden(c, "")
		case stderrors.Is(err, services.ErrInvalidHours):
			errors.BadRequest(c, err.Error())
		default:
			errors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

// Get handles GET /tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

// Update handles PUT /tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		errors.InternalError(c, "")
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, "Invalid request body")
		return
	}

	deadline, err := utils.ParseDate(req.Deadline)
	if err != nil {
		errors.BadRequest(c, err.Error())
		return
	}
	startDate, err := utils.ParseOptionalDate(req.StartDate)
	if err != nil {
		errors.BadRequest(c, err.Error())
		return
	}

	updated, err := h.taskService.Update(task, services.UpdateTaskInput{
		EstimatedHours: req.EstimatedHours,
		Deadline:       deadline,
		StartDate:      startDate,
	})
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidHours) {
			errors.BadRequest(c, err.Error())
			return
		}
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(updated))
}

// Delete handles DELETE /tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		errors.InternalError(c, "")
		return
	}

	if err := h.taskService.Delete(task.ID); err != nil {
		errors.InternalError(c, "")
		return
	}

	c.Status(http.StatusNoContent)
}

// Assign handles POST /tasks/:id/assign
func (h *TaskHandler) Assign(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	task, ok := middleware.GetTask(c)
	if !ok {
		errors.InternalError(c, "")
		return
	}

	var req dto.AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, "Invalid request body")
		return
	}

	startDate, err := utils.ParseOptionalDate(req.StartDate)
	if err != nil {
		errors.BadRequest(c, err.Error())
		return
	}

	err = h.taskService.Assign(userID, task, services.AssignInput{
		EmployeeIDs: req.EmployeeIDs,
		Hours:       req.Hours,
		StartDate:   startDate,
	})
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrNoEmployeesGiven),
			stderrors.Is(err, services.ErrHoursMismatch):
			errors.BadRequest(c, err.Error())
		case stderrors.Is(err, services.ErrEmployeeNotFound):
			errors.NotFound(c, err.Error())
		default:
			errors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"assigned": true})
}

// Unassign handles PATCH /tasks/:id/unassign
func (h *TaskHandler) Unassign(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		errors.InternalError(c, "")
		return
	}

	if err := h.taskService.Unassign(task.ID); err != nil {
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"unassigned": true})
}

// ToggleCompletion handles PATCH /tasks/:id/toggle-completion
func (h *TaskHandler) ToggleCompletion(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		errors.InternalError(c, "")
		return
	}

	updated, err := h.taskService.ToggleCompletion(task)
	if err != nil {
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(updated))
}

// Candidates handles GET /tasks/:id/candidates
func (h *TaskHandler) Candidates(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	task, ok := middleware.GetTask(c)
	if !ok {
		errors.InternalError(c, "")
		return
	}

	list, err := h.taskService.Candidates(userID, task)
	if err != nil {
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, list)
}
