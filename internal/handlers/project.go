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

// ProjectHandler handles project endpoints, including the tasks nested under
// a project.
type ProjectHandler struct {
	projectService *services.ProjectService
	taskService    *services.TaskService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService, taskService *services.TaskService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		taskService:    taskService,
	}
}

// Create handles POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, "Invalid request body")
		return
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		errors.BadRequest(c, err.Error())
		return
	}
	deadline, err := utils.ParseDate(req.Deadline)
	if err != nil {
		errors.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Create(userID, services.CreateProjectInput{
		Name:      req.Name,
		Client:    req.Client,
		StartDate: startDate,
		Deadline:  deadline,
		Type:      req.Type,
	})
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrProjectNameRequired),
			stderrors.Is(err, services.ErrDeadlineBeforeStart):
			errors.BadRequest(c, err.Error())
		default:
			errors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// List handles GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		errors.Unauthorized(c, "")
		return
	}

	projects, err := h.projectService.List(userID)
	if err != nil {
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponses(projects))
}

// Get handles GET /projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// Update handles PUT /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		errors.InternalError(c, "")
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, "Invalid request body")
		return
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		errors.BadRequest(c, err.Error())
		return
	}
	deadline, err := utils.ParseDate(req.Deadline)
	if err != nil {
		errors.BadRequest(c, err.Error())
		return
	}

	updated, err := h.projectService.Update(project, services.UpdateProjectInput{
		Name:      req.Name,
		Client:    req.Client,
		StartDate: startDate,
		Deadline:  deadline,
	})
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrProjectNameRequired),
			stderrors.Is(err, services.ErrDeadlineBeforeStart):
			errors.BadRequest(c, err.Error())
		default:
			errors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(updated))
}

// Delete handles DELETE /projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		errors.InternalError(c, "")
		return
	}

	if err := h.projectService.Delete(project.ID); err != nil {
		errors.InternalError(c, "")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListTasks handles GET /projects/:id/tasks
func (h *ProjectHandler) ListTasks(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		errors.InternalError(c, "")
		return
	}

	tasks, err := h.projectService.Tasks(project.ID)
	if err != nil {
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponses(tasks))
}

// AddTask handles POST /projects/:id/tasks
func (h *ProjectHandler) AddTask(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		errors.InternalError(c, "")
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, "Invalid request body")
		return
	}

	deadline, err := utils.ParseDate(req.Deadline)
	if err != nil {
		errors.BadRequest(c, err.Error())
		return
	}

	task, err := h.taskService.Create(project.ID, services.CreateTaskInput{
		SkillID:        req.SkillID,
		EstimatedHours: req.EstimatedHours,
		Deadline:       deadline,
	})
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidHours) {
			errors.BadRequest(c, err.Error())
			return
		}
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}
