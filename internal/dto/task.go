package dto

import (
	"github.com/skillboard/skillboard-api/internal/models"
	"github.com/skillboard/skillboard-api/internal/utils"
)

// CreateTaskRequest represents the payload for adding a task to a project.
type CreateTaskRequest struct {
	SkillID        uint64  `json:"skill_id" binding:"required"`
	EstimatedHours float64 `json:"estimated_hours" binding:"required,gt=0"`
	Deadline       string  `json:"deadline" binding:"required"`
}

// CreateStandaloneTaskRequest is the top-level task creation payload, naming
// its project in the body.
type CreateStandaloneTaskRequest struct {
	ProjectID      uint64  `json:"project_id" binding:"required"`
	SkillID        uint64  `json:"skill_id" binding:"required"`
	EstimatedHours float64 `json:"estimated_hours" binding:"required,gt=0"`
	Deadline       string  `json:"deadline" binding:"required"`
}

// UpdateTaskRequest represents the payload for updating a task.
type UpdateTaskRequest struct {
	EstimatedHours float64 `json:"estimated_hours" binding:"required,gt=0"`
	Deadline       string  `json:"deadline" binding:"required"`
	StartDate      string  `json:"start_date"`
}

// AssignTaskRequest represents the assignment payload. With more than one
// employee, hours must carry one entry per employee.
type AssignTaskRequest struct {
	EmployeeIDs []uint64  `json:"employee_ids" binding:"required"`
	Hours       []float64 `json:"hours"`
	StartDate   string    `json:"start_date"`
}

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID             uint64  `json:"id"`
	ProjectID      uint64  `json:"project_id"`
	SkillID        uint64  `json:"skill_id"`
	SkillName      string  `json:"skill_name"`
	EstimatedHours float64 `json:"estimated_hours"`
	StartDate      string  `json:"start_date,omitempty"`
	Deadline       string  `json:"deadline"`
	EmployeeID     *uint64 `json:"employee_id"`
	EmployeeName   string  `json:"employee_name,omitempty"`
	Completed      bool    `json:"completed"`
}

// ToTaskResponse converts a Task model to a TaskResponse. Skill and Employee
// names come through when the relations are preloaded.
func ToTaskResponse(task *models.Task) TaskResponse {
	response := TaskResponse{
		ID:             task.ID,
		ProjectID:      task.ProjectID,
		SkillID:        task.SkillID,
		SkillName:      task.Skill.Name,
		EstimatedHours: task.EstimatedHours,
		StartDate:      utils.FormatOptionalDate(task.StartDate),
		Deadline:       utils.FormatDate(task.Deadline),
		EmployeeID:     task.EmployeeID,
		Completed:      task.Completed,
	}
	if task.Employee != nil {
		response.EmployeeName = task.Employee.Name
	}
	return response
}

// ToTaskResponses converts a slice of tasks.
func ToTaskResponses(tasks []models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = ToTaskResponse(&tasks[i])
	}
	return responses
}
