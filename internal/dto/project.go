package dto

import (
	"github.com/skillboard/skillboard-api/internal/models"
	"github.com/skillboard/skillboard-api/internal/utils"
)

// CreateProjectRequest represents the payload for creating a project. Dates
// are calendar dates, YYYY-MM-DD.
type CreateProjectRequest struct {
	Name      string `json:"name" binding:"required"`
	Client    string `json:"client"`
	StartDate string `json:"start_date" binding:"required"`
	Deadline  string `json:"deadline" binding:"required"`
	Type      string `json:"type" binding:"required"`
}

// UpdateProjectRequest represents the payload for updating a project.
type UpdateProjectRequest struct {
	Name      string `json:"name" binding:"required"`
	Client    string `json:"client"`
	StartDate string `json:"start_date" binding:"required"`
	Deadline  string `json:"deadline" binding:"required"`
}

// ProjectResponse represents a project in API responses.
type ProjectResponse struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Client    string `json:"client"`
	StartDate string `json:"start_date"`
	Deadline  string `json:"deadline"`
	Type      string `json:"type"`
}

// ToProjectResponse converts a Project model to a ProjectResponse.
func ToProjectResponse(project *models.Project) ProjectResponse {
	return ProjectResponse{
		ID:        project.ID,
		Name:      project.Name,
		Client:    project.Client,
		StartDate: utils.FormatDate(project.StartDate),
		Deadline:  utils.FormatDate(project.Deadline),
		Type:      project.Type,
	}
}

// ToProjectResponses converts a slice of projects.
func ToProjectResponses(projects []models.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = ToProjectResponse(&projects[i])
	}
	return responses
}
