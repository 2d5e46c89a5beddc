package dto

import (
	"github.com/skillboard/skillboard-api/internal/models"
	"github.com/skillboard/skillboard-api/internal/services"
	"github.com/skillboard/skillboard-api/internal/utils"
)

// CreateEmployeeRequest represents the payload for creating an employee.
type CreateEmployeeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Role        string  `json:"role" binding:"required"`
	WeeklyHours float64 `json:"weekly_hours" binding:"required,gt=0"`
}

// UpdateEmployeeRequest represents the payload for updating an employee.
type UpdateEmployeeRequest struct {
	Name        string  `json:"name" binding:"required"`
	Role        string  `json:"role" binding:"required"`
	WeeklyHours float64 `json:"weekly_hours"`
}

// EmployeeResponse represents an employee in API responses.
type EmployeeResponse struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	WeeklyHours float64  `json:"weekly_hours"`
	Skills      []string `json:"skills"`
}

// ToEmployeeResponse converts an Employee model to an EmployeeResponse.
func ToEmployeeResponse(employee *models.Employee) EmployeeResponse {
	skills := make([]string, len(employee.Skills))
	for i, skill := range employee.Skills {
		skills[i] = skill.Name
	}
	return EmployeeResponse{
		ID:          employee.ID,
		Name:        employee.Name,
		Role:        employee.Role,
		WeeklyHours: employee.WeeklyHours,
		Skills:      skills,
	}
}

// ProfileTaskResponse is one assigned task inside an employee profile, with
// the latest review the employee received for it.
type ProfileTaskResponse struct {
	ID             uint64          `json:"id"`
	ProjectID      uint64          `json:"project_id"`
	ProjectName    string          `json:"project_name"`
	SkillName      string          `json:"skill_name"`
	EstimatedHours float64         `json:"estimated_hours"`
	StartDate      string          `json:"start_date,omitempty"`
	Deadline       string          `json:"deadline"`
	Completed      bool            `json:"completed"`
	LatestReview   *ReviewResponse `json:"latest_review"`
}

// ProfileResponse is the employee detail view.
type ProfileResponse struct {
	ID            uint64                `json:"id"`
	Name          string                `json:"name"`
	Role          string                `json:"role"`
	WeeklyHours   float64               `json:"weekly_hours"`
	CurrentLoad   float64               `json:"current_load"`
	LoadPercent   int                   `json:"load_percent"`
	AverageRating *float64              `json:"average_rating"`
	Skills        []string              `json:"skills"`
	Tasks         []ProfileTaskResponse `json:"tasks"`
}

// ToProfileResponse converts an assembled profile to its response form.
func ToProfileResponse(profile *services.Profile) ProfileResponse {
	skills := make([]string, len(profile.Employee.Skills))
	for i, skill := range profile.Employee.Skills {
		skills[i] = skill.Name
	}

	tasks := make([]ProfileTaskResponse, len(profile.Tasks))
	for i, pt := range profile.Tasks {
		task := ProfileTaskResponse{
			ID:             pt.Task.ID,
			ProjectID:      pt.Task.ProjectID,
			ProjectName:    pt.Task.Project.Name,
			SkillName:      pt.Task.Skill.Name,
			EstimatedHours: pt.Task.EstimatedHours,
			StartDate:      utils.FormatOptionalDate(pt.Task.StartDate),
			Deadline:       utils.FormatDate(pt.Task.Deadline),
			Completed:      pt.Task.Completed,
		}
		if pt.Review != nil {
			r := ToReviewResponse(pt.Review)
			task.LatestReview = &r
		}
		tasks[i] = task
	}

	return ProfileResponse{
		ID:            profile.Employee.ID,
		Name:          profile.Employee.Name,
		Role:          profile.Employee.Role,
		WeeklyHours:   profile.Employee.WeeklyHours,
		CurrentLoad:   profile.CurrentLoad,
		LoadPercent:   profile.LoadPercent,
		AverageRating: profile.AverageRating,
		Skills:        skills,
		Tasks:         tasks,
	}
}
