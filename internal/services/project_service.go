package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/skillboard/skillboard-api/internal/constants"
	"github.com/skillboard/skillboard-api/internal/models"
	"github.com/skillboard/skillboard-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectNameRequired = errors.New("project name is required")
	ErrDeadlineBeforeStart = errors.New("deadline is before the start date")
)

// supervisingTaskHours is the fixed estimate of the oversight task appended
// to every templated project.
const supervisingTaskHours = 2

// ProjectService handles project business logic, including template-driven
// task generation.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	skillRepo   repository.SkillRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(
	projectRepo repository.ProjectRepository,
	taskRepo repository.TaskRepository,
	skillRepo repository.SkillRepository,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		skillRepo:   skillRepo,
	}
}

// CreateProjectInput represents input for creating a project.
type CreateProjectInput struct {
	Name      string
	Client    string
	StartDate time.Time
	Deadline  time.Time
	Type      string
}

// Create creates a project and, unless its type is "Other", the template
// tasks for that type plus a supervising task due at the project deadline.
// Everything lands in one transaction.
func (s *ProjectService) Create(userID uint64, input CreateProjectInput) (*models.Project, error) {
	if input.Name == "" {
		return nil, ErrProjectNameRequired
	}
	if input.Deadline.Before(input.StartDate) {
		return nil, ErrDeadlineBeforeStart
	}

	project := &models.Project{
		UserID:    userID,
		Name:      input.Name,
		Client:    input.Client,
		StartDate: input.StartDate,
		Deadline:  input.Deadline,
		Type:      input.Type,
	}

	tasks, err := s.templateTasks(input)
	if err != nil {
		return nil, err
	}

	if err := s.projectRepo.CreateWithTasks(project, tasks); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

func (s *ProjectService) templateTasks(input CreateProjectInput) ([]models.Task, error) {
	if input.Type == constants.ProjectTypeOther {
		return nil, nil
	}

	templates, err := s.projectRepo.TemplatesForType(input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to load task templates: %w", err)
	}

	tasks := make([]models.Task, 0, len(templates)+1)
	seenSkills := make(map[uint64]bool, len(templates))
	for _, tpl := range templates {
		tasks = append(tasks, models.Task{
			SkillID:        tpl.SkillID,
			EstimatedHours: tpl.EstimatedHours,
			Deadline:       input.StartDate.AddDate(0, 0, tpl.DeadlineOffsetDays),
		})
		seenSkills[tpl.SkillID] = true
	}

	supervising, err := s.skillRepo.FindByName(constants.SupervisingSkillName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tasks, nil
		}
		return nil, fmt.Errorf("failed to find supervising skill: %w", err)
	}

	if !seenSkills[supervising.ID] {
		tasks = append(tasks, models.Task{
			SkillID:        supervising.ID,
			EstimatedHours: supervisingTaskHours,
			Deadline:       input.Deadline,
		})
	}

	return tasks, nil
}

// List returns all projects of a user.
func (s *ProjectService) List(userID uint64) ([]models.Project, error) {
	projects, err := s.projectRepo.List(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// UpdateProjectInput represents input for updating a project.
type UpdateProjectInput struct {
	Name      string
	Client    string
	StartDate time.Time
	Deadline  time.Time
}

// Update updates a project's editable fields. Changing dates never touches
// already-generated tasks.
func (s *ProjectService) Update(project *models.Project, input UpdateProjectInput) (*models.Project, error) {
	if input.Name == "" {
		return nil, ErrProjectNameRequired
	}
	if input.Deadline.Before(input.StartDate) {
		return nil, ErrDeadlineBeforeStart
	}

	project.Name = input.Name
	project.Client = input.Client
	project.StartDate = input.StartDate
	project.Deadline = input.Deadline

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

// Delete removes the project and its tasks; tasks go first so no orphan ever
// references the project.
func (s *ProjectService) Delete(projectID uint64) error {
	if err := s.projectRepo.Delete(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// Tasks returns a project's tasks with skill and assignee.
func (s *ProjectService) Tasks(projectID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}
