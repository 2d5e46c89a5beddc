package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/skillboard/skillboard-api/internal/models"
	"github.com/skillboard/skillboard-api/internal/repository"
	"github.com/skillboard/skillboard-api/internal/workload"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrNoEmployeesGiven    = errors.New("at least one employee is required")
	ErrHoursMismatch       = errors.New("hours must be given for every employee")
	ErrInvalidHours        = errors.New("estimated hours must be positive")
	ErrProjectAccessDenied = errors.New("project belongs to another user")
)

// TaskService handles task business logic: creation against a project,
// assignment, splitting across several employees, and candidate ranking.
type TaskService struct {
	taskRepo     repository.TaskRepository
	employeeRepo repository.EmployeeRepository
	projectRepo  repository.ProjectRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	taskRepo repository.TaskRepository,
	employeeRepo repository.EmployeeRepository,
	projectRepo repository.ProjectRepository,
) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		employeeRepo: employeeRepo,
		projectRepo:  projectRepo,
	}
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	SkillID        uint64
	EstimatedHours float64
	Deadline       time.Time
}

// Create adds an unassigned task to a project.
func (s *TaskService) Create(projectID uint64, input CreateTaskInput) (*models.Task, error) {
	if input.EstimatedHours <= 0 {
		return nil, ErrInvalidHours
	}

	task := &models.Task{
		ProjectID:      projectID,
		SkillID:        input.SkillID,
		EstimatedHours: input.EstimatedHours,
		Deadline:       input.Deadline,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// CreateForUser adds a task to a project named in the request body, checking
// the project exists and belongs to the caller before writing. An absent
// project and a foreign one stay distinguishable for the handler.
func (s *TaskService) CreateForUser(userID, projectID uint64, input CreateTaskInput) (*models.Task, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	if project.UserID != userID {
		return nil, ErrProjectAccessDenied
	}

	return s.Create(projectID, input)
}

// UpdateTaskInput represents input for updating a task.
type UpdateTaskInput struct {
	EstimatedHours float64
	Deadline       time.Time
	StartDate      *time.Time
}

// Update updates a task's hours, deadline and start date. Assignment and
// completion have their own operations.
func (s *TaskService) Update(task *models.Task, input UpdateTaskInput) (*models.Task, error) {
	if input.EstimatedHours <= 0 {
		return nil, ErrInvalidHours
	}

	task.EstimatedHours = input.EstimatedHours
	task.Deadline = input.Deadline
	task.StartDate = input.StartDate

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// Delete removes a task.
func (s *TaskService) Delete(taskID uint64) error {
	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// AssignInput represents the assignment request. With one employee the task
// itself is assigned; with several, Hours allocates the work and the task is
// split into one row per employee.
type AssignInput struct {
	EmployeeIDs []uint64
	Hours       []float64
	StartDate   *time.Time
}

// Assign validates every target employee before anything is written. With a
// single employee the task keeps its hours; with several, the per-employee
// hours list must match the employee list and the task is replaced by one row
// per allocation.
func (s *TaskService) Assign(userID uint64, task *models.Task, input AssignInput) error {
	if len(input.EmployeeIDs) == 0 {
		return ErrNoEmployeesGiven
	}
	if len(input.EmployeeIDs) > 1 && len(input.Hours) != len(input.EmployeeIDs) {
		return ErrHoursMismatch
	}

	for _, employeeID := range input.EmployeeIDs {
		employee, err := s.employeeRepo.FindByID(employeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("employee %d: %w", employeeID, ErrEmployeeNotFound)
			}
			return fmt.Errorf("failed to find employee: %w", err)
		}
		if employee.UserID != userID {
			return fmt.Errorf("employee %d: %w", employeeID, ErrEmployeeNotFound)
		}
	}

	if len(input.EmployeeIDs) == 1 {
		if err := s.taskRepo.Assign(task.ID, input.EmployeeIDs[0], input.StartDate); err != nil {
			return fmt.Errorf("failed to assign task: %w", err)
		}
		return nil
	}

	allocations := make([]repository.SplitAllocation, len(input.EmployeeIDs))
	for i, employeeID := range input.EmployeeIDs {
		allocations[i] = repository.SplitAllocation{
			EmployeeID: employeeID,
			Hours:      input.Hours[i],
		}
	}

	if err := s.taskRepo.Split(task, input.StartDate, allocations); err != nil {
		return fmt.Errorf("failed to split task: %w", err)
	}
	return nil
}

// Unassign clears the assignee, keeping hours, skill and deadline intact.
func (s *TaskService) Unassign(taskID uint64) error {
	if err := s.taskRepo.Unassign(taskID); err != nil {
		return fmt.Errorf("failed to unassign task: %w", err)
	}
	return nil
}

// ToggleCompletion flips the completed flag. Reopening a task puts its hours
// back into the assignee's load.
func (s *TaskService) ToggleCompletion(task *models.Task) (*models.Task, error) {
	task.Completed = !task.Completed
	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// CandidateList is the ranked answer to "who should take this task".
type CandidateList struct {
	Candidates []workload.Candidate `json:"candidates"`
	Suggested  *workload.Candidate  `json:"suggested"`
}

// Candidates evaluates every employee holding the task's skill against the
// task's hours and picks the best fit.
func (s *TaskService) Candidates(userID uint64, task *models.Task) (*CandidateList, error) {
	rows, err := s.employeeRepo.CandidatesForSkill(task.SkillID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find candidates: %w", err)
	}

	candidates := make([]workload.Candidate, len(rows))
	for i, row := range rows {
		candidates[i] = workload.EvaluateCandidate(
			row.EmployeeID,
			row.Name,
			row.WeeklyHours,
			row.CurrentLoad,
			task.EstimatedHours,
			row.AverageRating,
		)
	}

	return &CandidateList{
		Candidates: candidates,
		Suggested:  workload.SuggestBest(candidates),
	}, nil
}
