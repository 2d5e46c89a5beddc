package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/skillboard/skillboard-api/internal/config"
	"github.com/skillboard/skillboard-api/internal/models"
	"github.com/skillboard/skillboard-api/internal/repository"
	"github.com/skillboard/skillboard-api/internal/workload"
	"gorm.io/gorm"
)

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeNameRequired = errors.New("employee name is required")
	ErrNoImportRows         = errors.New("no employee rows to import")
)

// EmployeeService handles employee business logic.
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
	skillRepo    repository.SkillRepository
	taskRepo     repository.TaskRepository
	reviewRepo   repository.ReviewRepository
	roleSkills   config.RoleSkills
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(
	employeeRepo repository.EmployeeRepository,
	skillRepo repository.SkillRepository,
	taskRepo repository.TaskRepository,
	reviewRepo repository.ReviewRepository,
	roleSkills config.RoleSkills,
) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		skillRepo:    skillRepo,
		taskRepo:     taskRepo,
		reviewRepo:   reviewRepo,
		roleSkills:   roleSkills,
	}
}

// CreateEmployeeInput represents input for creating an employee.
type CreateEmployeeInput struct {
	Name        string
	Role        string
	WeeklyHours float64
}

// Create creates an employee and attaches the skills mapped to their role.
// Unknown roles simply get no skills.
func (s *EmployeeService) Create(userID uint64, input CreateEmployeeInput) (*models.Employee, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmployeeNameRequired
	}

	employee := &models.Employee{
		UserID:      userID,
		Name:        name,
		Role:        input.Role,
		WeeklyHours: input.WeeklyHours,
	}

	skillIDs, err := s.skillIDsForRole(input.Role)
	if err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Create(employee, skillIDs); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee, nil
}

// List returns the roster of a user with derived load figures.
func (s *EmployeeService) List(userID uint64) ([]repository.EmployeeStatsRow, error) {
	rows, err := s.employeeRepo.ListWithStats(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return rows, nil
}

// ProfileTask is one task of an employee profile, with the latest review the
// employee received for it, if any.
type ProfileTask struct {
	Task   models.Task
	Review *models.Review
}

// Profile is the assembled employee detail view.
type Profile struct {
	Employee      models.Employee
	CurrentLoad   float64
	LoadPercent   int
	AverageRating *float64
	Tasks         []ProfileTask
}

// Profile assembles the detail view: current load over incomplete tasks,
// load percent against capacity, lifetime average rating, and every assigned
// task with its latest review.
func (s *EmployeeService) Profile(employee *models.Employee) (*Profile, error) {
	load, err := s.employeeRepo.LoadFor(employee.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute load: %w", err)
	}

	rating, err := s.employeeRepo.AverageRating(employee.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute rating: %w", err)
	}

	tasks, err := s.taskRepo.ListByEmployee(employee.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	latestReviews, err := s.reviewRepo.LatestByTask(employee.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}

	profileTasks := make([]ProfileTask, len(tasks))
	for i, task := range tasks {
		pt := ProfileTask{Task: task}
		if review, ok := latestReviews[task.ID]; ok {
			r := review
			pt.Review = &r
		}
		profileTasks[i] = pt
	}

	return &Profile{
		Employee:      *employee,
		CurrentLoad:   load,
		LoadPercent:   workload.LoadPercent(load, employee.WeeklyHours),
		AverageRating: rating,
		Tasks:         profileTasks,
	}, nil
}

// UpdateEmployeeInput represents input for updating an employee.
type UpdateEmployeeInput struct {
	Name        string
	Role        string
	WeeklyHours float64
}

// Update updates an employee's editable fields. Skill associations follow the
// role only at creation time.
func (s *EmployeeService) Update(employee *models.Employee, input UpdateEmployeeInput) (*models.Employee, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmployeeNameRequired
	}

	employee.Name = name
	employee.Role = input.Role
	if input.WeeklyHours > 0 {
		employee.WeeklyHours = input.WeeklyHours
	}

	if err := s.employeeRepo.Update(employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee, nil
}

// Delete removes an employee with their skill links and tasks.
func (s *EmployeeService) Delete(employeeID uint64) error {
	if err := s.employeeRepo.Delete(employeeID); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// Release clears the assignee on all of the employee's tasks. The tasks keep
// their hours and deadlines; the employee's load drops to zero.
func (s *EmployeeService) Release(employeeID uint64) error {
	if err := s.employeeRepo.Release(employeeID); err != nil {
		return fmt.Errorf("failed to release employee: %w", err)
	}
	return nil
}

// Reviews returns a page of the employee's reviews, newest first, with the
// total count.
func (s *EmployeeService) Reviews(employeeID uint64, limit, offset int) ([]models.Review, int64, error) {
	reviews, err := s.reviewRepo.ListByEmployee(employeeID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}

	total, err := s.reviewRepo.CountByEmployee(employeeID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return reviews, total, nil
}

// SuggestedTasks returns unassigned incomplete tasks matching any of the
// employee's skills, soonest deadline first.
func (s *EmployeeService) SuggestedTasks(userID uint64, employeeID uint64) ([]models.Task, error) {
	skillIDs, err := s.employeeRepo.SkillIDs(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load skills: %w", err)
	}
	if len(skillIDs) == 0 {
		return []models.Task{}, nil
	}

	tasks, err := s.taskRepo.SuggestedForSkills(skillIDs, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find suggested tasks: %w", err)
	}
	return tasks, nil
}

// ImportRow is one employee parsed from an uploaded spreadsheet.
type ImportRow struct {
	Name        string
	Role        string
	WeeklyHours float64
}

// Import inserts the parsed rows for a user in one transaction. Rows with an
// empty name are rejected before anything is written.
func (s *EmployeeService) Import(userID uint64, rows []ImportRow) (int, error) {
	if len(rows) == 0 {
		return 0, ErrNoImportRows
	}

	employees := make([]models.Employee, len(rows))
	for i, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			return 0, fmt.Errorf("row %d: %w", i+1, ErrEmployeeNameRequired)
		}
		employees[i] = models.Employee{
			UserID:      userID,
			Name:        name,
			Role:        row.Role,
			WeeklyHours: row.WeeklyHours,
		}
	}

	if err := s.employeeRepo.CreateBatch(employees); err != nil {
		return 0, fmt.Errorf("failed to import employees: %w", err)
	}
	return len(employees), nil
}

// Export returns the employee/task report rows for a user.
func (s *EmployeeService) Export(userID uint64) ([]repository.EmployeeExportRow, error) {
	rows, err := s.employeeRepo.ExportRows(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to export employees: %w", err)
	}
	return rows, nil
}

func (s *EmployeeService) skillIDsForRole(role string) ([]uint64, error) {
	names := s.roleSkills.SkillsFor(role)
	if len(names) == 0 {
		return nil, nil
	}

	skills, err := s.skillRepo.FindByNames(names)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to resolve role skills: %w", err)
	}

	ids := make([]uint64, 0, len(skills))
	for _, skill := range skills {
		ids = append(ids, skill.ID)
	}
	return ids, nil
}
