package repository

import (
	"time"

	"github.com/skillboard/skillboard-api/internal/models"
	"github.com/skillboard/skillboard-api/internal/workload"
)

// EmployeeStatsRow is one roster entry with its derived figures. CurrentLoad
// and TaskCount cover incomplete tasks only; AverageRating is nil when the
// employee has never been reviewed.
type EmployeeStatsRow struct {
	ID            uint64   `json:"id"`
	Name          string   `json:"name"`
	Role          string   `json:"role"`
	WeeklyHours   float64  `json:"weekly_hours"`
	CurrentLoad   float64  `json:"current_load"`
	TaskCount     int      `json:"task_count"`
	AverageRating *float64 `json:"average_rating"`
}

// CandidateRow is the stored input to candidate evaluation: an employee
// holding the required skill, with current incomplete load and rating.
type CandidateRow struct {
	EmployeeID    uint64
	Name          string
	WeeklyHours   float64
	CurrentLoad   float64
	AverageRating *float64
}

// EmployeeExportRow is one line of the spreadsheet export: an employee/task
// pair with the fields the report sheet carries.
type EmployeeExportRow struct {
	EmployeeID     uint64
	EmployeeName   string
	Role           string
	WeeklyHours    float64
	SkillName      string
	ProjectName    string
	EstimatedHours float64
	StartDate      *time.Time
	Deadline       *time.Time
}

// SplitAllocation is one (employee, hours) pair of a task split.
type SplitAllocation struct {
	EmployeeID uint64
	Hours      float64
}

// SkillHours is one slice of the workload-by-skill distribution.
type SkillHours struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ProjectProgressRow is per-project task completion.
type ProjectProgressRow struct {
	ProjectName string `json:"project_name"`
	Completed   int    `json:"completed"`
	Remaining   int    `json:"remaining"`
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// EmployeeRepository defines the interface for employee data access
type EmployeeRepository interface {
	// Create creates an employee together with their skill associations
	Create(employee *models.Employee, skillIDs []uint64) error

	// CreateBatch inserts several employees atomically (spreadsheet import)
	CreateBatch(employees []models.Employee) error

	// FindByID finds an employee by ID, regardless of owner
	FindByID(id uint64) (*models.Employee, error)

	// ListWithStats returns the roster of a user with load, incomplete task
	// count and average review rating per employee
	ListWithStats(userID uint64) ([]EmployeeStatsRow, error)

	// Update updates an employee
	Update(employee *models.Employee) error

	// Delete removes skill links, assigned tasks and the employee row in one
	// transaction
	Delete(id uint64) error

	// Release clears the assignee on every task assigned to the employee
	Release(employeeID uint64) error

	// LoadFor returns the sum of estimated hours over the employee's
	// incomplete tasks
	LoadFor(employeeID uint64) (float64, error)

	// AverageRating returns the mean of all ratings the employee ever
	// received, nil if none
	AverageRating(employeeID uint64) (*float64, error)

	// SkillIDs returns the IDs of the employee's skills
	SkillIDs(employeeID uint64) ([]uint64, error)

	// CandidatesForSkill returns a user's employees holding a skill, with
	// current load and rating
	CandidatesForSkill(skillID, userID uint64) ([]CandidateRow, error)

	// ExportRows returns the employee/task report rows for a user
	ExportRows(userID uint64) ([]EmployeeExportRow, error)
}

// SkillRepository defines the interface for skill catalog access
type SkillRepository interface {
	// List returns the whole skill catalog
	List() ([]models.Skill, error)

	// FindByName finds a skill by its unique name
	FindByName(name string) (*models.Skill, error)

	// FindByNames finds all skills among the given names
	FindByNames(names []string) ([]models.Skill, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// CreateWithTasks creates a project and its generated tasks in one
	// transaction
	CreateWithTasks(project *models.Project, tasks []models.Task) error

	// FindByID finds a project by ID, regardless of owner
	FindByID(id uint64) (*models.Project, error)

	// List returns all projects of a user
	List(userID uint64) ([]models.Project, error)

	// Update updates a project
	Update(project *models.Project) error

	// Delete removes the project's tasks and then the project, in one
	// transaction
	Delete(id uint64) error

	// TemplatesForType returns the task templates for a project type
	TemplatesForType(projectType string) ([]models.TaskTemplate, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// ListByProject returns a project's tasks with skill and assignee
	ListByProject(projectID uint64) ([]models.Task, error)

	// ListByEmployee returns every task assigned to an employee, with skill
	// and project
	ListByEmployee(employeeID uint64) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete removes a task row
	Delete(id uint64) error

	// Assign sets the assignee and start date of a task
	Assign(taskID, employeeID uint64, startDate *time.Time) error

	// Split replaces a placeholder task with one row per allocation, carrying
	// the original project, skill and deadline; all in one transaction
	Split(original *models.Task, startDate *time.Time, allocations []SplitAllocation) error

	// Unassign clears the assignee of a task, leaving all other fields alone
	Unassign(taskID uint64) error

	// SuggestedForSkills returns unassigned incomplete tasks of a user
	// matching any of the skills, deadline ascending
	SuggestedForSkills(skillIDs []uint64, userID uint64) ([]models.Task, error)
}

// ReviewRepository defines the interface for review data access
type ReviewRepository interface {
	// Create appends a review
	Create(review *models.Review) error

	// ListByEmployee returns a page of an employee's reviews, newest first
	ListByEmployee(employeeID uint64, limit, offset int) ([]models.Review, error)

	// CountByEmployee counts an employee's reviews
	CountByEmployee(employeeID uint64) (int64, error)

	// LatestByTask returns, per task, the most recent review the employee
	// received for it
	LatestByTask(employeeID uint64) (map[uint64]models.Review, error)
}

// AnalyticsRepository exposes the typed aggregate queries the analytics
// endpoints derive their figures from. Everything is scoped to one user and
// recomputed per call.
type AnalyticsRepository interface {
	// TotalProjects counts a user's projects
	TotalProjects(userID uint64) (int64, error)

	// TaskCounts returns total and completed task counts across a user's
	// projects
	TaskCounts(userID uint64) (total, completed int64, err error)

	// LoadRows returns capacity and incomplete-task load per employee
	LoadRows(userID uint64) ([]workload.EmployeeLoad, error)

	// WorkloadBySkill sums incomplete and completed task hours grouped by
	// skill name, omitting skills without hours
	WorkloadBySkill(userID uint64) ([]SkillHours, error)

	// RoleTotals counts employees per role
	RoleTotals(userID uint64) (map[string]int, error)

	// RoleWorking counts, per role, employees with at least one assigned task
	RoleWorking(userID uint64) (map[string]int, error)

	// ProjectStartDates returns the start dates of a user's projects
	ProjectStartDates(userID uint64) ([]time.Time, error)

	// ProjectProgress returns completed/remaining task counts per project
	ProjectProgress(userID uint64) ([]ProjectProgressRow, error)

	// ProjectsDueBefore counts projects with a deadline on or before cutoff
	ProjectsDueBefore(userID uint64, cutoff time.Time) (int64, error)
}
