package repository

import (
	"time"

	"github.com/skillboard/skillboard-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint64, preload ...string) (*models.Task, error) {
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}

	var task models.Task
	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByProject returns a project's tasks with skill and assignee
func (r *GormTaskRepository) ListByProject(projectID uint64) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Preload("Skill").
		Preload("Employee").
		Where("project_id = ?", projectID).
		Order("deadline").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListByEmployee returns every task assigned to an employee, with skill and
// project
func (r *GormTaskRepository) ListByEmployee(employeeID uint64) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Preload("Skill").
		Preload("Project").
		Where("employee_id = ?", employeeID).
		Order("deadline").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete removes a task row
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Task{}, id).Error
}

// Assign sets the assignee and start date of a task
func (r *GormTaskRepository) Assign(taskID, employeeID uint64, startDate *time.Time) error {
	return r.db.Model(&models.Task{}).
		Where("id = ?", taskID).
		Updates(map[string]interface{}{
			"employee_id": employeeID,
			"start_date":  startDate,
		}).Error
}

// Split replaces a placeholder task with one row per allocation. Each new row
// carries the original's project, skill and deadline with the allocated
// hours; the placeholder is removed last. One transaction, so a failed insert
// leaves the placeholder untouched.
func (r *GormTaskRepository) Split(original *models.Task, startDate *time.Time, allocations []SplitAllocation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, alloc := range allocations {
			employeeID := alloc.EmployeeID
			task := models.Task{
				ProjectID:      original.ProjectID,
				SkillID:        original.SkillID,
				EstimatedHours: alloc.Hours,
				StartDate:      startDate,
				Deadline:       original.Deadline,
				EmployeeID:     &employeeID,
				Completed:      false,
			}
			if err := tx.Create(&task).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Task{}, original.ID).Error
	})
}

// Unassign clears the assignee of a task, leaving hours, deadline and skill
// unchanged
func (r *GormTaskRepository) Unassign(taskID uint64) error {
	return r.db.Model(&models.Task{}).
		Where("id = ?", taskID).
		Update("employee_id", nil).Error
}

// SuggestedForSkills returns unassigned incomplete tasks of a user matching
// any of the skills, deadline ascending
func (r *GormTaskRepository) SuggestedForSkills(skillIDs []uint64, userID uint64) ([]models.Task, error) {
	if len(skillIDs) == 0 {
		return []models.Task{}, nil
	}

	var tasks []models.Task
	err := r.db.
		Preload("Skill").
		Preload("Project").
		Joins("JOIN projects p ON p.id = tasks.project_id").
		Where("p.user_id = ?", userID).
		Where("tasks.employee_id IS NULL").
		Where("tasks.completed = ?", false).
		Where("tasks.skill_id IN ?", skillIDs).
		Order("tasks.deadline").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}
