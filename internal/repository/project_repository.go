package repository

import (
	"github.com/skillboard/skillboard-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// CreateWithTasks creates a project and its generated tasks in one
// transaction. If any task insert fails the project row is rolled back too.
func (r *GormProjectRepository) CreateWithTasks(project *models.Project, tasks []models.Task) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		for i := range tasks {
			tasks[i].ProjectID = project.ID
		}
		if len(tasks) > 0 {
			if err := tx.Create(&tasks).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// FindByID finds a project by ID, regardless of owner
func (r *GormProjectRepository) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// List returns all projects of a user
func (r *GormProjectRepository) List(userID uint64) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Where("user_id = ?", userID).Order("id").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Update updates a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes the project's tasks first, then the project row, so no task
// ever references a deleted project.
func (r *GormProjectRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}

// TemplatesForType returns the task templates for a project type
func (r *GormProjectRepository) TemplatesForType(projectType string) ([]models.TaskTemplate, error) {
	var templates []models.TaskTemplate
	if err := r.db.Where("project_type = ?", projectType).Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}
