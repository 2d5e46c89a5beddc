package repository

import (
	"github.com/skillboard/skillboard-api/internal/models"
	"gorm.io/gorm"
)

// GormEmployeeRepository is a GORM implementation of EmployeeRepository
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// Create creates an employee together with their skill associations
func (r *GormEmployeeRepository) Create(employee *models.Employee, skillIDs []uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(employee).Error; err != nil {
			return err
		}

		if len(skillIDs) == 0 {
			return nil
		}

		var skills []models.Skill
		if err := tx.Where("id IN ?", skillIDs).Find(&skills).Error; err != nil {
			return err
		}
		return tx.Model(employee).Association("Skills").Append(&skills)
	})
}

// CreateBatch inserts several employees atomically
func (r *GormEmployeeRepository) CreateBatch(employees []models.Employee) error {
	if len(employees) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&employees).Error
	})
}

// FindByID finds an employee by ID with their skills, regardless of owner
func (r *GormEmployeeRepository) FindByID(id uint64) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.Preload("Skills").First(&employee, id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// ListWithStats returns the roster of a user with derived figures. Loads are
// computed over incomplete tasks only; subselects avoid the row fanout a
// double join of tasks and reviews would produce.
func (r *GormEmployeeRepository) ListWithStats(userID uint64) ([]EmployeeStatsRow, error) {
	var rows []EmployeeStatsRow
	err := r.db.Raw(`
		SELECT
			e.id,
			e.name,
			e.role,
			e.weekly_hours,
			COALESCE((SELECT SUM(t.estimated_hours) FROM tasks t
				WHERE t.employee_id = e.id AND t.completed = ?), 0) AS current_load,
			(SELECT COUNT(*) FROM tasks t
				WHERE t.employee_id = e.id AND t.completed = ?) AS task_count,
			(SELECT AVG(r2.rating) FROM reviews r2
				WHERE r2.employee_id = e.id) AS average_rating
		FROM employees e
		WHERE e.user_id = ?
		ORDER BY e.name
	`, false, false, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Update updates an employee
func (r *GormEmployeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

// Delete removes skill links, assigned tasks and the employee row in one
// transaction
func (r *GormEmployeeRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM employee_skills WHERE employee_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("employee_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Employee{}, id).Error
	})
}

// Release clears the assignee on every task assigned to the employee.
// Hours and deadlines are untouched.
func (r *GormEmployeeRepository) Release(employeeID uint64) error {
	return r.db.Model(&models.Task{}).
		Where("employee_id = ?", employeeID).
		Update("employee_id", nil).Error
}

// LoadFor returns the sum of estimated hours over the employee's incomplete
// tasks
func (r *GormEmployeeRepository) LoadFor(employeeID uint64) (float64, error) {
	var load float64
	err := r.db.Raw(`
		SELECT COALESCE(SUM(estimated_hours), 0)
		FROM tasks
		WHERE employee_id = ? AND completed = ?
	`, employeeID, false).Scan(&load).Error
	if err != nil {
		return 0, err
	}
	return load, nil
}

// AverageRating returns the mean of all ratings the employee ever received,
// nil if none
func (r *GormEmployeeRepository) AverageRating(employeeID uint64) (*float64, error) {
	var rating *float64
	err := r.db.Raw(`
		SELECT AVG(rating) FROM reviews WHERE employee_id = ?
	`, employeeID).Scan(&rating).Error
	if err != nil {
		return nil, err
	}
	return rating, nil
}

// SkillIDs returns the IDs of the employee's skills
func (r *GormEmployeeRepository) SkillIDs(employeeID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.Raw(`
		SELECT skill_id FROM employee_skills WHERE employee_id = ?
	`, employeeID).Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// CandidatesForSkill returns a user's employees holding a skill, with current
// incomplete load and average rating
func (r *GormEmployeeRepository) CandidatesForSkill(skillID, userID uint64) ([]CandidateRow, error) {
	var rows []CandidateRow
	err := r.db.Raw(`
		SELECT
			e.id AS employee_id,
			e.name,
			e.weekly_hours,
			COALESCE((SELECT SUM(t.estimated_hours) FROM tasks t
				WHERE t.employee_id = e.id AND t.completed = ?), 0) AS current_load,
			(SELECT AVG(r2.rating) FROM reviews r2
				WHERE r2.employee_id = e.id) AS average_rating
		FROM employees e
		JOIN employee_skills es ON es.employee_id = e.id
		WHERE es.skill_id = ? AND e.user_id = ?
		ORDER BY e.name
	`, false, skillID, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ExportRows returns the employee/task report rows for a user. Employees
// without tasks still appear, with empty task columns.
func (r *GormEmployeeRepository) ExportRows(userID uint64) ([]EmployeeExportRow, error) {
	var rows []EmployeeExportRow
	err := r.db.Raw(`
		SELECT
			e.id AS employee_id,
			e.name AS employee_name,
			e.role,
			e.weekly_hours,
			COALESCE(s.name, '') AS skill_name,
			COALESCE(p.name, '') AS project_name,
			COALESCE(t.estimated_hours, 0) AS estimated_hours,
			t.start_date,
			t.deadline
		FROM employees e
		LEFT JOIN tasks t ON t.employee_id = e.id
		LEFT JOIN skills s ON s.id = t.skill_id
		LEFT JOIN projects p ON p.id = t.project_id
		WHERE e.user_id = ?
		ORDER BY e.name, t.deadline
	`, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
