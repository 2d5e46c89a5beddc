package repository

import (
	"time"

	"github.com/skillboard/skillboard-api/internal/models"
	"github.com/skillboard/skillboard-api/internal/workload"
	"gorm.io/gorm"
)

// GormAnalyticsRepository is a GORM implementation of AnalyticsRepository
type GormAnalyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new AnalyticsRepository
func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &GormAnalyticsRepository{db: db}
}

// TotalProjects counts a user's projects
func (r *GormAnalyticsRepository) TotalProjects(userID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// TaskCounts returns total and completed task counts across a user's projects
func (r *GormAnalyticsRepository) TaskCounts(userID uint64) (total, completed int64, err error) {
	base := r.db.Model(&models.Task{}).
		Joins("JOIN projects p ON p.id = tasks.project_id").
		Where("p.user_id = ?", userID)

	if err = base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err = base.Session(&gorm.Session{}).Where("tasks.completed = ?", true).Count(&completed).Error; err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}

// loadRow exists because "load" is a reserved word on some backends.
type loadRow struct {
	EmployeeID  uint64
	Capacity    float64
	CurrentLoad float64
}

// LoadRows returns capacity and incomplete-task load per employee
func (r *GormAnalyticsRepository) LoadRows(userID uint64) ([]workload.EmployeeLoad, error) {
	var rows []loadRow
	err := r.db.Raw(`
		SELECT
			e.id AS employee_id,
			e.weekly_hours AS capacity,
			COALESCE((SELECT SUM(t.estimated_hours) FROM tasks t
				WHERE t.employee_id = e.id AND t.completed = ?), 0) AS current_load
		FROM employees e
		WHERE e.user_id = ?
	`, false, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	loads := make([]workload.EmployeeLoad, len(rows))
	for i, row := range rows {
		loads[i] = workload.EmployeeLoad{
			EmployeeID: row.EmployeeID,
			Capacity:   row.Capacity,
			Load:       row.CurrentLoad,
		}
	}
	return loads, nil
}

// WorkloadBySkill sums task hours grouped by skill name, omitting skills with
// no hours
func (r *GormAnalyticsRepository) WorkloadBySkill(userID uint64) ([]SkillHours, error) {
	var rows []SkillHours
	err := r.db.Raw(`
		SELECT s.name, SUM(t.estimated_hours) AS value
		FROM skills s
		JOIN tasks t ON t.skill_id = s.id
		JOIN projects p ON p.id = t.project_id
		WHERE p.user_id = ?
		GROUP BY s.name
		HAVING SUM(t.estimated_hours) > 0
		ORDER BY s.name
	`, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type roleCount struct {
	Role  string
	Count int
}

// RoleTotals counts employees per role
func (r *GormAnalyticsRepository) RoleTotals(userID uint64) (map[string]int, error) {
	var rows []roleCount
	err := r.db.Raw(`
		SELECT role, COUNT(*) AS count
		FROM employees
		WHERE user_id = ?
		GROUP BY role
	`, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return roleCountMap(rows), nil
}

// RoleWorking counts, per role, employees with at least one assigned task
func (r *GormAnalyticsRepository) RoleWorking(userID uint64) (map[string]int, error) {
	var rows []roleCount
	err := r.db.Raw(`
		SELECT e.role, COUNT(DISTINCT t.employee_id) AS count
		FROM tasks t
		JOIN employees e ON e.id = t.employee_id
		WHERE e.user_id = ?
		GROUP BY e.role
	`, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return roleCountMap(rows), nil
}

func roleCountMap(rows []roleCount) map[string]int {
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Role] = row.Count
	}
	return counts
}

// ProjectStartDates returns the start dates of a user's projects. Month
// bucketing happens in Go to stay portable across SQL dialects.
func (r *GormAnalyticsRepository) ProjectStartDates(userID uint64) ([]time.Time, error) {
	var dates []time.Time
	err := r.db.Model(&models.Project{}).
		Where("user_id = ?", userID).
		Order("start_date").
		Pluck("start_date", &dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}

// ProjectProgress returns completed/remaining task counts per project
func (r *GormAnalyticsRepository) ProjectProgress(userID uint64) ([]ProjectProgressRow, error) {
	var rows []ProjectProgressRow
	err := r.db.Raw(`
		SELECT
			p.name AS project_name,
			COALESCE(SUM(CASE WHEN t.completed = ? THEN 1 ELSE 0 END), 0) AS completed,
			COUNT(t.id) - COALESCE(SUM(CASE WHEN t.completed = ? THEN 1 ELSE 0 END), 0) AS remaining
		FROM projects p
		LEFT JOIN tasks t ON t.project_id = p.id
		WHERE p.user_id = ?
		GROUP BY p.name
		ORDER BY p.name
	`, true, true, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ProjectsDueBefore counts projects with a deadline on or before cutoff
func (r *GormAnalyticsRepository) ProjectsDueBefore(userID uint64, cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).
		Where("user_id = ? AND deadline <= ?", userID, cutoff).
		Count(&count).Error
	return count, err
}
