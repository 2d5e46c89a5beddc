package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds query-critical indexes beyond what AutoMigrate creates.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Task lookups by assignment state and schedule
		{"tasks", "idx_tasks_employee_completed", "employee_id, completed"},
		{"tasks", "idx_tasks_skill_completed", "skill_id, completed"},
		{"tasks", "idx_tasks_deadline", "deadline"},

		// Per-tenant scoping
		{"employees", "idx_employees_user_role", "user_id, role"},
		{"projects", "idx_projects_user_deadline", "user_id, deadline"},

		// Review aggregation
		{"reviews", "idx_reviews_employee_task", "employee_id, task_id"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
