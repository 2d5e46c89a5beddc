package models

import "time"

// Task is a unit of work inside a project. EmployeeID is nil while the task
// sits unassigned; rows are deleted outright, never soft-deleted.
type Task struct {
	ID             uint64     `gorm:"primarykey" json:"id"`
	ProjectID      uint64     `gorm:"not null;index" json:"project_id"`
	SkillID        uint64     `gorm:"not null;index" json:"skill_id"`
	EstimatedHours float64    `gorm:"not null" json:"estimated_hours"`
	StartDate      *time.Time `json:"start_date"`
	Deadline       time.Time  `gorm:"not null" json:"deadline"`
	EmployeeID     *uint64    `gorm:"index" json:"employee_id"`
	Completed      bool       `gorm:"not null;default:false" json:"completed"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Relations
	Project  Project   `gorm:"foreignKey:ProjectID" json:"-"`
	Skill    Skill     `gorm:"foreignKey:SkillID" json:"-"`
	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"-"`
}
