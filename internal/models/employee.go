package models

import "time"

type Employee struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	UserID      uint64    `gorm:"not null;index" json:"user_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Role        string    `gorm:"type:varchar(100);not null" json:"role"`
	WeeklyHours float64   `gorm:"not null" json:"weekly_hours"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	User   User    `gorm:"foreignKey:UserID" json:"-"`
	Skills []Skill `gorm:"many2many:employee_skills" json:"skills,omitempty"`
	Tasks  []Task  `gorm:"foreignKey:EmployeeID" json:"tasks,omitempty"`
}
