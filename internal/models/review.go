package models

import "time"

// Review is append-only; there is no update or delete path.
type Review struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	EmployeeID uint64    `gorm:"not null;index" json:"employee_id"`
	TaskID     uint64    `gorm:"not null;index" json:"task_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	Employee Employee `gorm:"foreignKey:EmployeeID" json:"-"`
	Task     Task     `gorm:"foreignKey:TaskID" json:"-"`
}
