package models

import "time"

type Project struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Client    string    `gorm:"type:varchar(255)" json:"client"`
	StartDate time.Time `gorm:"not null" json:"start_date"`
	Deadline  time.Time `gorm:"not null" json:"deadline"`
	Type      string    `gorm:"type:varchar(100)" json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User  User   `gorm:"foreignKey:UserID" json:"-"`
	Tasks []Task `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
}
