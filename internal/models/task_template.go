package models

// TaskTemplate describes a task that is generated automatically when a
// project of the matching type is created. DeadlineOffsetDays is added to the
// project start date to produce the task deadline.
type TaskTemplate struct {
	ID                 uint64  `gorm:"primarykey" json:"id"`
	ProjectType        string  `gorm:"type:varchar(100);not null;index" json:"project_type"`
	SkillID            uint64  `gorm:"not null" json:"skill_id"`
	EstimatedHours     float64 `gorm:"not null" json:"estimated_hours"`
	DeadlineOffsetDays int     `gorm:"not null" json:"deadline_offset_days"`

	// Relations
	Skill Skill `gorm:"foreignKey:SkillID" json:"-"`
}
