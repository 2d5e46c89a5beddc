package constants

// Context keys
const (
	ContextKeyUserID   = "user_id"
	ContextKeyEmployee = "employee"
	ContextKeyProject  = "project"
	ContextKeyTask     = "task"
)

// Auth
const (
	MinPasswordLength = 8
	BearerTokenType   = "bearer"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// DateLayout is the calendar date format used at the API boundary.
const DateLayout = "2006-01-02"

// SupervisingSkillName is the skill attached to the oversight task that is
// appended to every templated project.
const SupervisingSkillName = "Supervising"

// ProjectTypeOther opts a project out of template task generation.
const ProjectTypeOther = "Other"
