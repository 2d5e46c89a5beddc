package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RoleSkills maps an employee role to the skill names associated with it at
// hire time. Kept in an external YAML file so new roles don't need a code
// change; the compiled-in defaults apply when no file is configured.
type RoleSkills map[string][]string

// SkillsFor returns the skill names for a role, or nil for unknown roles.
func (m RoleSkills) SkillsFor(role string) []string {
	return m[role]
}

// LoadRoleSkills reads the role→skills mapping from a YAML file. An empty
// path returns the defaults.
func LoadRoleSkills(path string) (RoleSkills, error) {
	if path == "" {
		return DefaultRoleSkills(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read role skills file: %w", err)
	}

	var mapping RoleSkills
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("failed to parse role skills file: %w", err)
	}
	if len(mapping) == 0 {
		return nil, fmt.Errorf("role skills file %s defines no roles", path)
	}

	return mapping, nil
}

// DefaultRoleSkills is the built-in mapping.
func DefaultRoleSkills() RoleSkills {
	return RoleSkills{
		"Frontend Developer": {"Frontend Dev", "UI Design", "Design", "Feature"},
		"Backend Developer":  {"Backend API", "Security Review", "Database Setup", "Testing", "Planning", "Data Analysis", "Feature"},
		"QA Engineer":        {"Testing", "Security Review"},
		"Designer":           {"Design", "UI Design"},
		"Database Admin":     {"Database Setup"},
		"Project Manager":    {"Planning", "Supervising"},
		"Data Analyst":       {"Data Analysis", "Planning"},
		"Feature Developer":  {"Feature"},
		"Supervisor":         {"Supervising", "Planning"},
	}
}
