package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRoleSkillsEmptyPathUsesDefaults(t *testing.T) {
	mapping, err := LoadRoleSkills("")
	require.NoError(t, err)
	require.Equal(t, DefaultRoleSkills(), mapping)
}

func TestLoadRoleSkillsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.yaml")
	content := `
Tester:
  - Testing
Builder:
  - Backend API
  - Database Setup
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	mapping, err := LoadRoleSkills(path)
	require.NoError(t, err)
	require.Equal(t, []string{"Testing"}, mapping.SkillsFor("Tester"))
	require.Equal(t, []string{"Backend API", "Database Setup"}, mapping.SkillsFor("Builder"))
	require.Nil(t, mapping.SkillsFor("Unknown"))
}

func TestLoadRoleSkillsRejectsEmptyMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	_, err := LoadRoleSkills(path)
	require.Error(t, err)
}

func TestLoadRoleSkillsMissingFile(t *testing.T) {
	_, err := LoadRoleSkills(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
