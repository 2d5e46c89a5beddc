package services

import (
	"testing"
	"time"

	"github.com/skillboard/skillboard-api/internal/constants"
	"github.com/stretchr/testify/require"
)

func TestProjectService_CreateGeneratesTemplateTasks(t *testing.T) {
	env := setupServiceTestEnv(t)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	deadline := start.AddDate(0, 2, 0)
	project, err := env.projectService().Create(env.user.ID, CreateProjectInput{
		Name:      "Storefront",
		Client:    "Acme",
		StartDate: start,
		Deadline:  deadline,
		Type:      "Web App",
	})
	require.NoError(t, err)

	tasks, err := env.taskRepo.ListByProject(project.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 6, "five template tasks plus a supervising task")

	supervising, err := env.skillRepo.FindByName(constants.SupervisingSkillName)
	require.NoError(t, err)

	var supervisingSeen bool
	for _, task := range tasks {
		require.Nil(t, task.EmployeeID)
		require.False(t, task.Completed)
		if task.SkillID == supervising.ID {
			supervisingSeen = true
			require.Equal(t, 2.0, task.EstimatedHours)
			require.True(t, task.Deadline.Equal(deadline))
		} else {
			require.True(t, task.Deadline.After(start))
		}
	}
	require.True(t, supervisingSeen)
}

func TestProjectService_CreateOtherTypeGeneratesNoTasks(t *testing.T) {
	env := setupServiceTestEnv(t)

	project := env.createProject(t, "Consulting", "Other")

	tasks, err := env.taskRepo.ListByProject(project.ID)
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestProjectService_CreateRejectsDeadlineBeforeStart(t *testing.T) {
	env := setupServiceTestEnv(t)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := env.projectService().Create(env.user.ID, CreateProjectInput{
		Name:      "Backwards",
		StartDate: start,
		Deadline:  start.AddDate(0, 0, -1),
		Type:      "Other",
	})
	require.ErrorIs(t, err, ErrDeadlineBeforeStart)
}

func TestProjectService_DeleteRemovesTasks(t *testing.T) {
	env := setupServiceTestEnv(t)

	project := env.createProject(t, "Portal", "Web App")

	require.NoError(t, env.projectService().Delete(project.ID))

	_, err := env.projectRepo.FindByID(project.ID)
	require.Error(t, err)

	tasks, err := env.taskRepo.ListByProject(project.ID)
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestProjectService_ListScopedToUser(t *testing.T) {
	env := setupServiceTestEnv(t)

	env.createProject(t, "Mine", "Other")

	projects, err := env.projectService().List(env.user.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)

	none, err := env.projectService().List(env.user.ID + 1)
	require.NoError(t, err)
	require.Empty(t, none)
}
