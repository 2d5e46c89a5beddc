package services

import (
	"testing"

	"github.com/skillboard/skillboard-api/internal/repository"
	"github.com/stretchr/testify/require"
)

func (env serviceTestEnv) analyticsService() *AnalyticsService {
	return NewAnalyticsService(repository.NewAnalyticsRepository(env.db))
}

func TestAnalyticsService_SummaryCountsAndSplits(t *testing.T) {
	env := setupServiceTestEnv(t)

	env.createEmployee(t, "Benched", "Designer", 40)
	loaded := env.createEmployee(t, "Loaded", "Backend Developer", 40)

	project := env.createProject(t, "Portal", "Other")
	open := env.createTask(t, project.ID, "Backend API", 39)
	done := env.createTask(t, project.ID, "Testing", 5)

	require.NoError(t, env.taskService().Assign(env.user.ID, open, AssignInput{EmployeeIDs: []uint64{loaded.ID}}))

	completed, err := env.taskRepo.FindByID(done.ID)
	require.NoError(t, err)
	_, err = env.taskService().ToggleCompletion(completed)
	require.NoError(t, err)

	summary, err := env.analyticsService().Summary(env.user.ID)
	require.NoError(t, err)

	require.Equal(t, int64(1), summary.TotalProjects)
	require.Equal(t, int64(2), summary.TotalTasks)
	require.Equal(t, int64(1), summary.CompletedTasks)
	require.Equal(t, 1, summary.Benched)
	require.Equal(t, 1, summary.Active)

	// 39/40 crosses the 0.95 ratio, so one employee is overloaded.
	require.Equal(t, 1, summary.Available)
	require.Equal(t, 1, summary.Overloaded)

	byName := map[string]float64{}
	for _, slice := range summary.Workload {
		byName[slice.Name] = slice.Value
	}
	require.Equal(t, 39.0, byName["Backend API"])
	require.Equal(t, 5.0, byName["Testing"])
}

func TestAnalyticsService_AvailabilityUsesHoursCeiling(t *testing.T) {
	env := setupServiceTestEnv(t)

	light := env.createEmployee(t, "Light", "Designer", 40)
	heavy := env.createEmployee(t, "Heavy", "Backend Developer", 40)

	project := env.createProject(t, "Portal", "Other")
	small := env.createTask(t, project.ID, "Design", 10)
	big := env.createTask(t, project.ID, "Backend API", 36)

	require.NoError(t, env.taskService().Assign(env.user.ID, small, AssignInput{EmployeeIDs: []uint64{light.ID}}))
	require.NoError(t, env.taskService().Assign(env.user.ID, big, AssignInput{EmployeeIDs: []uint64{heavy.ID}}))

	stats, err := env.analyticsService().Availability(env.user.ID)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Available)
	require.Equal(t, 1, stats.Loaded)
}

func TestAnalyticsService_RoleStaffing(t *testing.T) {
	env := setupServiceTestEnv(t)

	working := env.createEmployee(t, "Working", "Designer", 40)
	env.createEmployee(t, "Idle", "Designer", 40)
	env.createEmployee(t, "Solo", "QA Engineer", 40)

	project := env.createProject(t, "Portal", "Other")
	task := env.createTask(t, project.ID, "Design", 8)
	require.NoError(t, env.taskService().Assign(env.user.ID, task, AssignInput{EmployeeIDs: []uint64{working.ID}}))

	stats, err := env.analyticsService().RoleStaffing(env.user.ID)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	require.Equal(t, "Designer", stats[0].Role)
	require.Equal(t, 2, stats[0].Total)
	require.Equal(t, 1, stats[0].Working)
	require.Equal(t, "QA Engineer", stats[1].Role)
	require.Equal(t, 1, stats[1].Total)
	require.Equal(t, 0, stats[1].Working)
}

func TestAnalyticsService_TaskCompletion(t *testing.T) {
	env := setupServiceTestEnv(t)

	project := env.createProject(t, "Portal", "Other")
	env.createTask(t, project.ID, "Design", 8)
	done := env.createTask(t, project.ID, "Testing", 4)

	completed, err := env.taskRepo.FindByID(done.ID)
	require.NoError(t, err)
	_, err = env.taskService().ToggleCompletion(completed)
	require.NoError(t, err)

	stats, err := env.analyticsService().TaskCompletion(env.user.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.Total)
	require.Equal(t, int64(1), stats.Completed)
	require.Equal(t, int64(1), stats.Remaining)
}

func TestAnalyticsService_DashboardBucketsProjectsByMonth(t *testing.T) {
	env := setupServiceTestEnv(t)

	env.createProject(t, "March A", "Other")
	env.createProject(t, "March B", "Other")

	dashboard, err := env.analyticsService().Dashboard(env.user.ID)
	require.NoError(t, err)

	require.Len(t, dashboard.MonthlyProjects, 1)
	require.Equal(t, "2026-03", dashboard.MonthlyProjects[0].Month)
	require.Equal(t, 2, dashboard.MonthlyProjects[0].Count)

	require.Len(t, dashboard.ProjectProgress, 2)
}
