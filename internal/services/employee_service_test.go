package services

import (
	"testing"

	"github.com/skillboard/skillboard-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestEmployeeService_CreateAttachesRoleSkills(t *testing.T) {
	env := setupServiceTestEnv(t)

	employee := env.createEmployee(t, "Dana", "Designer", 40)

	loaded, err := env.employeeRepo.FindByID(employee.ID)
	require.NoError(t, err)

	names := make([]string, len(loaded.Skills))
	for i, skill := range loaded.Skills {
		names[i] = skill.Name
	}
	require.ElementsMatch(t, []string{"Design", "UI Design"}, names)
}

func TestEmployeeService_CreateUnknownRoleGetsNoSkills(t *testing.T) {
	env := setupServiceTestEnv(t)

	employee := env.createEmployee(t, "Dana", "Astronaut", 40)

	skillIDs, err := env.employeeRepo.SkillIDs(employee.ID)
	require.NoError(t, err)
	require.Empty(t, skillIDs)
}

func TestEmployeeService_ListComputesLoadOverIncompleteTasksOnly(t *testing.T) {
	env := setupServiceTestEnv(t)

	employee := env.createEmployee(t, "Dana", "Backend Developer", 40)
	project := env.createProject(t, "Portal", "Other")

	open := env.createTask(t, project.ID, "Backend API", 20)
	done := env.createTask(t, project.ID, "Testing", 15)
	require.NoError(t, env.taskService().Assign(env.user.ID, open, AssignInput{EmployeeIDs: []uint64{employee.ID}}))
	require.NoError(t, env.taskService().Assign(env.user.ID, done, AssignInput{EmployeeIDs: []uint64{employee.ID}}))

	completed, err := env.taskRepo.FindByID(done.ID)
	require.NoError(t, err)
	_, err = env.taskService().ToggleCompletion(completed)
	require.NoError(t, err)

	rows, err := env.employeeService().List(env.user.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 20.0, rows[0].CurrentLoad)
	require.Equal(t, 1, rows[0].TaskCount)
	require.Nil(t, rows[0].AverageRating)
}

func TestEmployeeService_ProfileIncludesLatestReviewPerTask(t *testing.T) {
	env := setupServiceTestEnv(t)

	employee := env.createEmployee(t, "Dana", "Backend Developer", 40)
	project := env.createProject(t, "Portal", "Other")
	task := env.createTask(t, project.ID, "Backend API", 35)
	require.NoError(t, env.taskService().Assign(env.user.ID, task, AssignInput{EmployeeIDs: []uint64{employee.ID}}))

	reviewService := NewReviewService(env.reviewRepo, env.employeeRepo, env.taskRepo, env.projectRepo)
	_, err := reviewService.Create(env.user.ID, CreateReviewInput{
		EmployeeID: employee.ID, TaskID: task.ID, Rating: 3, Comment: "fine",
	})
	require.NoError(t, err)
	latest, err := reviewService.Create(env.user.ID, CreateReviewInput{
		EmployeeID: employee.ID, TaskID: task.ID, Rating: 5, Comment: "great",
	})
	require.NoError(t, err)

	loaded, err := env.employeeRepo.FindByID(employee.ID)
	require.NoError(t, err)

	profile, err := env.employeeService().Profile(loaded)
	require.NoError(t, err)
	require.Equal(t, 35.0, profile.CurrentLoad)
	require.Equal(t, 88, profile.LoadPercent)
	require.NotNil(t, profile.AverageRating)
	require.Equal(t, 4.0, *profile.AverageRating)
	require.Len(t, profile.Tasks, 1)
	require.NotNil(t, profile.Tasks[0].Review)
	require.Equal(t, latest.ID, profile.Tasks[0].Review.ID)
}

func TestEmployeeService_ReleaseClearsAllAssignments(t *testing.T) {
	env := setupServiceTestEnv(t)

	employee := env.createEmployee(t, "Dana", "Backend Developer", 40)
	project := env.createProject(t, "Portal", "Other")
	first := env.createTask(t, project.ID, "Backend API", 10)
	second := env.createTask(t, project.ID, "Testing", 5)
	require.NoError(t, env.taskService().Assign(env.user.ID, first, AssignInput{EmployeeIDs: []uint64{employee.ID}}))
	require.NoError(t, env.taskService().Assign(env.user.ID, second, AssignInput{EmployeeIDs: []uint64{employee.ID}}))

	require.NoError(t, env.employeeService().Release(employee.ID))

	tasks, err := env.taskRepo.ListByProject(project.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		require.Nil(t, task.EmployeeID)
	}

	load, err := env.employeeRepo.LoadFor(employee.ID)
	require.NoError(t, err)
	require.Zero(t, load)
}

func TestEmployeeService_DeleteRemovesSkillLinksAndTasks(t *testing.T) {
	env := setupServiceTestEnv(t)

	employee := env.createEmployee(t, "Dana", "Backend Developer", 40)
	project := env.createProject(t, "Portal", "Other")
	task := env.createTask(t, project.ID, "Backend API", 10)
	require.NoError(t, env.taskService().Assign(env.user.ID, task, AssignInput{EmployeeIDs: []uint64{employee.ID}}))

	require.NoError(t, env.employeeService().Delete(employee.ID))

	_, err := env.employeeRepo.FindByID(employee.ID)
	require.Error(t, err)

	var linkCount int64
	require.NoError(t, env.db.Table("employee_skills").Where("employee_id = ?", employee.ID).Count(&linkCount).Error)
	require.Zero(t, linkCount)

	tasks, err := env.taskRepo.ListByProject(project.ID)
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestEmployeeService_SuggestedTasksMatchSkillsAndSkipAssigned(t *testing.T) {
	env := setupServiceTestEnv(t)

	employee := env.createEmployee(t, "Dana", "Designer", 40)
	project := env.createProject(t, "Portal", "Other")

	design := env.createTask(t, project.ID, "Design", 8)
	taken := env.createTask(t, project.ID, "UI Design", 6)
	env.createTask(t, project.ID, "Backend API", 20)

	other := env.createEmployee(t, "Eli", "Designer", 40)
	require.NoError(t, env.taskService().Assign(env.user.ID, taken, AssignInput{EmployeeIDs: []uint64{other.ID}}))

	tasks, err := env.employeeService().SuggestedTasks(env.user.ID, employee.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, design.ID, tasks[0].ID)
}

func TestEmployeeService_ImportValidatesNamesBeforeWriting(t *testing.T) {
	env := setupServiceTestEnv(t)

	_, err := env.employeeService().Import(env.user.ID, []ImportRow{
		{Name: "Dana", Role: "QA Engineer", WeeklyHours: 40},
		{Name: "   ", Role: "Designer", WeeklyHours: 35},
	})
	require.ErrorIs(t, err, ErrEmployeeNameRequired)

	var count int64
	require.NoError(t, env.db.Model(&models.Employee{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestEmployeeService_ImportInsertsAllRows(t *testing.T) {
	env := setupServiceTestEnv(t)

	count, err := env.employeeService().Import(env.user.ID, []ImportRow{
		{Name: "Dana", Role: "QA Engineer", WeeklyHours: 40},
		{Name: "Eli", Role: "Designer", WeeklyHours: 35},
	})
	require.NoError(t, err)
	require.Equal(t, 2, count)

	rows, err := env.employeeService().List(env.user.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}
