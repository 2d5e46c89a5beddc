package services

import (
	"testing"

	"github.com/skillboard/skillboard-api/internal/models"
	"github.com/stretchr/testify/require"
)

func (env serviceTestEnv) reviewService() *ReviewService {
	return NewReviewService(env.reviewRepo, env.employeeRepo, env.taskRepo, env.projectRepo)
}

func TestReviewService_CreateRejectsOutOfRangeRating(t *testing.T) {
	env := setupServiceTestEnv(t)

	employee := env.createEmployee(t, "Dana", "Designer", 40)
	project := env.createProject(t, "Portal", "Other")
	task := env.createTask(t, project.ID, "Design", 8)

	for _, rating := range []int{0, 6, -1} {
		_, err := env.reviewService().Create(env.user.ID, CreateReviewInput{
			EmployeeID: employee.ID, TaskID: task.ID, Rating: rating,
		})
		require.ErrorIs(t, err, ErrInvalidRating)
	}
}

func TestReviewService_CreateRejectsForeignEmployee(t *testing.T) {
	env := setupServiceTestEnv(t)

	other := &models.User{Username: "other", PasswordHash: "x"}
	require.NoError(t, env.db.Create(other).Error)
	foreign := &models.Employee{UserID: other.ID, Name: "Mallory", Role: "Designer", WeeklyHours: 40}
	require.NoError(t, env.db.Create(foreign).Error)

	project := env.createProject(t, "Portal", "Other")
	task := env.createTask(t, project.ID, "Design", 8)

	_, err := env.reviewService().Create(env.user.ID, CreateReviewInput{
		EmployeeID: foreign.ID, TaskID: task.ID, Rating: 4,
	})
	require.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestReviewService_CreateRejectsForeignTask(t *testing.T) {
	env := setupServiceTestEnv(t)

	employee := env.createEmployee(t, "Dana", "Designer", 40)

	other := &models.User{Username: "other", PasswordHash: "x"}
	require.NoError(t, env.db.Create(other).Error)
	foreignProject := &models.Project{UserID: other.ID, Name: "Theirs", StartDate: employee.CreatedAt, Deadline: employee.CreatedAt}
	require.NoError(t, env.db.Create(foreignProject).Error)
	skill, err := env.skillRepo.FindByName("Design")
	require.NoError(t, err)
	foreignTask := &models.Task{ProjectID: foreignProject.ID, SkillID: skill.ID, EstimatedHours: 5, Deadline: employee.CreatedAt}
	require.NoError(t, env.db.Create(foreignTask).Error)

	_, err = env.reviewService().Create(env.user.ID, CreateReviewInput{
		EmployeeID: employee.ID, TaskID: foreignTask.ID, Rating: 4,
	})
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestReviewService_ReviewsAreAppendOnlyAndPaged(t *testing.T) {
	env := setupServiceTestEnv(t)

	employee := env.createEmployee(t, "Dana", "Designer", 40)
	project := env.createProject(t, "Portal", "Other")
	task := env.createTask(t, project.ID, "Design", 8)

	for rating := 1; rating <= 5; rating++ {
		_, err := env.reviewService().Create(env.user.ID, CreateReviewInput{
			EmployeeID: employee.ID, TaskID: task.ID, Rating: rating,
		})
		require.NoError(t, err)
	}

	page, total, err := env.employeeService().Reviews(employee.ID, 2, 0)
	require.NoError(t, err)
	require.Equal(t, int64(5), total)
	require.Len(t, page, 2)

	rest, _, err := env.employeeService().Reviews(employee.ID, 10, 2)
	require.NoError(t, err)
	require.Len(t, rest, 3)
}
