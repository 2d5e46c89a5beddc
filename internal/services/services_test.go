package services

import (
	"testing"
	"time"

	"github.com/skillboard/skillboard-api/internal/config"
	"github.com/skillboard/skillboard-api/internal/database"
	"github.com/skillboard/skillboard-api/internal/models"
	"github.com/skillboard/skillboard-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type serviceTestEnv struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	employeeRepo repository.EmployeeRepository
	skillRepo    repository.SkillRepository
	projectRepo  repository.ProjectRepository
	taskRepo     repository.TaskRepository
	reviewRepo   repository.ReviewRepository
	user         *models.User
}

func setupServiceTestEnv(t *testing.T) serviceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.Employee{},
		&models.Project{},
		&models.Task{},
		&models.Review{},
		&models.TaskTemplate{},
	)
	require.NoError(t, err)

	require.NoError(t, database.Seed(db))

	user := &models.User{Username: "owner", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return serviceTestEnv{
		db:           db,
		userRepo:     repository.NewUserRepository(db),
		employeeRepo: repository.NewEmployeeRepository(db),
		skillRepo:    repository.NewSkillRepository(db),
		projectRepo:  repository.NewProjectRepository(db),
		taskRepo:     repository.NewTaskRepository(db),
		reviewRepo:   repository.NewReviewRepository(db),
		user:         user,
	}
}

func (env serviceTestEnv) employeeService() *EmployeeService {
	return NewEmployeeService(env.employeeRepo, env.skillRepo, env.taskRepo, env.reviewRepo, config.DefaultRoleSkills())
}

func (env serviceTestEnv) projectService() *ProjectService {
	return NewProjectService(env.projectRepo, env.taskRepo, env.skillRepo)
}

func (env serviceTestEnv) taskService() *TaskService {
	return NewTaskService(env.taskRepo, env.employeeRepo, env.projectRepo)
}

func (env serviceTestEnv) createEmployee(t *testing.T, name, role string, weeklyHours float64) *models.Employee {
	t.Helper()
	employee, err := env.employeeService().Create(env.user.ID, CreateEmployeeInput{
		Name:        name,
		Role:        role,
		WeeklyHours: weeklyHours,
	})
	require.NoError(t, err)
	return employee
}

func (env serviceTestEnv) createProject(t *testing.T, name, projectType string) *models.Project {
	t.Helper()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	project, err := env.projectService().Create(env.user.ID, CreateProjectInput{
		Name:      name,
		Client:    "Acme",
		StartDate: start,
		Deadline:  start.AddDate(0, 2, 0),
		Type:      projectType,
	})
	require.NoError(t, err)
	return project
}

func (env serviceTestEnv) createTask(t *testing.T, projectID uint64, skillName string, hours float64) *models.Task {
	t.Helper()
	skill, err := env.skillRepo.FindByName(skillName)
	require.NoError(t, err)

	task, err := env.taskService().Create(projectID, CreateTaskInput{
		SkillID:        skill.ID,
		EstimatedHours: hours,
		Deadline:       time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return task
}
