package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/skillboard/skillboard-api/internal/config"
	"github.com/skillboard/skillboard-api/internal/middleware"
	"github.com/skillboard/skillboard-api/internal/repository"
	"github.com/skillboard/skillboard-api/internal/services"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services, handlers and middleware into the
// full API surface.
func NewRouter(db *gorm.DB, cfg *config.Config, roleSkills config.RoleSkills) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenLifetime)
	employeeService := services.NewEmployeeService(employeeRepo, skillRepo, taskRepo, reviewRepo, roleSkills)
	projectService := services.NewProjectService(projectRepo, taskRepo, skillRepo)
	taskService := services.NewTaskService(taskRepo, employeeRepo, projectRepo)
	reviewService := services.NewReviewService(reviewRepo, employeeRepo, taskRepo, projectRepo)
	analyticsService := services.NewAnalyticsService(analyticsRepo)

	authHandler := NewAuthHandler(authService)
	employeeHandler := NewEmployeeHandler(employeeService)
	projectHandler := NewProjectHandler(projectService, taskService)
	taskHandler := NewTaskHandler(taskService)
	reviewHandler := NewReviewHandler(reviewService)
	skillHandler := NewSkillHandler(skillRepo)
	statsHandler := NewStatsHandler(analyticsService)
	fileHandler := NewFileHandler(employeeService)

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		requireAuth := middleware.RequireAuth([]byte(cfg.JWTSecret))

		employees := api.Group("/employees")
		employees.Use(requireAuth)
		{
			employees.POST("", employeeHandler.Create)
			employees.GET("", employeeHandler.List)

			withEmployee := middleware.RequireEmployeeAccess(employeeRepo)
			employees.GET("/:id", withEmployee, employeeHandler.Get)
			employees.PUT("/:id", withEmployee, employeeHandler.Update)
			employees.DELETE("/:id", withEmployee, employeeHandler.Delete)
			employees.PATCH("/:id/release", withEmployee, employeeHandler.Release)
			employees.GET("/:id/reviews", withEmployee, employeeHandler.Reviews)
			employees.GET("/:id/suggested-tasks", withEmployee, employeeHandler.SuggestedTasks)
		}

		projects := api.Group("/projects")
		projects.Use(requireAuth)
		{
			projects.POST("", projectHandler.Create)
			projects.GET("", projectHandler.List)

			withProject := middleware.RequireProjectAccess(projectRepo)
			projects.GET("/:id", withProject, projectHandler.Get)
			projects.PUT("/:id", withProject, projectHandler.Update)
			projects.DELETE("/:id", withProject, projectHandler.Delete)
			projects.GET("/:id/tasks", withProject, projectHandler.ListTasks)
			projects.POST("/:id/tasks", withProject, projectHandler.AddTask)
		}

		tasks := api.Group("/tasks")
		tasks.Use(requireAuth)
		{
			tasks.POST("", taskHandler.Create)

			withTask := middleware.RequireTaskAccess(taskRepo, projectRepo)
			tasks.GET("/:id", withTask, taskHandler.Get)
			tasks.PUT("/:id", withTask, taskHandler.Update)
			tasks.DELETE("/:id", withTask, taskHandler.Delete)
			tasks.POST("/:id/assign", withTask, taskHandler.Assign)
			tasks.PATCH("/:id/unassign", withTask, taskHandler.Unassign)
			tasks.PATCH("/:id/toggle-completion", withTask, taskHandler.ToggleCompletion)
			tasks.GET("/:id/candidates", withTask, taskHandler.Candidates)
		}

		reviews := api.Group("/reviews")
		reviews.Use(requireAuth)
		{
			reviews.POST("", reviewHandler.Create)
		}

		skills := api.Group("/skills")
		skills.Use(requireAuth)
		{
			skills.GET("", skillHandler.List)
		}

		stats := api.Group("/stats")
		stats.Use(requireAuth)
		{
			stats.GET("/summary", statsHandler.Summary)
			stats.GET("/bench", statsHandler.Bench)
			stats.GET("/availability", statsHandler.Availability)
			stats.GET("/projects", statsHandler.Projects)
			stats.GET("/task-completion", statsHandler.TaskCompletion)
			stats.GET("/role-staffing", statsHandler.Roles)
			stats.GET("/dashboard", statsHandler.Dashboard)
		}

		files := api.Group("/files")
		files.Use(requireAuth)
		{
			files.POST("/employees", fileHandler.Import)
			files.GET("/employees", fileHandler.Export)
		}
	}

	return r
}
