package middleware

import (
	stderrors "errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillboard/skillboard-api/internal/constants"
	"github.com/skillboard/skillboard-api/internal/errors"
	"github.com/skillboard/skillboard-api/internal/models"
	"github.com/skillboard/skillboard-api/internal/repository"
	"gorm.io/gorm"
)

// RequireTaskAccess loads the task named by the :id parameter and verifies
// ownership through the task's project. An absent task is 404; one whose
// project belongs to another user is 403. On success the task is stored in
// the context.
func RequireTaskAccess(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			c.Abort()
			return
		}

		taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			errors.BadRequest(c, "Invalid task ID")
			c.Abort()
			return
		}

		task, err := taskRepo.FindByID(taskID, "Skill", "Employee")
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				errors.NotFound(c, "Task not found")
			} else {
				errors.InternalError(c, "")
			}
			c.Abort()
			return
		}

		project, err := projectRepo.FindByID(task.ProjectID)
		if err != nil {
			errors.InternalError(c, "")
			c.Abort()
			return
		}

		if project.UserID != userID {
			errors.Forbidden(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyTask, task)
		c.Next()
	}
}

// GetTask retrieves the task loaded by RequireTaskAccess.
func GetTask(c *gin.Context) (*models.Task, bool) {
	value, exists := c.Get(constants.ContextKeyTask)
	if !exists {
		return nil, false
	}
	task, ok := value.(*models.Task)
	return task, ok
}
