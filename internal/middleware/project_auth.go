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

// RequireProjectAccess loads the project named by the :id parameter and
// verifies ownership. An absent project is 404; one belonging to another user
// is 403. On success the project is stored in the context.
func RequireProjectAccess(projectRepo repository.ProjectRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			c.Abort()
			return
		}

		projectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			errors.BadRequest(c, "Invalid project ID")
			c.Abort()
			return
		}

		project, err := projectRepo.FindByID(projectID)
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				errors.NotFound(c, "Project not found")
			} else {
				errors.InternalError(c, "")
			}
			c.Abort()
			return
		}

		if project.UserID != userID {
			errors.Forbidden(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyProject, project)
		c.Next()
	}
}

// GetProject retrieves the project loaded by RequireProjectAccess.
func GetProject(c *gin.Context) (*models.Project, bool) {
	value, exists := c.Get(constants.ContextKeyProject)
	if !exists {
		return nil, false
	}
	project, ok := value.(*models.Project)
	return project, ok
}
