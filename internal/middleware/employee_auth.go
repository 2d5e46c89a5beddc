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

// RequireEmployeeAccess loads the employee named by the :id parameter and
// verifies ownership. An absent employee is 404; one belonging to another
// user is 403. On success the employee is stored in the context.
func RequireEmployeeAccess(employeeRepo repository.EmployeeRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			c.Abort()
			return
		}

		employeeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			errors.BadRequest(c, "Invalid employee ID")
			c.Abort()
			return
		}

		employee, err := employeeRepo.FindByID(employeeID)
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				errors.NotFound(c, "Employee not found")
			} else {
				errors.InternalError(c, "")
			}
			c.Abort()
			return
		}

		if employee.UserID != userID {
			errors.Forbidden(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyEmployee, employee)
		c.Next()
	}
}

// GetEmployee retrieves the employee loaded by RequireEmployeeAccess.
func GetEmployee(c *gin.Context) (*models.Employee, bool) {
	value, exists := c.Get(constants.ContextKeyEmployee)
	if !exists {
		return nil, false
	}
	employee, ok := value.(*models.Employee)
	return employee, ok
}
