package middleware

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/family-task-api/internal/constants"
	apierrors "github.com/yukikurage/family-task-api/internal/errors"
)

// ParseTaskID validates the :task_id path parameter and stores it in the
// context. Lookup of the task itself is left to the handler. IDs beyond the
// signed 64-bit range cannot be stored, so they are reported as not found.
func ParseTaskID() gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID, err := strconv.ParseUint(c.Param("task_id"), 10, 64)
		if err != nil || taskID == 0 {
			apierrors.BadRequest(c, "Invalid task ID")
			return
		}
		if taskID > math.MaxInt64 {
			apierrors.NotFound(c, "task not found")
			return
		}

		c.Set(constants.ContextKeyTaskID, taskID)
		c.Next()
	}
}

// GetTaskID retrieves the task ID stored by ParseTaskID
func GetTaskID(c *gin.Context) (uint64, bool) {
	taskID, exists := c.Get(constants.ContextKeyTaskID)
	if !exists {
		return 0, false
	}

	id, ok := taskID.(uint64)
	return id, ok
}
