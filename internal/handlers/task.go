package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/family-task-api/internal/constants"
	"github.com/yukikurage/family-task-api/internal/dto"
	apierrors "github.com/yukikurage/family-task-api/internal/errors"
	"github.com/yukikurage/family-task-api/internal/middleware"
	"github.com/yukikurage/family-task-api/internal/services"
	"github.com/yukikurage/family-task-api/internal/utils"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask adds a task to a workspace
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		WorkspaceCode string `json:"workspace_code" binding:"required"`
		TaskName      string `json:"task_name" binding:"required"`
		AssignedBy    uint64 `json:"assigned_by" binding:"max=9223372036854775807"`
		AssignedTo    uint64 `json:"assigned_to" binding:"max=9223372036854775807"`
		DueDate       string `json:"due_date" binding:"required"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	dueDate, err := utils.ParseDueDate(req.DueDate)
	if err != nil {
		apierrors.BadRequestWithDetails(c, err.Error(), gin.H{"field": "due_date"})
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), services.CreateTaskInput{
		WorkspaceCode: req.WorkspaceCode,
		TaskName:      req.TaskName,
		AssignedBy:    req.AssignedBy,
		AssignedTo:    req.AssignedTo,
		DueDate:       dueDate,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TaskCreatedResponse{
		TaskID:  task.ID,
		Message: constants.MessageTaskAdded,
	})
}

// ListTasks returns a workspace's tasks ordered by due date
func (h *TaskHandler) ListTasks(c *gin.Context) {
	rows, err := h.taskService.ListTasks(c.Request.Context(), c.Param("workspace_code"))
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(rows))
}

// CompleteTask marks a task completed
// Task ID is parsed by the ParseTaskID middleware
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	taskID, ok := middleware.GetTaskID(c)
	if !ok {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	if _, err := h.taskService.CompleteTask(c.Request.Context(), taskID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: constants.MessageTaskCompleted})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNameRequired),
		errors.Is(err, services.ErrWorkspaceCodeRequired),
		errors.Is(err, services.ErrInvalidTask):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		_ = c.Error(err)
		apierrors.InternalError(c, "Internal server error")
	}
}
