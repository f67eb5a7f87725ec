package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/family-task-api/internal/dto"
	apierrors "github.com/yukikurage/family-task-api/internal/errors"
	"github.com/yukikurage/family-task-api/internal/services"
)

type WorkspaceHandler struct {
	workspaceService *services.WorkspaceService
}

func NewWorkspaceHandler(workspaceService *services.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceService: workspaceService,
	}
}

// ListMembers returns the users sharing a workspace code
func (h *WorkspaceHandler) ListMembers(c *gin.Context) {
	members, err := h.workspaceService.Members(c.Request.Context(), c.Param("workspace_code"))
	if err != nil {
		_ = c.Error(err)
		apierrors.InternalError(c, "Failed to list workspace members")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceMemberDTOs(members))
}
