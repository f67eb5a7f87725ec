package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/family-task-api/internal/constants"
	"github.com/yukikurage/family-task-api/internal/dto"
)

// HealthChecker is implemented by database.DatabasePool
type HealthChecker interface {
	Health(ctx context.Context) error
}

type HealthHandler struct {
	checker HealthChecker
	log     *slog.Logger
}

func NewHealthHandler(checker HealthChecker, log *slog.Logger) *HealthHandler {
	return &HealthHandler{
		checker: checker,
		log:     log,
	}
}

// Health always answers 200; storage failures are reported in the body.
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.checker.Health(c.Request.Context()); err != nil {
		h.log.Warn("health check failed", "error", err)
		c.JSON(http.StatusOK, dto.HealthResponse{
			Status:  constants.HealthStatusError,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  constants.HealthStatusOK,
		Message: constants.MessageHealthy,
	})
}
