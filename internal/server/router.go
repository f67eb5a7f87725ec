package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/family-task-api/internal/config"
	"github.com/yukikurage/family-task-api/internal/database"
	"github.com/yukikurage/family-task-api/internal/handlers"
	"github.com/yukikurage/family-task-api/internal/middleware"
	"github.com/yukikurage/family-task-api/internal/repository"
	"github.com/yukikurage/family-task-api/internal/services"
)

// NewRouter wires repositories, services and handlers onto a gin engine.
func NewRouter(cfg *config.Config, pool *database.DatabasePool, log *slog.Logger) *gin.Engine {
	// Initialize repositories
	userRepo := repository.NewUserRepository(pool.DB)
	workspaceRepo := repository.NewWorkspaceRepository(pool.DB)
	taskRepo := repository.NewTaskRepository(pool.DB)

	// Initialize services
	workspaceService := services.NewWorkspaceService(workspaceRepo)
	authService := services.NewAuthService(userRepo, workspaceService, services.NewPasswordHasher(cfg.BCryptCost), services.AuthOptions{
		PasscodeLength:  cfg.PasscodeLength,
		RequirePasscode: cfg.RequireWorkspacePasscode,
	})
	taskService := services.NewTaskService(taskRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	workspaceHandler := handlers.NewWorkspaceHandler(workspaceService)
	healthHandler := handlers.NewHealthHandler(pool, log)

	r := gin.New()
	r.Use(middleware.RecoveryWithLog(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/health", healthHandler.Health)

	api := r.Group("")
	if cfg.RateLimitEnabled {
		api.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}
	{
		api.POST("/signup", authHandler.Signup)
		api.POST("/login", authHandler.Login)

		api.POST("/tasks", taskHandler.CreateTask)
		api.GET("/tasks/:workspace_code", taskHandler.ListTasks)
		api.PUT("/tasks/complete/:task_id", middleware.ParseTaskID(), taskHandler.CompleteTask)

		api.GET("/workspaces/:workspace_code/members", workspaceHandler.ListMembers)

		// Legacy paths still used by older clients
		api.POST("/add_task", taskHandler.CreateTask)
		api.GET("/get_tasks/:workspace_code", taskHandler.ListTasks)
		api.PUT("/complete_task/:task_id", middleware.ParseTaskID(), taskHandler.CompleteTask)
	}

	return r
}
