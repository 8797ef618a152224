package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/yukikurage/task-manager/internal/auth"
	"github.com/yukikurage/task-manager/internal/config"
	"github.com/yukikurage/task-manager/internal/handlers"
	"github.com/yukikurage/task-manager/internal/middleware"
	"github.com/yukikurage/task-manager/internal/repository"
	"github.com/yukikurage/task-manager/internal/services"
	"gorm.io/gorm"
)

// NewRouter wires services and handlers over db and mounts the API under cfg.BasePath.
// Metrics are registered on reg when enabled.
func NewRouter(cfg *config.Config, db *gorm.DB, reg *prometheus.Registry) *gin.Engine {
	store := repository.NewStore(db)
	tokens := auth.NewTokenService(cfg.SigningSecret(), cfg.JWTTTL, cfg.JWTIssuer)

	// Initialize services
	userService := services.NewUserService(store, cfg.BcryptCost)
	authService := services.NewAuthService(store.Users(), tokens)
	taskService := services.NewTaskService(store)
	statusService := services.NewTaskStatusService(store)
	labelService := services.NewLabelService(store)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskService)
	statusHandler := handlers.NewTaskStatusHandler(statusService)
	labelHandler := handlers.NewLabelHandler(labelService)
	healthHandler := handlers.NewHealthHandler(db)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	var metrics *middleware.Metrics
	if cfg.MetricsEnabled && reg != nil {
		metrics = middleware.NewMetrics(reg)
		r.Use(metrics.Middleware())
		r.GET("/metrics", gin.WrapH(middleware.MetricsHandler(reg)))
	}

	r.GET("/health", healthHandler.Health)
	r.GET("/welcome", healthHandler.Welcome)

	requireAuth := middleware.RequireAuth(tokens, metrics)

	api := r.Group(cfg.BasePath)
	{
		api.POST("/login", authHandler.Login)

		users := api.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", requireAuth, userHandler.ListUsers)
			users.GET("/:id", requireAuth, userHandler.GetUser)
			users.PUT("/:id", requireAuth, middleware.RequireUserOwner(userService, metrics), userHandler.UpdateUser)
			users.DELETE("/:id", requireAuth, middleware.RequireUserOwner(userService, metrics), userHandler.DeleteUser)
		}

		tasks := api.Group("/tasks")
		tasks.Use(requireAuth)
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", middleware.RequireTaskAuthor(taskService, metrics), taskHandler.DeleteTask)
		}

		statuses := api.Group("/statuses")
		statuses.Use(requireAuth)
		{
			statuses.GET("", statusHandler.ListStatuses)
			statuses.POST("", statusHandler.CreateStatus)
			statuses.GET("/:id", statusHandler.GetStatus)
			statuses.PUT("/:id", statusHandler.UpdateStatus)
			statuses.DELETE("/:id", statusHandler.DeleteStatus)
		}

		labels := api.Group("/labels")
		labels.Use(requireAuth)
		{
			labels.GET("", labelHandler.ListLabels)
			labels.POST("", labelHandler.CreateLabel)
			labels.GET("/:id", labelHandler.GetLabel)
			labels.PUT("/:id", labelHandler.UpdateLabel)
			labels.DELETE("/:id", labelHandler.DeleteLabel)
		}
	}

	return r
}
