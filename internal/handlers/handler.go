package handlers

import (
	"taskmanager/internal/logger"
	"taskmanager/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery(), h.requestID, h.requestLogger)
	router.NoRoute(h.noRoute)
	router.NoMethod(h.noMethod)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.POST("/login", h.login)
	r.POST("/register", h.register)
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/", h.authenticate)
	{
		api.POST("/activate", h.activate)
		h.registerUserRoutes(api)
		h.registerProjectRoutes(api)
		h.registerTaskRoutes(api)
		h.registerLabelRoutes(api)
	}
}

func (h *Handler) registerUserRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	{
		users.GET("/all", h.requireAdmin, h.listUsers)
		users.GET("/:id", h.getUser)
		users.PUT("/:id", h.updateUser)
		users.DELETE("/:id", h.deleteUser)
		users.POST("/:id/verification", h.issueVerification)
	}
}

func (h *Handler) registerProjectRoutes(api *gin.RouterGroup) {
	projects := api.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("/all", h.listProjects)
		projects.GET("/:id", h.getProject)
		projects.PUT("/:id", h.updateProject)
		projects.DELETE("/:id", h.deleteProject)
		projects.POST("/:id/labels", h.attachProjectLabels)
		projects.DELETE("/:id/labels", h.detachProjectLabel)
	}
}

func (h *Handler) registerTaskRoutes(api *gin.RouterGroup) {
	tasks := api.Group("/tasks")
	{
		tasks.POST("", h.createTask)
		tasks.GET("/all", h.listTasks)
		// ?interval=2s or ?interval_ms=2000
		tasks.GET("/stream", h.streamTasks)
		tasks.GET("/:id", h.getTask)
		tasks.PUT("/:id", h.updateTask)
		tasks.DELETE("/:id", h.deleteTask)
		tasks.POST("/:id/labels", h.attachTaskLabels)
		tasks.DELETE("/:id/labels", h.detachTaskLabel)
	}
}

func (h *Handler) registerLabelRoutes(api *gin.RouterGroup) {
	labels := api.Group("/labels")
	{
		labels.POST("", h.createLabel)
		labels.GET("/all", h.listLabels)
		labels.GET("/:id", h.getLabel)
		labels.PUT("/:id", h.updateLabel)
		labels.DELETE("/:id", h.deleteLabel)
	}
}
