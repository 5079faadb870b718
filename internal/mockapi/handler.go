package mockapi

import (
	"net/http"

	"motor_seeder/internal/logger"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to the mock backend and logging.
type Handler struct {
	services *Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *Service, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	api := router.Group("/api")
	h.registerAuthRoutes(api)

	protected := api.Group("", h.userIdMiddleware)
	{
		h.registerModelRoutes(protected)
		h.registerInstanceRoutes(protected)
	}

	return router
}

func (h *Handler) registerAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/login", h.login)
	}
}

func (h *Handler) registerModelRoutes(api *gin.RouterGroup) {
	api.POST("/motor-models", h.createModel)
	api.GET("/motor-models", h.listModels)
	api.GET("/devices", h.listDevices)
}

func (h *Handler) registerInstanceRoutes(api *gin.RouterGroup) {
	api.POST("/motor-instances", h.createInstance)
	api.GET("/motor-instances", h.listInstances)

	instance := api.Group("/motor-instances/:id")
	{
		instance.POST("/mappings/batch", h.attachMappings)
		instance.POST("/modes", h.createMode)
		instance.POST("/learn-all", h.startLearning)
		instance.GET("/detail", h.detail)
		instance.POST("/diagnose", h.diagnose)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
