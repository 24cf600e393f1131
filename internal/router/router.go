package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/portfolio/backend/internal/api"
	"github.com/pageza/portfolio/backend/internal/middleware"
	"github.com/sirupsen/logrus"
)

// Deps is everything the router mounts.
type Deps struct {
	Handlers    *api.Handlers
	Health      *api.HealthHandler
	CORSOrigins []string
	Logger      logrus.FieldLogger
}

// SetupRouter configures the application routes
func SetupRouter(d Deps) *gin.Engine {
	router := gin.New()

	log := d.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	router.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(),
		middleware.CORS(d.CORSOrigins),
	)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, middleware.ErrorResponse{Error: "route not found"})
	})

	router.GET("/health", d.Health.HealthCheck)

	apiGroup := router.Group("/api")
	apiGroup.GET("/health", d.Health.HealthCheck)
	d.Handlers.RegisterRoutes(apiGroup)

	return router
}
