package router

import (
	"net/http"

	"user-directory-service/api/swagger"
	"user-directory-service/internal/adapter/gin/handler"
	"user-directory-service/internal/adapter/gin/middleware"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// Options controls the optional parts of the router
type Options struct {
	SwaggerEnabled bool
	Metrics        *middleware.Metrics     // nil disables /metrics
	RateLimiter    *middleware.RateLimiter // nil disables rate limiting
}

// SetupRouter configures and returns a Gin router with all routes and middleware.
// Anything no route claims falls through to the static handler.
func SetupRouter(
	userHandler *handler.UserHandler,
	staticHandler *handler.StaticHandler,
	opts Options,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware. Recovery sits inside Logger and Metrics so a
	// panicked request is still logged and counted as a 500.
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware())
	}
	router.Use(middleware.Recovery(log))
	if opts.RateLimiter != nil {
		router.Use(opts.RateLimiter.Middleware())
	}

	router.GET("/health", handler.Health)
	if opts.Metrics != nil {
		router.GET(middleware.MetricsPath, gin.WrapH(opts.Metrics.Handler()))
	}

	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
		}
	}

	if opts.SwaggerEnabled {
		router.GET("/openapi.json", func(c *gin.Context) {
			c.Data(http.StatusOK, "application/json", swagger.Document)
		})
		router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/openapi.json"),
		)))
	}

	router.NoRoute(staticHandler.Serve)

	return router
}
