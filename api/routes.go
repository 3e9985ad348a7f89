package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/chimlimhao/SpeechDataPrepTool/api/health"
	"github.com/chimlimhao/SpeechDataPrepTool/api/projects"
	"github.com/chimlimhao/SpeechDataPrepTool/api/students"
	"github.com/chimlimhao/SpeechDataPrepTool/api/types"
	"github.com/chimlimhao/SpeechDataPrepTool/api/version"
	_ "github.com/chimlimhao/SpeechDataPrepTool/docs/swagger"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		return fmt.Errorf("handler dependencies are nil")
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Register student routes with general rate limiting (10 req/s, burst of 20)
	studentGroup := v1.Group("/students")
	studentGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	students.RegisterRoutes(studentGroup, deps)

	// Register project routes with general rate limiting (10 req/s, burst of 20).
	// Processing kicks off external tooling, so it gets a much stricter limit.
	projectGroup := v1.Group("/projects")
	projectGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	projectGroup.Use(RequireUser(deps.Verifier))
	processMiddleware := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 1, 2)
	projects.RegisterRoutes(projectGroup, deps, processMiddleware)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
