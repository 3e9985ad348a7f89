package projects

import (
	"github.com/gin-gonic/gin"

	"github.com/chimlimhao/SpeechDataPrepTool/api/types"
)

// RegisterRoutes registers project management routes. processMiddleware is the
// stricter rate limit applied to the processing entrypoint.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, processMiddleware gin.HandlerFunc) {
	// POST /api/v1/projects - Create a project
	router.POST("", Create(deps))

	// GET /api/v1/projects - List the caller's projects
	router.GET("", List(deps))

	// GET /api/v1/projects/:id - Get a single project
	router.GET("/:id", GetByID(deps))

	// DELETE /api/v1/projects/:id - Delete a project
	router.DELETE("/:id", Delete(deps))

	// POST /api/v1/projects/:id/files - Register an uploaded recording
	router.POST("/:id/files", AddFile(deps))

	// GET /api/v1/projects/:id/files - List a project's recordings
	router.GET("/:id/files", ListFiles(deps))

	// POST /api/v1/projects/:id/process - Run the processing pipeline
	router.POST("/:id/process", processMiddleware, Process(deps))
}
