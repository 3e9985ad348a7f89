package students

import (
	"github.com/gin-gonic/gin"

	"github.com/chimlimhao/SpeechDataPrepTool/api/types"
)

// RegisterRoutes registers student roster routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/students - List all students
	router.GET("", List(deps))

	// GET /api/v1/students/:id - Get a single student
	router.GET("/:id", GetByID(deps))

	// POST /api/v1/students - Add a student
	router.POST("", Create(deps))

	// POST /api/v1/students/batch - Add several students at once
	router.POST("/batch", CreateBatch(deps))

	// DELETE /api/v1/students/:id - Remove a student
	router.DELETE("/:id", Delete(deps))
}
