package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chimlimhao/SpeechDataPrepTool/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Reports service liveness and database connectivity
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		if deps != nil && deps.DB != nil {
			if err := deps.DB.HealthCheck(); err != nil {
				response["database"] = gin.H{"status": "unhealthy", "error": err.Error()}
			} else {
				response["database"] = gin.H{"status": "healthy"}
			}
		} else {
			response["database"] = gin.H{"status": "not configured"}
		}

		c.JSON(http.StatusOK, response)
	}
}
