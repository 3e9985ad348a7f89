package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Build metadata, set via ldflags at release time
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// Get handles version requests
// @Summary      Version
// @Description  Reports the running build version
// @Tags         version
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /version [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "Speech Data Prep API",
			"version": Version,
			"commit":  GitCommit,
		})
	}
}
