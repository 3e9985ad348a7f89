package projects

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chimlimhao/SpeechDataPrepTool/api/types"
	apperrors "github.com/chimlimhao/SpeechDataPrepTool/pkg/errors"
)

// List returns all projects owned by the caller
// @Summary      List projects
// @Description  Returns the caller's projects, newest first
// @Tags         projects
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  types.ErrorResponse
// @Failure      500  {object}  types.ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/projects [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := types.CurrentUserID(c)
		list, err := deps.ProjectService.ListProjects(c.Request.Context(), userID)
		if err != nil {
			log.Printf("[ERROR] Failed to list projects for user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to list projects"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"projects": list,
			"count":    len(list),
		})
	}
}

// GetByID returns a single project owned by the caller
// @Summary      Get project
// @Description  Returns one project with its processing status and progress
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  models.Project
// @Failure      401  {object}  types.ErrorResponse
// @Failure      404  {object}  types.ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/projects/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID := c.Param("id")
		userID := types.CurrentUserID(c)

		project, err := deps.ProjectService.GetProject(c.Request.Context(), projectID, userID)
		if err != nil {
			log.Printf("[WARN] Project %s lookup failed for user %s: %v", projectID, userID, err)
			c.JSON(apperrors.GetHTTPCode(err), types.ErrorResponse{Error: "Project not found"})
			return
		}

		c.JSON(http.StatusOK, project)
	}
}
