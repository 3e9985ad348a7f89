package projects

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chimlimhao/SpeechDataPrepTool/api/types"
	apperrors "github.com/chimlimhao/SpeechDataPrepTool/pkg/errors"
)

// ProjectRequest represents the request body for creating a project
type ProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// Create handles creating a new draft project
// @Summary      Create project
// @Description  Creates a new draft project owned by the caller
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request  body      ProjectRequest  true  "Project details"
// @Success      201      {object}  models.Project
// @Failure      400      {object}  types.ErrorResponse
// @Failure      401      {object}  types.ErrorResponse
// @Failure      500      {object}  types.ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/projects [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid request body"})
			return
		}

		userID := types.CurrentUserID(c)
		project, err := deps.ProjectService.CreateProject(c.Request.Context(), userID, req.Name, req.Description)
		if err != nil {
			log.Printf("[ERROR] Failed to create project for user %s: %v", userID, err)
			c.JSON(apperrors.GetHTTPCode(err), types.ErrorResponse{Error: "Failed to create project"})
			return
		}

		c.JSON(http.StatusCreated, project)
	}
}
