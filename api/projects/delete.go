package projects

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/chimlimhao/SpeechDataPrepTool/api/types"
	apperrors "github.com/chimlimhao/SpeechDataPrepTool/pkg/errors"
)

// Delete removes a project owned by the caller
// @Summary      Delete project
// @Description  Soft-deletes one project and hides it from listings
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  types.MessageResponse
// @Failure      401  {object}  types.ErrorResponse
// @Failure      404  {object}  types.ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/projects/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID := c.Param("id")
		userID := types.CurrentUserID(c)

		if err := deps.ProjectService.DeleteProject(c.Request.Context(), projectID, userID); err != nil {
			log.Printf("[WARN] Failed to delete project %s for user %s: %v", projectID, userID, err)
			c.JSON(apperrors.GetHTTPCode(err), types.ErrorResponse{Error: "Project not found"})
			return
		}

		c.JSON(200, types.MessageResponse{Message: "Project deleted"})
	}
}
