package projects

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chimlimhao/SpeechDataPrepTool/api/types"
	apperrors "github.com/chimlimhao/SpeechDataPrepTool/pkg/errors"
)

// Process runs the denoise and transcription pipeline over a project
// @Summary      Process project
// @Description  Denoises and transcribes every pending recording of the project. Individual file failures are recorded and skipped; the run keeps going.
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  types.ProcessResponse
// @Failure      401  {object}  types.ErrorResponse
// @Failure      404  {object}  types.ErrorResponse
// @Failure      500  {object}  types.ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/projects/{id}/process [post]
func Process(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID := c.Param("id")
		userID := types.CurrentUserID(c)

		log.Printf("[INFO] Processing requested for project %s by user %s", projectID, userID)
		summary, err := deps.Runner.Run(c.Request.Context(), projectID, userID)
		if err != nil {
			log.Printf("[ERROR] Processing run failed for project %s: %v", projectID, err)
			c.JSON(apperrors.GetHTTPCode(err), types.ErrorResponse{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, types.ProcessResponse{
			Message:        "Processing finished",
			TotalFiles:     summary.TotalFiles,
			ProcessedFiles: summary.ProcessedFiles,
			Status:         string(summary.Status),
		})
	}
}
