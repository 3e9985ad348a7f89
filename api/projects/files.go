package projects

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chimlimhao/SpeechDataPrepTool/api/types"
	apperrors "github.com/chimlimhao/SpeechDataPrepTool/pkg/errors"
)

// FileRequest represents the request body for registering an uploaded recording.
// FilePath is the object path inside the blob store where the raw audio
// already lives.
type FileRequest struct {
	FilePath  string `json:"file_path" binding:"required"`
	SizeBytes int64  `json:"size_bytes"`
}

// AddFile registers an uploaded recording with a project
// @Summary      Register recording
// @Description  Records an uploaded audio file as pending processing
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id       path      string       true  "Project ID"
// @Param        request  body      FileRequest  true  "Recording location"
// @Success      201      {object}  models.AudioFile
// @Failure      400      {object}  types.ErrorResponse
// @Failure      401      {object}  types.ErrorResponse
// @Failure      404      {object}  types.ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/projects/{id}/files [post]
func AddFile(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID := c.Param("id")
		userID := types.CurrentUserID(c)

		var req FileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid request body"})
			return
		}

		file, err := deps.ProjectService.AddAudioFile(c.Request.Context(), projectID, userID, req.FilePath, req.SizeBytes)
		if err != nil {
			log.Printf("[ERROR] Failed to add file to project %s: %v", projectID, err)
			c.JSON(apperrors.GetHTTPCode(err), types.ErrorResponse{Error: "Failed to register recording"})
			return
		}

		c.JSON(http.StatusCreated, file)
	}
}

// ListFiles returns all recordings of a project
// @Summary      List recordings
// @Description  Returns every audio file of a project with per-file status
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  types.ErrorResponse
// @Failure      404  {object}  types.ErrorResponse
// @Security     BearerAuth
// @Router       /api/v1/projects/{id}/files [get]
func ListFiles(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID := c.Param("id")
		userID := types.CurrentUserID(c)

		files, err := deps.ProjectService.ListAudioFiles(c.Request.Context(), projectID, userID)
		if err != nil {
			log.Printf("[WARN] Failed to list files of project %s: %v", projectID, err)
			c.JSON(apperrors.GetHTTPCode(err), types.ErrorResponse{Error: "Project not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"files": files,
			"count": len(files),
		})
	}
}
