package students

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chimlimhao/SpeechDataPrepTool/api/types"
	apperrors "github.com/chimlimhao/SpeechDataPrepTool/pkg/errors"
)

// Delete removes a student from the roster
// @Summary      Delete student
// @Description  Removes one student by numeric ID
// @Tags         students
// @Produce      json
// @Param        id   path      int  true  "Student ID"
// @Success      200  {object}  types.MessageResponse
// @Failure      400  {object}  types.ErrorResponse
// @Failure      404  {object}  types.ErrorResponse
// @Router       /api/v1/students/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		studentID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid student ID"})
			return
		}

		if err := deps.StudentService.DeleteStudent(c.Request.Context(), studentID); err != nil {
			log.Printf("[WARN] Failed to delete student %d: %v", studentID, err)
			c.JSON(apperrors.GetHTTPCode(err), types.ErrorResponse{Error: "Student not found"})
			return
		}

		c.JSON(http.StatusOK, types.MessageResponse{Message: "Student deleted"})
	}
}
