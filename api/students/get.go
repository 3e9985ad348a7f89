package students

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chimlimhao/SpeechDataPrepTool/api/types"
	apperrors "github.com/chimlimhao/SpeechDataPrepTool/pkg/errors"
)

// List returns the full student roster
// @Summary      List students
// @Description  Returns all registered students ordered by ID
// @Tags         students
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  types.ErrorResponse
// @Router       /api/v1/students [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		roster, err := deps.StudentService.ListStudents(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Failed to list students: %v", err)
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to list students"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"students": roster,
			"count":    len(roster),
		})
	}
}

// GetByID returns a single student
// @Summary      Get student
// @Description  Returns one student by numeric ID
// @Tags         students
// @Produce      json
// @Param        id   path      int  true  "Student ID"
// @Success      200  {object}  models.Student
// @Failure      400  {object}  types.ErrorResponse
// @Failure      404  {object}  types.ErrorResponse
// @Router       /api/v1/students/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		studentID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid student ID"})
			return
		}

		student, err := deps.StudentService.GetStudent(c.Request.Context(), studentID)
		if err != nil {
			log.Printf("[WARN] Student %d lookup failed: %v", studentID, err)
			c.JSON(apperrors.GetHTTPCode(err), types.ErrorResponse{Error: "Student not found"})
			return
		}

		c.JSON(http.StatusOK, student)
	}
}
