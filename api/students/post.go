package students

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chimlimhao/SpeechDataPrepTool/api/types"
	"github.com/chimlimhao/SpeechDataPrepTool/internal/models"
	apperrors "github.com/chimlimhao/SpeechDataPrepTool/pkg/errors"
)

// StudentRequest represents the request body for adding a student
type StudentRequest struct {
	Student string `json:"student" binding:"required"`
}

// BatchRequest represents the request body for adding several students
type BatchRequest struct {
	Students []StudentRequest `json:"students" binding:"required,min=1,dive"`
}

// Create handles adding a single student to the roster
// @Summary      Add student
// @Description  Registers a new student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        request  body      StudentRequest  true  "Student name"
// @Success      201      {object}  models.Student
// @Failure      400      {object}  types.ErrorResponse
// @Failure      500      {object}  types.ErrorResponse
// @Router       /api/v1/students [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StudentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid request body"})
			return
		}

		student := models.Student{Student: req.Student}
		if err := deps.StudentService.CreateStudent(c.Request.Context(), &student); err != nil {
			log.Printf("[ERROR] Failed to create student: %v", err)
			c.JSON(apperrors.GetHTTPCode(err), types.ErrorResponse{Error: "Failed to create student"})
			return
		}

		c.JSON(http.StatusCreated, student)
	}
}

// CreateBatch handles adding several students in one call
// @Summary      Add students in bulk
// @Description  Registers a batch of students in a single transaction
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        request  body      BatchRequest  true  "Student names"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  types.ErrorResponse
// @Failure      500      {object}  types.ErrorResponse
// @Router       /api/v1/students/batch [post]
func CreateBatch(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BatchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid request body"})
			return
		}

		roster := make([]models.Student, 0, len(req.Students))
		for _, entry := range req.Students {
			roster = append(roster, models.Student{Student: entry.Student})
		}

		if err := deps.StudentService.CreateStudents(c.Request.Context(), roster); err != nil {
			log.Printf("[ERROR] Failed to create %d students: %v", len(roster), err)
			c.JSON(apperrors.GetHTTPCode(err), types.ErrorResponse{Error: "Failed to create students"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"students": roster,
			"count":    len(roster),
		})
	}
}
