package projects

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chimlimhao/SpeechDataPrepTool/api/types"
	"github.com/chimlimhao/SpeechDataPrepTool/internal/models"
	"github.com/chimlimhao/SpeechDataPrepTool/internal/services/pipeline"
	apperrors "github.com/chimlimhao/SpeechDataPrepTool/pkg/errors"
)

// MockRunner is a mock implementation of the ProjectRunner interface
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(ctx context.Context, projectID, userID string) (*pipeline.RunSummary, error) {
	args := m.Called(ctx, projectID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pipeline.RunSummary), args.Error(1)
}

func setupProcessRouter(deps *types.Dependencies, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(types.UserIDKey, userID)
	})
	router.POST("/projects/:id/process", Process(deps))
	return router
}

func TestProcess(t *testing.T) {
	t.Run("successful run reports the summary", func(t *testing.T) {
		mockRunner := new(MockRunner)
		mockRunner.On("Run", mock.Anything, "proj-1", "user-1").Return(&pipeline.RunSummary{
			TotalFiles:     3,
			ProcessedFiles: 2,
			Status:         models.ProjectStatusArchived,
		}, nil)

		router := setupProcessRouter(&types.Dependencies{Runner: mockRunner}, "user-1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/projects/proj-1/process", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response types.ProcessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 3, response.TotalFiles)
		assert.Equal(t, 2, response.ProcessedFiles)
		assert.Equal(t, "archived", response.Status)

		mockRunner.AssertExpectations(t)
	})

	t.Run("unknown project yields 404", func(t *testing.T) {
		mockRunner := new(MockRunner)
		mockRunner.On("Run", mock.Anything, "missing", "user-1").
			Return(nil, apperrors.NotFound("project", "missing"))

		router := setupProcessRouter(&types.Dependencies{Runner: mockRunner}, "user-1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/projects/missing/process", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var response types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response.Error, "project not found")
	})

	t.Run("fatal run error yields 500", func(t *testing.T) {
		mockRunner := new(MockRunner)
		mockRunner.On("Run", mock.Anything, "proj-1", "user-1").
			Return(nil, errors.New("database is locked"))

		router := setupProcessRouter(&types.Dependencies{Runner: mockRunner}, "user-1")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/projects/proj-1/process", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "database is locked", response.Error)
	})
}
