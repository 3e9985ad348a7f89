package students

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chimlimhao/SpeechDataPrepTool/api/types"
	"github.com/chimlimhao/SpeechDataPrepTool/internal/models"
	apperrors "github.com/chimlimhao/SpeechDataPrepTool/pkg/errors"
)

// MockStudentService is a mock implementation of the students.Service interface
type MockStudentService struct {
	mock.Mock
}

func (m *MockStudentService) CreateStudent(ctx context.Context, student *models.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentService) CreateStudents(ctx context.Context, students []models.Student) error {
	args := m.Called(ctx, students)
	return args.Error(0)
}

func (m *MockStudentService) GetStudent(ctx context.Context, studentID int) (*models.Student, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentService) ListStudents(ctx context.Context) ([]models.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Student), args.Error(1)
}

func (m *MockStudentService) DeleteStudent(ctx context.Context, studentID int) error {
	args := m.Called(ctx, studentID)
	return args.Error(0)
}

func setupRouter(service *MockStudentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/students"), &types.Dependencies{StudentService: service})
	return router
}

func TestList(t *testing.T) {
	mockService := new(MockStudentService)
	mockService.On("ListStudents", mock.Anything).
		Return([]models.Student{{StudentID: 1, Student: "Sokha"}, {StudentID: 2, Student: "Dara"}}, nil)

	router := setupRouter(mockService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/students", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Students []models.Student `json:"students"`
		Count    int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Count)
}

func TestGetByID(t *testing.T) {
	t.Run("returns the student", func(t *testing.T) {
		mockService := new(MockStudentService)
		mockService.On("GetStudent", mock.Anything, 7).
			Return(&models.Student{StudentID: 7, Student: "Sokha"}, nil)

		router := setupRouter(mockService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/students/7", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var student models.Student
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &student))
		assert.Equal(t, "Sokha", student.Student)
	})

	t.Run("unknown student yields 404", func(t *testing.T) {
		mockService := new(MockStudentService)
		mockService.On("GetStudent", mock.Anything, 99).
			Return(nil, apperrors.NotFound("student", 99))

		router := setupRouter(mockService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/students/99", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id yields 400", func(t *testing.T) {
		mockService := new(MockStudentService)
		router := setupRouter(mockService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/students/abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "GetStudent")
	})
}

func TestCreate(t *testing.T) {
	t.Run("creates a student", func(t *testing.T) {
		mockService := new(MockStudentService)
		mockService.On("CreateStudent", mock.Anything, mock.AnythingOfType("*models.Student")).Return(nil)

		router := setupRouter(mockService)

		body, _ := json.Marshal(StudentRequest{Student: "Sokha"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/students", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		mockService := new(MockStudentService)
		router := setupRouter(mockService)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/students", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "CreateStudent")
	})
}

func TestCreateBatch(t *testing.T) {
	mockService := new(MockStudentService)
	mockService.On("CreateStudents", mock.Anything, mock.AnythingOfType("[]models.Student")).Return(nil)

	router := setupRouter(mockService)

	body, _ := json.Marshal(BatchRequest{Students: []StudentRequest{{Student: "Sokha"}, {Student: "Dara"}}})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/students/batch", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestDelete(t *testing.T) {
	mockService := new(MockStudentService)
	mockService.On("DeleteStudent", mock.Anything, 7).Return(nil)

	router := setupRouter(mockService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/students/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
