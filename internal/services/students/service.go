package students

import (
	"context"

	"github.com/chimlimhao/SpeechDataPrepTool/internal/models"
	apperrors "github.com/chimlimhao/SpeechDataPrepTool/pkg/errors"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new student service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

func (s *ServiceImpl) CreateStudent(ctx context.Context, student *models.Student) error {
	if student == nil || student.Student == "" {
		return apperrors.ValidationError("student", "name is required")
	}
	return s.repository.Create(ctx, student)
}

func (s *ServiceImpl) CreateStudents(ctx context.Context, students []models.Student) error {
	for _, student := range students {
		if student.Student == "" {
			return apperrors.ValidationError("student", "name is required")
		}
	}
	return s.repository.CreateBatch(ctx, students)
}

func (s *ServiceImpl) GetStudent(ctx context.Context, studentID int) (*models.Student, error) {
	return s.repository.GetByID(ctx, studentID)
}

func (s *ServiceImpl) ListStudents(ctx context.Context) ([]models.Student, error) {
	return s.repository.List(ctx)
}

func (s *ServiceImpl) DeleteStudent(ctx context.Context, studentID int) error {
	return s.repository.Delete(ctx, studentID)
}
