package students

import (
	"context"

	"github.com/chimlimhao/SpeechDataPrepTool/internal/models"
)

// Service defines the student roster operations exposed to the API layer
type Service interface {
	CreateStudent(ctx context.Context, student *models.Student) error
	CreateStudents(ctx context.Context, students []models.Student) error
	GetStudent(ctx context.Context, studentID int) (*models.Student, error)
	ListStudents(ctx context.Context) ([]models.Student, error)
	DeleteStudent(ctx context.Context, studentID int) error
}

// Repository defines student data persistence
type Repository interface {
	Create(ctx context.Context, student *models.Student) error
	CreateBatch(ctx context.Context, students []models.Student) error
	GetByID(ctx context.Context, studentID int) (*models.Student, error)
	List(ctx context.Context) ([]models.Student, error)
	Delete(ctx context.Context, studentID int) error
}
