package students

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/chimlimhao/SpeechDataPrepTool/internal/models"
	apperrors "github.com/chimlimhao/SpeechDataPrepTool/pkg/errors"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new student repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, student *models.Student) error {
	if student == nil {
		return errors.New("student cannot be nil")
	}
	if result := r.db.WithContext(ctx).Create(student); result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *repository) CreateBatch(ctx context.Context, students []models.Student) error {
	if len(students) == 0 {
		return nil
	}
	if result := r.db.WithContext(ctx).Create(&students); result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, studentID int) (*models.Student, error) {
	var student models.Student
	result := r.db.WithContext(ctx).First(&student, "student_id = ?", studentID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("student", studentID)
		}
		return nil, result.Error
	}
	return &student, nil
}

func (r *repository) List(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if result := r.db.WithContext(ctx).Order("student_id").Find(&students); result.Error != nil {
		return nil, result.Error
	}
	return students, nil
}

func (r *repository) Delete(ctx context.Context, studentID int) error {
	result := r.db.WithContext(ctx).Delete(&models.Student{}, "student_id = ?", studentID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("student", studentID)
	}
	return nil
}
