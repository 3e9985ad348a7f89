package projects

import (
	"context"

	"github.com/google/uuid"

	"github.com/chimlimhao/SpeechDataPrepTool/internal/models"
	apperrors "github.com/chimlimhao/SpeechDataPrepTool/pkg/errors"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new project service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// CreateProject creates a new draft project owned by userID
func (s *ServiceImpl) CreateProject(ctx context.Context, userID, name, description string) (*models.Project, error) {
	if name == "" {
		return nil, apperrors.ValidationError("name", "is required")
	}
	if userID == "" {
		return nil, apperrors.ValidationError("user_id", "is required")
	}

	project := &models.Project{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Status:      models.ProjectStatusDraft,
		CreatedBy:   userID,
	}
	if err := s.repository.CreateProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// GetProject retrieves a project owned by userID
func (s *ServiceImpl) GetProject(ctx context.Context, projectID, userID string) (*models.Project, error) {
	return s.repository.GetProjectByID(ctx, projectID, userID)
}

// ListProjects lists all projects owned by userID
func (s *ServiceImpl) ListProjects(ctx context.Context, userID string) ([]models.Project, error) {
	return s.repository.ListProjectsByUser(ctx, userID)
}

// DeleteProject soft-deletes a project owned by userID
func (s *ServiceImpl) DeleteProject(ctx context.Context, projectID, userID string) error {
	return s.repository.DeleteProject(ctx, projectID, userID)
}

// AddAudioFile registers an uploaded recording as pending. Ownership is
// checked before the insert; the project totals are bumped afterwards.
func (s *ServiceImpl) AddAudioFile(ctx context.Context, projectID, userID, rawPath string, sizeBytes int64) (*models.AudioFile, error) {
	if rawPath == "" {
		return nil, apperrors.ValidationError("file_path_raw", "is required")
	}

	if _, err := s.repository.GetProjectByID(ctx, projectID, userID); err != nil {
		return nil, err
	}

	file := &models.AudioFile{
		ID:                  uuid.New().String(),
		ProjectID:           projectID,
		FilePathRaw:         rawPath,
		TranscriptionStatus: models.AudioFileStatusPending,
		SizeBytes:           sizeBytes,
	}
	if err := s.repository.CreateAudioFile(ctx, file); err != nil {
		return nil, err
	}

	if err := s.repository.UpdateProjectTotals(ctx, projectID, 1, sizeBytes); err != nil {
		return nil, err
	}
	return file, nil
}

// ListAudioFiles lists all recordings of a project owned by userID
func (s *ServiceImpl) ListAudioFiles(ctx context.Context, projectID, userID string) ([]models.AudioFile, error) {
	if _, err := s.repository.GetProjectByID(ctx, projectID, userID); err != nil {
		return nil, err
	}
	return s.repository.ListAudioFiles(ctx, projectID)
}
