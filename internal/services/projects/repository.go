package projects

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/chimlimhao/SpeechDataPrepTool/internal/models"
	apperrors "github.com/chimlimhao/SpeechDataPrepTool/pkg/errors"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new project repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateProject inserts a new project
func (r *repository) CreateProject(ctx context.Context, project *models.Project) error {
	if project == nil {
		return errors.New("project cannot be nil")
	}
	if result := r.db.WithContext(ctx).Create(project); result.Error != nil {
		return result.Error
	}
	return nil
}

// GetProjectByID retrieves a project by id and owner. A missing row and a
// row owned by someone else are indistinguishable to the caller.
func (r *repository) GetProjectByID(ctx context.Context, projectID, userID string) (*models.Project, error) {
	var project models.Project
	result := r.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", projectID, userID).
		First(&project)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("project", projectID)
		}
		return nil, result.Error
	}
	return &project, nil
}

// ListProjectsByUser lists projects by owner, newest first
func (r *repository) ListProjectsByUser(ctx context.Context, userID string) ([]models.Project, error) {
	var projects []models.Project
	result := r.db.WithContext(ctx).
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}
	return projects, nil
}

// DeleteProject soft-deletes a project by id and owner
func (r *repository) DeleteProject(ctx context.Context, projectID, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND created_by = ?", projectID, userID).
		Delete(&models.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("project", projectID)
	}
	return nil
}

// UpdateProjectStatus sets the project lifecycle status
func (r *repository) UpdateProjectStatus(ctx context.Context, projectID, userID string, status models.ProjectStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ? AND created_by = ?", projectID, userID).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update project status: %w", result.Error)
	}
	return nil
}

// UpdateProjectProgress sets the project progress percentage
func (r *repository) UpdateProjectProgress(ctx context.Context, projectID string, progress int) error {
	if progress < 0 || progress > 100 {
		return fmt.Errorf("progress out of range: %d", progress)
	}
	result := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", projectID).
		Update("progress", progress)
	if result.Error != nil {
		return fmt.Errorf("failed to update project progress: %w", result.Error)
	}
	return nil
}

// UpdateProjectTotals adjusts the denormalized file count and size
func (r *repository) UpdateProjectTotals(ctx context.Context, projectID string, deltaFiles int, deltaBytes int64) error {
	result := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", projectID).
		Updates(map[string]interface{}{
			"total_files": gorm.Expr("total_files + ?", deltaFiles),
			"total_size":  gorm.Expr("total_size + ?", deltaBytes),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update project totals: %w", result.Error)
	}
	return nil
}

// CreateAudioFile inserts a new audio file record
func (r *repository) CreateAudioFile(ctx context.Context, file *models.AudioFile) error {
	if file == nil {
		return errors.New("audio file cannot be nil")
	}
	if result := r.db.WithContext(ctx).Create(file); result.Error != nil {
		return result.Error
	}
	return nil
}

// ListAudioFiles lists all files of a project, newest first
func (r *repository) ListAudioFiles(ctx context.Context, projectID string) ([]models.AudioFile, error) {
	var files []models.AudioFile
	result := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&files)
	if result.Error != nil {
		return nil, result.Error
	}
	return files, nil
}

// GetPendingAudioFiles lists pending files, newest first. The order fixes
// the processing sequence of a pipeline run.
func (r *repository) GetPendingAudioFiles(ctx context.Context, projectID string) ([]models.AudioFile, error) {
	var files []models.AudioFile
	result := r.db.WithContext(ctx).
		Where("project_id = ? AND transcription_status = ?", projectID, models.AudioFileStatusPending).
		Order("created_at DESC").
		Find(&files)
	if result.Error != nil {
		return nil, result.Error
	}
	return files, nil
}

// UpdateAudioFileStatus sets a file's transcription status; the error
// message column is written only when a message is provided. A failed
// write also clears any transcription left over from an earlier run, so
// a file never carries content and an error at the same time.
func (r *repository) UpdateAudioFileStatus(ctx context.Context, fileID string, status models.AudioFileStatus, errorMessage string) error {
	updates := map[string]interface{}{"transcription_status": status}
	if errorMessage != "" {
		updates["error_message"] = errorMessage
	}
	if status == models.AudioFileStatusFailed {
		updates["transcription_content"] = ""
	}
	result := r.db.WithContext(ctx).
		Model(&models.AudioFile{}).
		Where("id = ?", fileID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update audio file status: %w", result.Error)
	}
	return nil
}

// UpdateAudioFileTranscription persists the transcription text and status,
// clearing any error message from a previous failed attempt
func (r *repository) UpdateAudioFileTranscription(ctx context.Context, fileID, transcription string, status models.AudioFileStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.AudioFile{}).
		Where("id = ?", fileID).
		Updates(map[string]interface{}{
			"transcription_content": transcription,
			"transcription_status":  status,
			"error_message":         "",
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update audio file transcription: %w", result.Error)
	}
	return nil
}

// UpdateAudioFileCleanedPath records the cleaned artifact location
func (r *repository) UpdateAudioFileCleanedPath(ctx context.Context, fileID, cleanedPath string) error {
	result := r.db.WithContext(ctx).
		Model(&models.AudioFile{}).
		Where("id = ?", fileID).
		Update("file_path_cleaned", cleanedPath)
	if result.Error != nil {
		return fmt.Errorf("failed to update audio file cleaned path: %w", result.Error)
	}
	return nil
}
