package projects

import (
	"context"

	"github.com/chimlimhao/SpeechDataPrepTool/internal/models"
)

// Service defines the project operations exposed to the API layer
type Service interface {
	// CreateProject creates a new draft project owned by userID
	CreateProject(ctx context.Context, userID, name, description string) (*models.Project, error)

	// GetProject retrieves a project owned by userID
	GetProject(ctx context.Context, projectID, userID string) (*models.Project, error)

	// ListProjects lists all projects owned by userID
	ListProjects(ctx context.Context, userID string) ([]models.Project, error)

	// DeleteProject soft-deletes a project owned by userID
	DeleteProject(ctx context.Context, projectID, userID string) error

	// AddAudioFile registers an uploaded recording as pending and bumps
	// the project totals
	AddAudioFile(ctx context.Context, projectID, userID, rawPath string, sizeBytes int64) (*models.AudioFile, error)

	// ListAudioFiles lists all recordings of a project owned by userID
	ListAudioFiles(ctx context.Context, projectID, userID string) ([]models.AudioFile, error)
}

// Repository defines project data persistence. It covers the CRUD needs of
// the Service plus the row operations the processing pipeline consumes
// through its Gateway interface.
type Repository interface {
	// CreateProject inserts a new project
	CreateProject(ctx context.Context, project *models.Project) error

	// GetProjectByID retrieves a project by id and owner
	GetProjectByID(ctx context.Context, projectID, userID string) (*models.Project, error)

	// ListProjectsByUser lists projects by owner, newest first
	ListProjectsByUser(ctx context.Context, userID string) ([]models.Project, error)

	// DeleteProject soft-deletes a project by id and owner
	DeleteProject(ctx context.Context, projectID, userID string) error

	// UpdateProjectStatus sets the project lifecycle status
	UpdateProjectStatus(ctx context.Context, projectID, userID string, status models.ProjectStatus) error

	// UpdateProjectProgress sets the project progress percentage
	UpdateProjectProgress(ctx context.Context, projectID string, progress int) error

	// UpdateProjectTotals adjusts the denormalized file count and size
	UpdateProjectTotals(ctx context.Context, projectID string, deltaFiles int, deltaBytes int64) error

	// CreateAudioFile inserts a new audio file record
	CreateAudioFile(ctx context.Context, file *models.AudioFile) error

	// ListAudioFiles lists all files of a project, newest first
	ListAudioFiles(ctx context.Context, projectID string) ([]models.AudioFile, error)

	// GetPendingAudioFiles lists pending files, newest first
	GetPendingAudioFiles(ctx context.Context, projectID string) ([]models.AudioFile, error)

	// UpdateAudioFileStatus sets a file's transcription status and,
	// when non-empty, its error message
	UpdateAudioFileStatus(ctx context.Context, fileID string, status models.AudioFileStatus, errorMessage string) error

	// UpdateAudioFileTranscription persists transcription text and status
	UpdateAudioFileTranscription(ctx context.Context, fileID, transcription string, status models.AudioFileStatus) error

	// UpdateAudioFileCleanedPath records the cleaned artifact location
	UpdateAudioFileCleanedPath(ctx context.Context, fileID, cleanedPath string) error
}
