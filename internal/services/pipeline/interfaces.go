package pipeline

import (
	"context"

	"github.com/chimlimhao/SpeechDataPrepTool/internal/models"
)

// Gateway is the slice of project persistence the pipeline depends on.
// The gorm repository in internal/services/projects implements it; tests
// substitute fakes.
type Gateway interface {
	// GetProjectByID fetches a project owned by userID
	GetProjectByID(ctx context.Context, projectID, userID string) (*models.Project, error)

	// UpdateProjectStatus sets the project lifecycle status
	UpdateProjectStatus(ctx context.Context, projectID, userID string, status models.ProjectStatus) error

	// UpdateProjectProgress sets the project progress percentage (0-100)
	UpdateProjectProgress(ctx context.Context, projectID string, progress int) error

	// GetPendingAudioFiles lists pending files, most recently created first
	GetPendingAudioFiles(ctx context.Context, projectID string) ([]models.AudioFile, error)

	// UpdateAudioFileStatus sets a file's transcription status; errorMessage
	// is persisted only when non-empty
	UpdateAudioFileStatus(ctx context.Context, fileID string, status models.AudioFileStatus, errorMessage string) error

	// UpdateAudioFileTranscription persists the transcription text and status
	UpdateAudioFileTranscription(ctx context.Context, fileID, transcription string, status models.AudioFileStatus) error

	// UpdateAudioFileCleanedPath records where the cleaned artifact was stored
	UpdateAudioFileCleanedPath(ctx context.Context, fileID, cleanedPath string) error
}

// BlobStore abstracts the object storage holding raw and cleaned audio
type BlobStore interface {
	// Download fetches the object at path
	Download(ctx context.Context, path string) ([]byte, error)

	// Upload stores data at path with the given content type, overwriting
	// any existing object
	Upload(ctx context.Context, path string, data []byte, contentType string) error
}

// Denoiser wraps an external noise reduction capability.
type Denoiser interface {
	// Denoise writes a cleaned copy of inputPath to outputPath and reports
	// whether it succeeded. Failures of the underlying capability are
	// absorbed into a false return, never an error; the caller falls back
	// to the original audio. The input file is never modified.
	Denoise(ctx context.Context, inputPath, outputPath string) bool
}

// Transcriber converts audio bytes into text via an external ASR capability
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

// FileProcessor processes a single audio file end-to-end. A false return
// means the failure was already persisted on the file record.
type FileProcessor interface {
	Process(ctx context.Context, fileID, rawPath string) bool
}
