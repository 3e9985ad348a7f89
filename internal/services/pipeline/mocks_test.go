package pipeline

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/chimlimhao/SpeechDataPrepTool/internal/models"
)

// MockGateway is a mock implementation of the Gateway interface
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) GetProjectByID(ctx context.Context, projectID, userID string) (*models.Project, error) {
	args := m.Called(ctx, projectID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockGateway) UpdateProjectStatus(ctx context.Context, projectID, userID string, status models.ProjectStatus) error {
	args := m.Called(ctx, projectID, userID, status)
	return args.Error(0)
}

func (m *MockGateway) UpdateProjectProgress(ctx context.Context, projectID string, progress int) error {
	args := m.Called(ctx, projectID, progress)
	return args.Error(0)
}

func (m *MockGateway) GetPendingAudioFiles(ctx context.Context, projectID string) ([]models.AudioFile, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AudioFile), args.Error(1)
}

func (m *MockGateway) UpdateAudioFileStatus(ctx context.Context, fileID string, status models.AudioFileStatus, errorMessage string) error {
	args := m.Called(ctx, fileID, status, errorMessage)
	return args.Error(0)
}

func (m *MockGateway) UpdateAudioFileTranscription(ctx context.Context, fileID, transcription string, status models.AudioFileStatus) error {
	args := m.Called(ctx, fileID, transcription, status)
	return args.Error(0)
}

func (m *MockGateway) UpdateAudioFileCleanedPath(ctx context.Context, fileID, cleanedPath string) error {
	args := m.Called(ctx, fileID, cleanedPath)
	return args.Error(0)
}

// MockBlobStore is a mock implementation of the BlobStore interface
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Download(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockBlobStore) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	args := m.Called(ctx, path, data, contentType)
	return args.Error(0)
}

// MockDenoiser is a mock implementation of the Denoiser interface
type MockDenoiser struct {
	mock.Mock
}

func (m *MockDenoiser) Denoise(ctx context.Context, inputPath, outputPath string) bool {
	args := m.Called(ctx, inputPath, outputPath)
	return args.Bool(0)
}

// MockTranscriber is a mock implementation of the Transcriber interface
type MockTranscriber struct {
	mock.Mock
}

func (m *MockTranscriber) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	args := m.Called(ctx, audio, filename)
	return args.String(0), args.Error(1)
}

// MockFileProcessor is a mock implementation of the FileProcessor interface
type MockFileProcessor struct {
	mock.Mock
}

func (m *MockFileProcessor) Process(ctx context.Context, fileID, rawPath string) bool {
	args := m.Called(ctx, fileID, rawPath)
	return args.Bool(0)
}
