package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chimlimhao/SpeechDataPrepTool/internal/models"
)

func TestOrchestrator_Run_EmptyProject(t *testing.T) {
	ctx := context.Background()
	mockGateway := new(MockGateway)
	mockProcessor := new(MockFileProcessor)
	orchestrator := NewOrchestrator(mockGateway, mockProcessor)

	project := &models.Project{ID: "proj-1", Status: models.ProjectStatusDraft}
	mockGateway.On("GetProjectByID", ctx, "proj-1", "user-1").Return(project, nil)
	mockGateway.On("UpdateProjectStatus", ctx, "proj-1", "user-1", models.ProjectStatusInProgress).Return(nil)
	mockGateway.On("GetPendingAudioFiles", ctx, "proj-1").Return([]models.AudioFile{}, nil)
	mockGateway.On("UpdateProjectStatus", ctx, "proj-1", "user-1", models.ProjectStatusCompleted).Return(nil)
	mockGateway.On("UpdateProjectProgress", ctx, "proj-1", 100).Return(nil)

	summary, err := orchestrator.Run(ctx, "proj-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalFiles)
	assert.Equal(t, 0, summary.ProcessedFiles)
	assert.Equal(t, models.ProjectStatusCompleted, summary.Status)

	mockGateway.AssertExpectations(t)
	mockProcessor.AssertNotCalled(t, "Process")
}

func TestOrchestrator_Run_AllFilesSucceed(t *testing.T) {
	ctx := context.Background()
	mockGateway := new(MockGateway)
	mockProcessor := new(MockFileProcessor)
	orchestrator := NewOrchestrator(mockGateway, mockProcessor)

	pending := []models.AudioFile{
		{ID: "file-1", FilePathRaw: "proj-1/raw/a.wav"},
		{ID: "file-2", FilePathRaw: "proj-1/raw/b.wav"},
		{ID: "file-3", FilePathRaw: "proj-1/raw/c.wav"},
	}

	project := &models.Project{ID: "proj-1", Status: models.ProjectStatusDraft}
	mockGateway.On("GetProjectByID", ctx, "proj-1", "user-1").Return(project, nil)
	mockGateway.On("UpdateProjectStatus", ctx, "proj-1", "user-1", models.ProjectStatusInProgress).Return(nil)
	mockGateway.On("GetPendingAudioFiles", ctx, "proj-1").Return(pending, nil)

	for _, file := range pending {
		mockProcessor.On("Process", ctx, file.ID, file.FilePathRaw).Return(true)
	}

	// Rounded percentages after each of the three files, plus the final write
	mockGateway.On("UpdateProjectProgress", ctx, "proj-1", 33).Return(nil).Once()
	mockGateway.On("UpdateProjectProgress", ctx, "proj-1", 67).Return(nil).Once()
	mockGateway.On("UpdateProjectProgress", ctx, "proj-1", 100).Return(nil).Twice()
	mockGateway.On("UpdateProjectStatus", ctx, "proj-1", "user-1", models.ProjectStatusCompleted).Return(nil)

	summary, err := orchestrator.Run(ctx, "proj-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalFiles)
	assert.Equal(t, 3, summary.ProcessedFiles)
	assert.Equal(t, models.ProjectStatusCompleted, summary.Status)

	mockGateway.AssertExpectations(t)
	mockProcessor.AssertExpectations(t)
}

func TestOrchestrator_Run_FileFailureDoesNotAbortRun(t *testing.T) {
	ctx := context.Background()
	mockGateway := new(MockGateway)
	mockProcessor := new(MockFileProcessor)
	orchestrator := NewOrchestrator(mockGateway, mockProcessor)

	pending := []models.AudioFile{
		{ID: "file-1", FilePathRaw: "proj-1/raw/a.wav"},
		{ID: "file-2", FilePathRaw: "proj-1/raw/b.wav"},
	}

	project := &models.Project{ID: "proj-1", Status: models.ProjectStatusDraft}
	mockGateway.On("GetProjectByID", ctx, "proj-1", "user-1").Return(project, nil)
	mockGateway.On("UpdateProjectStatus", ctx, "proj-1", "user-1", models.ProjectStatusInProgress).Return(nil)
	mockGateway.On("GetPendingAudioFiles", ctx, "proj-1").Return(pending, nil)

	// First file fails, second succeeds; the run keeps going
	mockProcessor.On("Process", ctx, "file-1", "proj-1/raw/a.wav").Return(false)
	mockProcessor.On("Process", ctx, "file-2", "proj-1/raw/b.wav").Return(true)

	mockGateway.On("UpdateProjectProgress", ctx, "proj-1", 50).Return(nil).Once()
	mockGateway.On("UpdateProjectProgress", ctx, "proj-1", 100).Return(nil).Once()
	mockGateway.On("UpdateProjectStatus", ctx, "proj-1", "user-1", models.ProjectStatusArchived).Return(nil)

	summary, err := orchestrator.Run(ctx, "proj-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalFiles)
	assert.Equal(t, 1, summary.ProcessedFiles)
	assert.Equal(t, models.ProjectStatusArchived, summary.Status)

	mockGateway.AssertExpectations(t)
	mockProcessor.AssertExpectations(t)
}

func TestOrchestrator_Run_ProjectNotFound(t *testing.T) {
	ctx := context.Background()
	mockGateway := new(MockGateway)
	mockProcessor := new(MockFileProcessor)
	orchestrator := NewOrchestrator(mockGateway, mockProcessor)

	mockGateway.On("GetProjectByID", ctx, "missing", "user-1").Return(nil, errors.New("record not found"))
	// Fatal errors park the project as archived
	mockGateway.On("UpdateProjectStatus", ctx, "missing", "user-1", models.ProjectStatusArchived).Return(nil)

	summary, err := orchestrator.Run(ctx, "missing", "user-1")
	require.Error(t, err)
	assert.Nil(t, summary)

	mockGateway.AssertExpectations(t)
	mockProcessor.AssertNotCalled(t, "Process")
}

func TestOrchestrator_Run_ProgressWriteFailureIsFatal(t *testing.T) {
	ctx := context.Background()
	mockGateway := new(MockGateway)
	mockProcessor := new(MockFileProcessor)
	orchestrator := NewOrchestrator(mockGateway, mockProcessor)

	pending := []models.AudioFile{
		{ID: "file-1", FilePathRaw: "proj-1/raw/a.wav"},
		{ID: "file-2", FilePathRaw: "proj-1/raw/b.wav"},
	}

	project := &models.Project{ID: "proj-1", Status: models.ProjectStatusDraft}
	mockGateway.On("GetProjectByID", ctx, "proj-1", "user-1").Return(project, nil)
	mockGateway.On("UpdateProjectStatus", ctx, "proj-1", "user-1", models.ProjectStatusInProgress).Return(nil)
	mockGateway.On("GetPendingAudioFiles", ctx, "proj-1").Return(pending, nil)
	mockProcessor.On("Process", ctx, "file-1", "proj-1/raw/a.wav").Return(true)
	mockGateway.On("UpdateProjectProgress", ctx, "proj-1", 50).Return(errors.New("database is locked"))
	mockGateway.On("UpdateProjectStatus", ctx, "proj-1", "user-1", models.ProjectStatusArchived).Return(nil)

	summary, err := orchestrator.Run(ctx, "proj-1", "user-1")
	require.Error(t, err)
	assert.Nil(t, summary)

	// The second file was never attempted
	mockProcessor.AssertNumberOfCalls(t, "Process", 1)
	mockGateway.AssertExpectations(t)
}

func TestProgressAfter(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		total    int
		expected int
	}{
		{"empty batch", 0, 0, 100},
		{"first of three", 0, 3, 33},
		{"second of three", 1, 3, 67},
		{"last of three", 2, 3, 100},
		{"first of two", 0, 2, 50},
		{"single file", 0, 1, 100},
		{"first of six", 0, 6, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, progressAfter(tt.index, tt.total))
		})
	}
}

func TestOrchestrator_Run_ArchiveFailureStillReturnsOriginalError(t *testing.T) {
	ctx := context.Background()
	mockGateway := new(MockGateway)
	mockProcessor := new(MockFileProcessor)
	orchestrator := NewOrchestrator(mockGateway, mockProcessor)

	fetchErr := errors.New("record not found")
	mockGateway.On("GetProjectByID", ctx, "proj-1", "user-1").Return(nil, fetchErr)
	mockGateway.On("UpdateProjectStatus", ctx, "proj-1", "user-1", models.ProjectStatusArchived).
		Return(errors.New("database is locked"))

	_, err := orchestrator.Run(ctx, "proj-1", "user-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, fetchErr)

	mockGateway.AssertExpectations(t)
}
