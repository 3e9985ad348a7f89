package pipeline

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/chimlimhao/SpeechDataPrepTool/internal/models"
)

// RunSummary reports the outcome of one project processing run
type RunSummary struct {
	TotalFiles     int                  `json:"total_files"`
	ProcessedFiles int                  `json:"processed_files"`
	Status         models.ProjectStatus `json:"status"`
}

// Orchestrator drives a full per-project run: it claims the project,
// walks the pending files in order and reconciles the final status.
// Files are processed strictly sequentially; a failed file is recorded
// and the run moves on.
type Orchestrator struct {
	gateway   Gateway
	processor FileProcessor
}

// NewOrchestrator creates a new project batch orchestrator
func NewOrchestrator(gateway Gateway, processor FileProcessor) *Orchestrator {
	return &Orchestrator{
		gateway:   gateway,
		processor: processor,
	}
}

// Run processes every pending audio file of the given project. The project
// must exist and be owned by userID. The returned summary is always
// populated on success, even when individual files failed; an error return
// means the run itself could not complete, in which case the project has
// been parked as archived.
func (o *Orchestrator) Run(ctx context.Context, projectID, userID string) (*RunSummary, error) {
	summary, err := o.run(ctx, projectID, userID)
	if err != nil {
		log.Printf("[ERROR] Run for project %s failed: %v", projectID, err)
		if statusErr := o.gateway.UpdateProjectStatus(ctx, projectID, userID, models.ProjectStatusArchived); statusErr != nil {
			log.Printf("[ERROR] Failed to archive project %s after fatal error: %v", projectID, statusErr)
		}
		return nil, err
	}
	return summary, nil
}

func (o *Orchestrator) run(ctx context.Context, projectID, userID string) (*RunSummary, error) {
	project, err := o.gateway.GetProjectByID(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] Starting run for project %s (status %s)", project.ID, project.Status)

	if err := o.gateway.UpdateProjectStatus(ctx, projectID, userID, models.ProjectStatusInProgress); err != nil {
		return nil, fmt.Errorf("failed to mark project in progress: %w", err)
	}

	pending, err := o.gateway.GetPendingAudioFiles(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending files: %w", err)
	}
	log.Printf("[INFO] Found %d pending file(s) for project %s", len(pending), projectID)

	processed := 0
	for i, file := range pending {
		log.Printf("[INFO] [%d/%d] Processing file %s (%s)", i+1, len(pending), file.ID, file.FilePathRaw)

		// Per-file failures are isolated; the processor has already
		// persisted the failure state when it reports false.
		if o.processor.Process(ctx, file.ID, file.FilePathRaw) {
			processed++
		}

		if err := o.gateway.UpdateProjectProgress(ctx, projectID, progressAfter(i, len(pending))); err != nil {
			return nil, fmt.Errorf("failed to update progress: %w", err)
		}
	}

	finalStatus := models.ProjectStatusArchived
	if processed == len(pending) {
		finalStatus = models.ProjectStatusCompleted
	}

	if err := o.gateway.UpdateProjectStatus(ctx, projectID, userID, finalStatus); err != nil {
		return nil, fmt.Errorf("failed to set final status: %w", err)
	}
	if finalStatus == models.ProjectStatusCompleted {
		if err := o.gateway.UpdateProjectProgress(ctx, projectID, 100); err != nil {
			return nil, fmt.Errorf("failed to finalize progress: %w", err)
		}
	}

	log.Printf("[INFO] Run finished for project %s: %d/%d processed, status %s",
		projectID, processed, len(pending), finalStatus)

	return &RunSummary{
		TotalFiles:     len(pending),
		ProcessedFiles: processed,
		Status:         finalStatus,
	}, nil
}

// progressAfter computes the progress percentage after the file at index i
// (0-based) of total has been handled
func progressAfter(i, total int) int {
	if total == 0 {
		return 100
	}
	return int(math.Round(float64(i+1) / float64(total) * 100))
}
