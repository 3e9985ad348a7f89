package types

import (
	"context"

	"github.com/chimlimhao/SpeechDataPrepTool/internal/database"
	"github.com/chimlimhao/SpeechDataPrepTool/internal/services/auth"
	"github.com/chimlimhao/SpeechDataPrepTool/internal/services/pipeline"
	"github.com/chimlimhao/SpeechDataPrepTool/internal/services/projects"
	"github.com/chimlimhao/SpeechDataPrepTool/internal/services/students"
)

// ProjectRunner starts one processing run for a project. The pipeline
// orchestrator implements it; handler tests substitute fakes.
type ProjectRunner interface {
	Run(ctx context.Context, projectID, userID string) (*pipeline.RunSummary, error)
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB             *database.DB
	ProjectService projects.Service
	StudentService students.Service
	Runner         ProjectRunner
	Verifier       auth.Verifier
}
