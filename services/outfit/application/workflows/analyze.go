// Package workflows runs outfit analysis as a Temporal workflow so slow or
// flaky analyzer backends get durable retries instead of failing the capture
// flow outright.
package workflows

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	pkgworkflows "github.com/aikombin/aikombin-server/pkg/workflows"
	"github.com/aikombin/aikombin-server/services/outfit/domain/models"
)

// AnalyzeOutfitInput carries the photo reference and context into the workflow.
type AnalyzeOutfitInput struct {
	Photo string               `json:"photo"`
	Meta  models.EventMetadata `json:"meta"`
}

// Activities wraps the analyzer for activity execution on the worker.
type Activities struct {
	Analyzer models.Analyzer
}

// AnalyzeOutfit runs one analysis attempt. Temporal owns the retry schedule.
func (a *Activities) AnalyzeOutfit(ctx context.Context, in AnalyzeOutfitInput) (*models.AnalysisResult, error) {
	return a.Analyzer.Analyze(ctx, in.Photo, in.Meta)
}

// AnalyzeOutfitWorkflow analyzes one outfit photo with up to three attempts
// and exponential backoff between them.
func AnalyzeOutfitWorkflow(ctx workflow.Context, in AnalyzeOutfitInput) (*models.AnalysisResult, error) {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumAttempts:    3,
		},
	})

	var activities *Activities
	var result *models.AnalysisResult
	if err := workflow.ExecuteActivity(ctx, activities.AnalyzeOutfit, in).Get(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// WorkflowAnalyzer implements models.Analyzer by starting
// AnalyzeOutfitWorkflow on the analysis task queue and waiting for its
// result, so the API process gets workflow-grade retries without hosting
// the activity itself.
type WorkflowAnalyzer struct {
	client client.Client
}

var _ models.Analyzer = (*WorkflowAnalyzer)(nil)

// NewWorkflowAnalyzer returns a WorkflowAnalyzer on the given Temporal client.
func NewWorkflowAnalyzer(c client.Client) *WorkflowAnalyzer {
	return &WorkflowAnalyzer{client: c}
}

// Analyze runs one analysis through the workflow. Cancelling ctx abandons
// the wait; the caller's deadline still bounds the whole call.
func (a *WorkflowAnalyzer) Analyze(ctx context.Context, photo string, meta models.EventMetadata) (*models.AnalysisResult, error) {
	opts := client.StartWorkflowOptions{
		ID:        "analyze-outfit-" + uuid.NewString(),
		TaskQueue: pkgworkflows.AnalysisTaskQueue,
	}

	run, err := a.client.ExecuteWorkflow(ctx, opts, AnalyzeOutfitWorkflow, AnalyzeOutfitInput{Photo: photo, Meta: meta})
	if err != nil {
		return nil, err
	}

	var result *models.AnalysisResult
	if err := run.Get(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}
