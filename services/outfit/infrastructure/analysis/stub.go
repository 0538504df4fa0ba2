// Package analysis holds the Analyzer and Detector implementations: the
// local stub, the remote HTTP backend adapter, and the Gemini adapter.
package analysis

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	outfitdomain "github.com/aikombin/aikombin-server/services/outfit/domain"
	"github.com/aikombin/aikombin-server/services/outfit/domain/models"
)

// stubDelay emulates asynchronous inference so loading states stay exercised.
const stubDelay = time.Second

var (
	_ models.Analyzer = (*StubAnalyzer)(nil)
	_ models.Detector = (*StubDetector)(nil)
)

// StubAnalyzer generates a canned style analysis with a uniformly random
// score in [80, 100]. It performs no image inspection; it exists so the
// full capture, analyze and save flow works with zero external dependencies.
type StubAnalyzer struct{}

// NewStubAnalyzer returns the local stub analyzer.
func NewStubAnalyzer() *StubAnalyzer {
	return &StubAnalyzer{}
}

// Analyze waits about a second, then returns the canned result with the
// event metadata echoed through. Cancelling ctx aborts the wait.
func (a *StubAnalyzer) Analyze(ctx context.Context, photo string, meta models.EventMetadata) (*models.AnalysisResult, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", outfitdomain.ErrAnalysisFailed, ctx.Err())
	case <-time.After(stubDelay):
	}

	return &models.AnalysisResult{
		Style:  "Casual",
		Colors: []string{"Blue", "White"},
		Score:  rand.IntN(models.MaxScore-models.MinScore+1) + models.MinScore,
		Recommendations: []string{
			"You look great in this outfit!",
			"Your color choices work really well together.",
			"This style really suits you.",
		},
		Occasion: meta.Occasion,
		Season:   meta.Season,
		Weather:  meta.Weather,
		Time:     meta.Time,
		Mood:     meta.Mood,
	}, nil
}

// StubDetector returns a fixed single-garment detection for POST /v1/analyze.
type StubDetector struct{}

// NewStubDetector returns the local stub detector.
func NewStubDetector() *StubDetector {
	return &StubDetector{}
}

// DetectGarments ignores the image and reports one high-confidence t-shirt.
func (d *StubDetector) DetectGarments(ctx context.Context, imageBase64 string) (*models.DetectionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", outfitdomain.ErrAnalysisFailed, err)
	}
	return &models.DetectionResult{
		DetectedItems: []models.DetectedGarment{
			{Name: "t-shirt", Color: "black", Confidence: 0.95, Box: [4]int{10, 10, 100, 100}},
		},
		AnalysisDate: time.Now().UTC(),
	}, nil
}
