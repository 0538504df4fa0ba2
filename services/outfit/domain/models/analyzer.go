package models

import "context"

// Analyzer produces a style analysis for one photo and its event context.
// This is the designated extension point for a real inference backend; every
// implementation must honor the same contract:
//
//   - photo is a non-empty opaque reference and meta is pre-validated by the
//     caller. Implementations do not re-validate and propagate the fields
//     as-is into the result.
//   - any internal failure surfaces as an error, never as a malformed result.
//   - calls respect ctx cancellation and deadlines; analysis is user-initiated
//     and must stay cancellable.
type Analyzer interface {
	Analyze(ctx context.Context, photo string, meta EventMetadata) (*AnalysisResult, error)
}

// Detector is the per-garment detection surface behind POST /v1/analyze.
type Detector interface {
	DetectGarments(ctx context.Context, imageBase64 string) (*DetectionResult, error)
}
