package services

import (
	"github.com/aikombin/aikombin-server/pkg/app"
	"github.com/aikombin/aikombin-server/pkg/config"
	"github.com/aikombin/aikombin-server/services/outfit/application/workflows"
	"github.com/aikombin/aikombin-server/services/outfit/domain/models"
	"github.com/aikombin/aikombin-server/services/outfit/infrastructure/analysis"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Outfit   *OutfitService
	Composer *ComposerService
}

// New wires the outfit application services. The analyzer backend comes from
// ANALYZER config: the local stub by default, the remote detection backend,
// or Gemini. The stub detector backs /v1/analyze unless the remote backend
// is selected. With a Temporal client present, analysis runs through the
// outfit-analysis workflow instead of calling the backend in-process.
func New(a *app.Application, closet ClothingLookup) *Services {
	var (
		analyzer models.Analyzer
		detector models.Detector
	)
	switch a.Config.Analyzer {
	case config.AnalyzerRemote:
		remote := analysis.NewRemoteClient(a.Config.AnalyzerURL, a.Config.AnalyzerToken)
		analyzer, detector = remote, remote
	case config.AnalyzerGemini:
		analyzer = analysis.NewGeminiAnalyzer(a.Config.GeminiAPIKey)
		detector = analysis.NewStubDetector()
	default:
		analyzer = analysis.NewStubAnalyzer()
		detector = analysis.NewStubDetector()
	}

	if a.TemporalClient != nil {
		analyzer = workflows.NewWorkflowAnalyzer(a.TemporalClient.Client)
	}

	outfitSvc := NewOutfitService(a.Records, analyzer, detector, a.EventBus, a.Logger, a.Config.AnalysisTimeout())
	return &Services{
		Outfit:   outfitSvc,
		Composer: NewComposerService(closet, outfitSvc),
	}
}
