package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	outfitdomain "github.com/aikombin/aikombin-server/services/outfit/domain"
	"github.com/aikombin/aikombin-server/services/outfit/domain/models"
)

const geminiModel = "gemini-1.5-flash"

const geminiPrompt = `You are a fashion stylist. Look at the outfit photo and the context below,
then respond with ONLY a JSON object of the form
{"style": string, "colors": [string], "score": integer between 80 and 100, "recommendations": [string]}.
Give exactly three short, encouraging recommendations.

Occasion: %s
Season: %s
Weather: %s
Time of day: %s
Mood: %s`

// GeminiAnalyzer produces a real multimodal style analysis through the
// Gemini API while keeping the standard Analyzer contract.
type GeminiAnalyzer struct {
	apiKey string
	http   *http.Client
}

var _ models.Analyzer = (*GeminiAnalyzer)(nil)

// NewGeminiAnalyzer returns a GeminiAnalyzer for the given API key.
func NewGeminiAnalyzer(apiKey string) *GeminiAnalyzer {
	return &GeminiAnalyzer{apiKey: apiKey, http: &http.Client{}}
}

// Analyze sends the photo and event context to Gemini and parses the JSON reply.
func (a *GeminiAnalyzer) Analyze(ctx context.Context, photo string, meta models.EventMetadata) (*models.AnalysisResult, error) {
	if a.apiKey == "" {
		return nil, fmt.Errorf("%w: gemini api key not configured", outfitdomain.ErrAnalysisFailed)
	}

	imageData, err := fetchPhoto(ctx, a.http, photo)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", outfitdomain.ErrAnalysisFailed, err)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(a.apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: create gemini client: %w", outfitdomain.ErrAnalysisFailed, err)
	}
	defer client.Close()

	model := client.GenerativeModel(geminiModel)
	prompt := fmt.Sprintf(geminiPrompt, meta.Occasion, meta.Season, meta.Weather, meta.Time, meta.Mood)

	resp, err := model.GenerateContent(ctx,
		genai.Text(prompt),
		genai.ImageData("jpeg", imageData),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: generate content: %w", outfitdomain.ErrAnalysisFailed, err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: empty gemini response", outfitdomain.ErrAnalysisFailed)
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected gemini part type %T", outfitdomain.ErrAnalysisFailed, resp.Candidates[0].Content.Parts[0])
	}

	result, err := parseGeminiResult(string(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", outfitdomain.ErrAnalysisFailed, err)
	}

	result.Occasion = meta.Occasion
	result.Season = meta.Season
	result.Weather = meta.Weather
	result.Time = meta.Time
	result.Mood = meta.Mood
	return result, nil
}

// parseGeminiResult extracts the JSON object from the model reply, which may
// arrive wrapped in a markdown code fence, and clamps the score into range.
func parseGeminiResult(text string) (*models.AnalysisResult, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in gemini reply")
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(text[start:end+1]), &result); err != nil {
		return nil, fmt.Errorf("decode gemini reply: %w", err)
	}
	result.Score = clampScore(result.Score)
	return &result, nil
}
