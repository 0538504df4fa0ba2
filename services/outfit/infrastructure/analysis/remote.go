package analysis

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	outfitdomain "github.com/aikombin/aikombin-server/services/outfit/domain"
	"github.com/aikombin/aikombin-server/services/outfit/domain/models"
)

// RemoteClient talks to the remote analysis backend. POST /analyze is
// unauthenticated; the wardrobe and outfit endpoints require a bearer token.
// It implements both Analyzer and Detector.
type RemoteClient struct {
	baseURL string
	token   string
	http    *http.Client
}

var (
	_ models.Analyzer = (*RemoteClient)(nil)
	_ models.Detector = (*RemoteClient)(nil)
)

// NewRemoteClient returns a client for the backend at baseURL.
// token may be empty when only the analyze endpoint is used.
func NewRemoteClient(baseURL, token string) *RemoteClient {
	return &RemoteClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{},
	}
}

// DetectGarments posts the base64 image to POST /analyze.
func (c *RemoteClient) DetectGarments(ctx context.Context, imageBase64 string) (*models.DetectionResult, error) {
	body, err := json.Marshal(map[string]string{"image": imageBase64})
	if err != nil {
		return nil, fmt.Errorf("marshal analyze request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	var result models.DetectionResult
	if err := c.do(req, &result); err != nil {
		return nil, fmt.Errorf("%w: %w", outfitdomain.ErrAnalysisFailed, err)
	}
	return &result, nil
}

// Analyze fetches the photo, runs garment detection on the backend and maps
// the detections into the standard analysis result shape. The score is the
// mean detection confidence projected into [80, 100].
func (c *RemoteClient) Analyze(ctx context.Context, photo string, meta models.EventMetadata) (*models.AnalysisResult, error) {
	data, err := fetchPhoto(ctx, c.http, photo)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", outfitdomain.ErrAnalysisFailed, err)
	}

	detection, err := c.DetectGarments(ctx, base64.StdEncoding.EncodeToString(data))
	if err != nil {
		return nil, err
	}

	colors := make([]string, 0, len(detection.DetectedItems))
	recommendations := make([]string, 0, len(detection.DetectedItems))
	confidence := 0.0
	for _, garment := range detection.DetectedItems {
		if garment.Color != "" {
			colors = append(colors, garment.Color)
		}
		recommendations = append(recommendations,
			fmt.Sprintf("Your %s is a strong match for this look.", garment.Name))
		confidence += garment.Confidence
	}

	score := models.MinScore
	if n := len(detection.DetectedItems); n > 0 {
		mean := confidence / float64(n)
		score = models.MinScore + int(mean*float64(models.MaxScore-models.MinScore)+0.5)
	}

	return &models.AnalysisResult{
		Style:           "Casual",
		Colors:          colors,
		Score:           clampScore(score),
		Recommendations: recommendations,
		Occasion:        meta.Occasion,
		Season:          meta.Season,
		Weather:         meta.Weather,
		Time:            meta.Time,
		Mood:            meta.Mood,
	}, nil
}

// WardrobeEntry is one item returned by the backend wardrobe listing.
type WardrobeEntry struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Season   string `json:"season"`
	Color    string `json:"color"`
	Style    string `json:"style"`
	PhotoURL string `json:"photo_url"`
}

// AddToWardrobe uploads an image with metadata via multipart POST /wardrobe.
func (c *RemoteClient) AddToWardrobe(ctx context.Context, image io.Reader, filename string, metadata map[string]string) (*WardrobeEntry, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("copy image: %w", err)
	}
	for k, v := range metadata {
		if err := writer.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("write field %s: %w", k, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/wardrobe", &buf)
	if err != nil {
		return nil, fmt.Errorf("build wardrobe request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	var entry WardrobeEntry
	if err := c.do(req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// WardrobePage is a paginated wardrobe listing.
type WardrobePage struct {
	Items []WardrobeEntry `json:"items"`
	Total int             `json:"total"`
}

// GetWardrobe lists wardrobe items with optional filters and pagination.
func (c *RemoteClient) GetWardrobe(ctx context.Context, category, season, color, style string, limit, offset int) (*WardrobePage, error) {
	q := url.Values{}
	for k, v := range map[string]string{"category": category, "season": season, "color": color, "style": style} {
		if v != "" {
			q.Set(k, v)
		}
	}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/wardrobe?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build wardrobe request: %w", err)
	}
	c.authorize(req)

	var page WardrobePage
	if err := c.do(req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateOutfit asks the backend to bundle the given clothing ids.
func (c *RemoteClient) CreateOutfit(ctx context.Context, clothingIDs []string) error {
	body, err := json.Marshal(map[string][]string{"clothing_ids": clothingIDs})
	if err != nil {
		return fmt.Errorf("marshal outfit request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/outfits", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build outfit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	return c.do(req, nil)
}

// GetOutfits lists backend outfits with pagination.
func (c *RemoteClient) GetOutfits(ctx context.Context, limit, offset int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/outfits?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build outfits request: %w", err)
	}
	c.authorize(req)

	var raw json.RawMessage
	if err := c.do(req, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *RemoteClient) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func (c *RemoteClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("call %s: status %d: %s", req.URL.Path, resp.StatusCode, body)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}

func clampScore(score int) int {
	if score < models.MinScore {
		return models.MinScore
	}
	if score > models.MaxScore {
		return models.MaxScore
	}
	return score
}
