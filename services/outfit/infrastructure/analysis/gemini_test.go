package analysis

import (
	"testing"

	"github.com/aikombin/aikombin-server/services/outfit/domain/models"
)

func TestParseGeminiResult(t *testing.T) {
	t.Run("plain JSON", func(t *testing.T) {
		result, err := parseGeminiResult(`{"style":"Smart Casual","colors":["Navy","White"],"score":88,"recommendations":["a","b","c"]}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Style != "Smart Casual" || result.Score != 88 {
			t.Fatalf("unexpected result: %+v", result)
		}
	})

	t.Run("markdown fenced JSON", func(t *testing.T) {
		reply := "```json\n{\"style\":\"Casual\",\"colors\":[\"Blue\"],\"score\":95,\"recommendations\":[]}\n```"
		result, err := parseGeminiResult(reply)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Score != 95 {
			t.Fatalf("expected score 95, got %d", result.Score)
		}
	})

	t.Run("out-of-range score is clamped", func(t *testing.T) {
		result, err := parseGeminiResult(`{"style":"Casual","colors":[],"score":42,"recommendations":[]}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Score != models.MinScore {
			t.Fatalf("expected score clamped to %d, got %d", models.MinScore, result.Score)
		}
	})

	t.Run("no JSON object", func(t *testing.T) {
		if _, err := parseGeminiResult("I cannot analyze this image."); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("malformed JSON", func(t *testing.T) {
		if _, err := parseGeminiResult(`{"style": "Casual",`); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
