package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/aikombin/aikombin-server/pkg/config"
	"github.com/aikombin/aikombin-server/pkg/logger"
	"github.com/aikombin/aikombin-server/pkg/recordstore"
	closetmodels "github.com/aikombin/aikombin-server/services/closet/domain/models"
	outfitdomain "github.com/aikombin/aikombin-server/services/outfit/domain"
	"github.com/aikombin/aikombin-server/services/outfit/domain/models"
)

var validMeta = models.EventMetadata{
	Occasion: "Work", Season: "Winter", Weather: "Rainy", Time: "Morning", Mood: "Confident",
}

// fakeAnalyzer lets tests control the analysis outcome without the stub's delay.
type fakeAnalyzer struct {
	result *models.AnalysisResult
	err    error
	block  bool
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, photo string, meta models.EventMetadata) (*models.AnalysisResult, error) {
	if f.block {
		<-ctx.Done()
		return nil, fmt.Errorf("%w: %w", outfitdomain.ErrAnalysisFailed, ctx.Err())
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeAnalyzer) DetectGarments(ctx context.Context, imageBase64 string) (*models.DetectionResult, error) {
	return &models.DetectionResult{AnalysisDate: time.Now()}, nil
}

func testLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

func newTestService(analyzer *fakeAnalyzer) (*OutfitService, *recordstore.MemoryStore) {
	store := recordstore.NewMemoryStore()
	svc := NewOutfitService(store, analyzer, analyzer, nil, testLogger(), 5*time.Second)
	return svc, store
}

func goodResult() *models.AnalysisResult {
	return &models.AnalysisResult{Style: "Casual", Colors: []string{"Blue"}, Score: 90}
}

func TestOutfitService_Analyze(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the analyzer result", func(t *testing.T) {
		svc, _ := newTestService(&fakeAnalyzer{result: goodResult()})
		result, err := svc.Analyze(ctx, "photo.jpg", validMeta)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Score != 90 {
			t.Fatalf("expected score 90, got %d", result.Score)
		}
	})

	t.Run("missing photo", func(t *testing.T) {
		svc, _ := newTestService(&fakeAnalyzer{result: goodResult()})
		if _, err := svc.Analyze(ctx, "", validMeta); !errors.Is(err, outfitdomain.ErrMissingPhoto) {
			t.Fatalf("expected ErrMissingPhoto, got %v", err)
		}
	})

	t.Run("incomplete metadata", func(t *testing.T) {
		svc, _ := newTestService(&fakeAnalyzer{result: goodResult()})
		meta := validMeta
		meta.Weather = ""
		if _, err := svc.Analyze(ctx, "photo.jpg", meta); !errors.Is(err, outfitdomain.ErrIncompleteMetadata) {
			t.Fatalf("expected ErrIncompleteMetadata, got %v", err)
		}
	})

	t.Run("analyzer failure is wrapped", func(t *testing.T) {
		svc, _ := newTestService(&fakeAnalyzer{err: errors.New("backend down")})
		_, err := svc.Analyze(ctx, "photo.jpg", validMeta)
		if !errors.Is(err, outfitdomain.ErrAnalysisFailed) {
			t.Fatalf("expected ErrAnalysisFailed, got %v", err)
		}
	})

	t.Run("timeout aborts the analysis", func(t *testing.T) {
		store := recordstore.NewMemoryStore()
		analyzer := &fakeAnalyzer{block: true}
		svc := NewOutfitService(store, analyzer, analyzer, nil, testLogger(), 20*time.Millisecond)

		_, err := svc.Analyze(ctx, "photo.jpg", validMeta)
		if !errors.Is(err, outfitdomain.ErrAnalysisFailed) {
			t.Fatalf("expected ErrAnalysisFailed, got %v", err)
		}
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected wrapped DeadlineExceeded, got %v", err)
		}
	})
}

func TestOutfitService_SaveAndList(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, _ := newTestService(&fakeAnalyzer{result: goodResult()})

	first, err := svc.SaveQuickCapture(ctx, userID, "first.jpg", validMeta, goodResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(2 * time.Millisecond) // ids are millisecond timestamps
	second, err := svc.SaveQuickCapture(ctx, userID, "second.jpg", validMeta, goodResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("newest first", func(t *testing.T) {
		outfits, err := svc.List(ctx, userID, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(outfits) != 2 {
			t.Fatalf("expected 2 outfits, got %d", len(outfits))
		}
		if outfits[0].ID != second.ID || outfits[1].ID != first.ID {
			t.Fatalf("expected newest first, got %s then %s", outfits[0].ID, outfits[1].ID)
		}
	})

	t.Run("other users see nothing", func(t *testing.T) {
		outfits, err := svc.List(ctx, uuid.New(), false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(outfits) != 0 {
			t.Fatalf("expected empty listing, got %d", len(outfits))
		}
	})

	t.Run("favorites filter", func(t *testing.T) {
		if err := svc.ToggleFavorite(ctx, userID, first.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		favorites, err := svc.List(ctx, userID, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(favorites) != 1 || favorites[0].ID != first.ID {
			t.Fatalf("expected only the first outfit, got %+v", favorites)
		}
		if !favorites[0].IsFavorite {
			t.Fatal("favorite flag must be set")
		}
	})

	t.Run("toggle back", func(t *testing.T) {
		if err := svc.ToggleFavorite(ctx, userID, first.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		favorites, err := svc.List(ctx, userID, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(favorites) != 0 {
			t.Fatalf("expected no favorites after second toggle, got %d", len(favorites))
		}
	})

	t.Run("toggle unknown id is a no-op", func(t *testing.T) {
		if err := svc.ToggleFavorite(ctx, userID, "does-not-exist"); err != nil {
			t.Fatalf("expected silent no-op, got %v", err)
		}
	})

	t.Run("delete removes immediately", func(t *testing.T) {
		if err := svc.Delete(ctx, userID, second.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		outfits, err := svc.List(ctx, userID, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(outfits) != 1 || outfits[0].ID != first.ID {
			t.Fatalf("expected only the first outfit, got %+v", outfits)
		}
	})

	t.Run("delete unknown id is a no-op", func(t *testing.T) {
		if err := svc.Delete(ctx, userID, "does-not-exist"); err != nil {
			t.Fatalf("expected silent no-op, got %v", err)
		}
	})
}

func TestOutfitService_ListPage(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, _ := newTestService(&fakeAnalyzer{result: goodResult()})

	for range 5 {
		if _, err := svc.SaveQuickCapture(ctx, userID, "look.jpg", validMeta, goodResult()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	page, total, err := svc.ListPage(ctx, userID, 2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
	if len(page) != 2 {
		t.Fatalf("expected page of 2, got %d", len(page))
	}

	page, total, err = svc.ListPage(ctx, userID, 10, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 5 || len(page) != 1 {
		t.Fatalf("expected last page of 1, got %d of %d", len(page), total)
	}

	page, _, err = svc.ListPage(ctx, userID, 10, 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page) != 0 {
		t.Fatalf("expected empty page past the end, got %d", len(page))
	}

	page, total, err = svc.ListPage(ctx, userID, 2, -3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 5 || len(page) != 2 {
		t.Fatalf("expected first page of 2 for a negative offset, got %d of %d", len(page), total)
	}
}

func TestOutfitService_CreateFromClothingIDs(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, _ := newTestService(&fakeAnalyzer{result: goodResult()})

	wardrobe := []closetmodels.ClothingItem{
		{ID: "1", Category: closetmodels.CategoryTop, Photo: "a"},
		{ID: "2", Category: closetmodels.CategoryBottom, Photo: "b"},
		{ID: "3", Category: closetmodels.CategoryTop, Photo: "c"},
	}

	t.Run("bundles by category, later id wins", func(t *testing.T) {
		outfit, err := svc.CreateFromClothingIDs(ctx, userID, "Friday look", []string{"1", "2", "3"}, wardrobe)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(outfit.Clothes) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(outfit.Clothes))
		}
		if outfit.Clothes[closetmodels.CategoryTop].ID != "3" {
			t.Fatalf("expected later top to win, got %s", outfit.Clothes[closetmodels.CategoryTop].ID)
		}
	})

	t.Run("unknown ids are ignored", func(t *testing.T) {
		outfit, err := svc.CreateFromClothingIDs(ctx, userID, "look", []string{"2", "nope"}, wardrobe)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(outfit.Clothes) != 1 {
			t.Fatalf("expected 1 category, got %d", len(outfit.Clothes))
		}
	})

	t.Run("all-unknown fails with empty selection", func(t *testing.T) {
		if _, err := svc.CreateFromClothingIDs(ctx, userID, "look", []string{"nope"}, wardrobe); !errors.Is(err, outfitdomain.ErrEmptySelection) {
			t.Fatalf("expected ErrEmptySelection, got %v", err)
		}
	})
}
