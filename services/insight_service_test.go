package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"storefront/models"
)

type fakeGenerator struct {
	lastPrompt string
	text       string
	err        error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.text, f.err
}

func TestProductDescriptionPrompt(t *testing.T) {
	gen := &fakeGenerator{text: "Great watch. Buy it."}
	svc := NewInsightService(gen)

	got := svc.ProductDescription(context.Background(), "Minimalist Watch", "Accessories")

	if got != "Great watch. Buy it." {
		t.Fatalf("unexpected description: %q", got)
	}
	if !strings.Contains(gen.lastPrompt, `"Minimalist Watch"`) || !strings.Contains(gen.lastPrompt, `"Accessories"`) {
		t.Fatalf("prompt missing product details: %q", gen.lastPrompt)
	}
}

func TestProductDescriptionDefaultsCategory(t *testing.T) {
	gen := &fakeGenerator{text: "Copy."}
	svc := NewInsightService(gen)

	svc.ProductDescription(context.Background(), "Widget", "")

	if !strings.Contains(gen.lastPrompt, `"General"`) {
		t.Fatalf("expected General category fallback in prompt: %q", gen.lastPrompt)
	}
}

func TestProductDescriptionFallbacks(t *testing.T) {
	svc := NewInsightService(&fakeGenerator{err: errors.New("quota exceeded")})
	if got := svc.ProductDescription(context.Background(), "Widget", "Home"); got != fallbackDescription {
		t.Fatalf("expected error fallback, got %q", got)
	}

	svc = NewInsightService(&fakeGenerator{text: "   "})
	if got := svc.ProductDescription(context.Background(), "Widget", "Home"); got != emptyDescription {
		t.Fatalf("expected empty fallback, got %q", got)
	}

	// No generator configured at all.
	svc = NewInsightService(nil)
	if got := svc.ProductDescription(context.Background(), "Widget", "Home"); got != fallbackDescription {
		t.Fatalf("expected fallback with nil generator, got %q", got)
	}
}

func TestBusinessInsightPromptSummarizesRecentSales(t *testing.T) {
	gen := &fakeGenerator{text: "Revenue looks healthy."}
	svc := NewInsightService(gen)

	sales := make([]models.Sale, 0, 7)
	for i := 0; i < 7; i++ {
		sales = append(sales, models.Sale{
			ID:          string(rune('a' + i)),
			UserName:    "Buyer",
			TotalAmount: 10,
		})
	}

	got := svc.BusinessInsight(context.Background(), sales)

	if got != "Revenue looks healthy." {
		t.Fatalf("unexpected insight: %q", got)
	}
	if !strings.Contains(gen.lastPrompt, "Total Revenue: $70.00") {
		t.Fatalf("prompt missing revenue total: %q", gen.lastPrompt)
	}
	// Only the 5 newest sales are summarized.
	if got := strings.Count(gen.lastPrompt, "Buyer bought items worth"); got != 5 {
		t.Fatalf("expected 5 transaction summaries, got %d", got)
	}
}

func TestBusinessInsightFallbacks(t *testing.T) {
	svc := NewInsightService(&fakeGenerator{err: errors.New("boom")})
	if got := svc.BusinessInsight(context.Background(), nil); got != fallbackBusinessInsight {
		t.Fatalf("expected error fallback, got %q", got)
	}

	svc = NewInsightService(&fakeGenerator{text: ""})
	if got := svc.BusinessInsight(context.Background(), nil); got != emptyBusinessInsight {
		t.Fatalf("expected empty fallback, got %q", got)
	}
}
