package httpserver

import (
	"testing"

	"storefront/internal/domain"
)

func TestTruncateTitle(t *testing.T) {
	cases := map[string]string{
		"":                               "",
		"Short":                          "Short",
		"Exactly twenty chars":           "Exactly twenty chars",
		"Twenty-one characters":          "Twenty-one characters"[:20] + "...",
		"Ünïcödé snowboard édition pro": "Ünïcödé snowboard éd...",
	}
	for in, want := range cases {
		if got := truncateTitle(in); got != want {
			t.Fatalf("truncateTitle(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToCardWithoutImageOrVariants(t *testing.T) {
	card := toCard(domain.Product{ID: "p1", Title: "Bare", Variants: []domain.Variant{}})
	if card.ImageURL != "" || card.Price != "" || card.FirstVariantID != "" {
		t.Fatalf("expected empty image and price, got %+v", card)
	}
	if len(card.Options) != 0 {
		t.Fatalf("expected no options, got %d", len(card.Options))
	}
}

func TestBuildIndexPageIgnoresUnknownStatus(t *testing.T) {
	page := buildIndexPage(nil, "weird")
	if page.Status != "" || page.Message != "" {
		t.Fatalf("expected no banner, got %+v", page)
	}
}
