package httpserver

import (
	"embed"
	"fmt"

	"storefront/internal/domain"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const titleLimit = 20

type productCard struct {
	ID             string
	Title          string
	ImageURL       string
	ImageAlt       string
	Price          string
	FirstVariantID string
	Options        []variantOption
}

type variantOption struct {
	ID    string
	Label string
}

type indexPage struct {
	Products []productCard
	Status   string
	Message  string
}

var statusMessages = map[string]string{
	"added":    "Product added to cart!",
	"failed":   "Failed to add product to cart.",
	"rejected": "The store rejected this item.",
}

func buildIndexPage(products []domain.Product, status string) indexPage {
	cards := make([]productCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, toCard(p))
	}
	page := indexPage{Products: cards}
	if msg, ok := statusMessages[status]; ok {
		page.Status = status
		page.Message = msg
	}
	return page
}

// toCard shapes a product for the page. A nil image renders as an empty src.
func toCard(p domain.Product) productCard {
	card := productCard{
		ID:    p.ID,
		Title: truncateTitle(p.Title),
	}
	if p.Image != nil {
		card.ImageURL = p.Image.URL
		card.ImageAlt = p.Image.AltText
	}
	if len(p.Variants) > 0 {
		card.Price = p.Variants[0].Price
		card.FirstVariantID = p.Variants[0].ID
	}
	card.Options = make([]variantOption, 0, len(p.Variants))
	for _, v := range p.Variants {
		card.Options = append(card.Options, variantOption{ID: v.ID, Label: variantLabel(v)})
	}
	return card
}

func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) > titleLimit {
		return string(runes[:titleLimit]) + "..."
	}
	return title
}

func variantLabel(v domain.Variant) string {
	return fmt.Sprintf("Variant: %s - Price: %s", v.Title, v.Price)
}
