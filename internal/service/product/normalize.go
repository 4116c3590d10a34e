package product

import (
	"storefront/internal/domain"
	"storefront/internal/storefront"
)

// Normalize flattens a products connection into view models. The output has
// one entry per input node, in input order; nil nodes become empty products.
func Normalize(conn storefront.ProductConnection) []domain.Product {
	out := make([]domain.Product, 0, len(conn.Nodes))
	for _, node := range conn.Nodes {
		out = append(out, normalizeProduct(node))
	}
	return out
}

func normalizeProduct(p *storefront.Product) domain.Product {
	if p == nil {
		return domain.Product{Variants: []domain.Variant{}}
	}
	variants := make([]domain.Variant, 0, len(p.Variants.Nodes))
	for _, v := range p.Variants.Nodes {
		if v == nil || v.ID == "" {
			continue
		}
		variants = append(variants, normalizeVariant(v))
	}
	return domain.Product{
		ID:       p.ID,
		Title:    p.Title,
		Image:    representativeImage(p.Media),
		Variants: variants,
	}
}

func normalizeVariant(v *storefront.Variant) domain.Variant {
	price := ""
	if v.Price != nil {
		price = v.Price.Amount
	}
	return domain.Variant{
		ID:    v.ID,
		Title: v.Title,
		Price: price,
		Image: toImage(v.Image),
	}
}

// representativeImage uses the first media node only; there is no fallback
// to later nodes or variant images.
func representativeImage(m storefront.MediaConnection) *domain.Image {
	if len(m.Nodes) == 0 || m.Nodes[0] == nil {
		return nil
	}
	return toImage(m.Nodes[0].Image)
}

func toImage(img *storefront.Image) *domain.Image {
	if img == nil {
		return nil
	}
	return &domain.Image{URL: img.URL, AltText: img.AltText}
}

// FirstVariantID returns the id the shop adds to the cart for a product.
func FirstVariantID(p domain.Product) (string, error) {
	if len(p.Variants) == 0 || p.Variants[0].ID == "" {
		return "", domain.ErrNoVariants
	}
	return p.Variants[0].ID, nil
}
