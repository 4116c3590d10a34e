package domain

// Product is the view model rendered by the storefront.
type Product struct {
	ID       string    `json:"product_id" yaml:"product_id"`
	Title    string    `json:"product_title" yaml:"product_title"`
	Image    *Image    `json:"product_image,omitempty" yaml:"product_image,omitempty"`
	Variants []Variant `json:"product_variants" yaml:"product_variants"`
}

type Variant struct {
	ID    string `json:"variant_id" yaml:"variant_id"`
	Title string `json:"variant_title" yaml:"variant_title"`
	Price string `json:"variant_price" yaml:"variant_price"`
	Image *Image `json:"variant_image,omitempty" yaml:"variant_image,omitempty"`
}

type Image struct {
	URL     string `json:"url" yaml:"url"`
	AltText string `json:"altText" yaml:"altText"`
}
