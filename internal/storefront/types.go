package storefront

// ProductConnection is the products(first: 40) payload. Node pointers may be
// nil when the API returns null entries.
type ProductConnection struct {
	Nodes []*Product `json:"nodes"`
}

type Product struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Media    MediaConnection   `json:"media"`
	Variants VariantConnection `json:"variants"`
}

type MediaConnection struct {
	Nodes []*Media `json:"nodes"`
}

// Media only carries an image for MediaImage nodes; video and 3D media decode
// with a nil Image.
type Media struct {
	Image *Image `json:"image"`
}

type VariantConnection struct {
	Nodes []*Variant `json:"nodes"`
}

type Variant struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Price *Money `json:"price"`
	Image *Image `json:"image"`
}

type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode,omitempty"`
}

type Image struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
}

// CartLineInput is one entry of the AddToCart $lines variable.
type CartLineInput struct {
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`
}

type Cart struct {
	ID          string             `json:"id"`
	CheckoutURL string             `json:"checkoutUrl"`
	Lines       CartLineConnection `json:"lines"`
}

type CartLineConnection struct {
	Edges []CartLineEdge `json:"edges"`
}

type CartLineEdge struct {
	Node CartLine `json:"node"`
}

type CartLine struct {
	ID          string      `json:"id"`
	Quantity    int         `json:"quantity"`
	Merchandise Merchandise `json:"merchandise"`
}

type Merchandise struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse[T any] struct {
	Data   *T             `json:"data"`
	Errors []GraphQLError `json:"errors,omitempty"`
}

type productsData struct {
	Products *ProductConnection `json:"products"`
}

type cartCreateData struct {
	CartCreate *struct {
		Cart *struct {
			ID string `json:"id"`
		} `json:"cart"`
	} `json:"cartCreate"`
}

type cartLinesAddData struct {
	CartLinesAdd *struct {
		Cart       *Cart       `json:"cart"`
		UserErrors []UserError `json:"userErrors"`
	} `json:"cartLinesAdd"`
}
