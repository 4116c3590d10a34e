package domain

type Cart struct {
	ID          string     `json:"id" yaml:"id"`
	CheckoutURL string     `json:"checkoutUrl" yaml:"checkoutUrl"`
	Lines       []CartLine `json:"lines" yaml:"lines"`
}

type CartLine struct {
	ID               string `json:"id" yaml:"id"`
	Quantity         int    `json:"quantity" yaml:"quantity"`
	MerchandiseID    string `json:"merchandiseId" yaml:"merchandiseId"`
	MerchandiseTitle string `json:"merchandiseTitle" yaml:"merchandiseTitle"`
}
