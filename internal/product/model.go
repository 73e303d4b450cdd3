package product

import "github.com/shopspring/decimal"

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	SpecialStatus bool            `json:"special_status"`
	Description   string          `json:"description"`
	Category      *Category       `json:"category"`
	ImageURL      string          `json:"image"`
}

// Banner is a static promo slide for the storefront carousel.
type Banner struct {
	Title string `json:"title"`
	Src   string `json:"src"`
	Text  string `json:"text"`
}
