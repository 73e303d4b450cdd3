package order

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusNew       = "new"
	StatusCooking   = "cooking"
	StatusDelivery  = "delivery"
	StatusDelivered = "delivered"
)

const (
	PaymentCash     = "cash"
	PaymentCashless = "cashless"
)

type Order struct {
	ID           int64           `json:"id"`
	Status       string          `json:"status"`
	Payment      string          `json:"payment"`
	Firstname    string          `json:"firstname"`
	Lastname     string          `json:"lastname"`
	Phonenumber  string          `json:"phonenumber"`
	Address      string          `json:"address"`
	Comment      string          `json:"comment"`
	RestaurantID *int64          `json:"restaurant_id"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	RegisteredAt time.Time       `json:"registered_at"`
	Lines        []Line          `json:"lines"`
}

// Line is one order position with the unit price frozen at
// registration time, so later catalog edits do not change the order.
type Line struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// ProductIDs returns the distinct products the order requires.
func (o *Order) ProductIDs() []int64 {
	seen := make(map[int64]struct{}, len(o.Lines))
	ids := make([]int64, 0, len(o.Lines))

	for _, line := range o.Lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}

	return ids
}
