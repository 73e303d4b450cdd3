package product

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	// Products on sale anywhere right now, with their category
	ListAvailable(ctx context.Context) ([]*Product, error)

	// Current unit prices for the given product ids; products that do
	// not exist are simply absent from the result
	GetPrices(ctx context.Context, ids []int64) (map[int64]decimal.Decimal, error)
}
