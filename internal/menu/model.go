package menu

// Entry says whether a restaurant currently sells a product.
// There is at most one entry per (restaurant, product) pair and it is
// the sole source of truth for order feasibility.
type Entry struct {
	RestaurantID int64 `json:"restaurant_id"`
	ProductID    int64 `json:"product_id"`
	Availability bool  `json:"availability"`
}
