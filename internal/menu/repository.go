package menu

import "context"

// Repository defines all database operations for restaurant menus
type Repository interface {

	// All menu entries, available or not, for a ranking pass
	ListEntries(ctx context.Context) ([]Entry, error)

	// Create or flip the entry for a (restaurant, product) pair
	SetAvailability(
		ctx context.Context,
		restaurantID int64,
		productID int64,
		available bool,
	) error
}
