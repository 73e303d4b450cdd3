package ranking

import (
	"sort"

	"github.com/qqJonni/star-burger/internal/menu"
)

// FeasibleRestaurants returns the ids of every restaurant whose
// available products cover the whole requirement set. The availability
// index is built once, so the cost is linear in the menu size plus one
// subset test per restaurant.
//
// An empty requirement set is satisfiable by every restaurant that
// appears in the menu. Ids are returned in ascending order.
func FeasibleRestaurants(required []int64, entries []menu.Entry) []int64 {
	available := make(map[int64]map[int64]struct{})

	for _, entry := range entries {
		set, ok := available[entry.RestaurantID]
		if !ok {
			set = make(map[int64]struct{})
			available[entry.RestaurantID] = set
		}
		if entry.Availability {
			set[entry.ProductID] = struct{}{}
		}
	}

	var feasible []int64

	for restaurantID, products := range available {
		covered := true
		for _, productID := range required {
			if _, ok := products[productID]; !ok {
				covered = false
				break
			}
		}
		if covered {
			feasible = append(feasible, restaurantID)
		}
	}

	sort.Slice(feasible, func(i, j int) bool {
		return feasible[i] < feasible[j]
	})

	return feasible
}
