package ranking

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/qqJonni/star-burger/internal/geocode"
	"github.com/qqJonni/star-burger/internal/menu"
	"github.com/qqJonni/star-burger/internal/restaurant"
)

// Candidate is one restaurant able to cook an entire order, with its
// great-circle distance to the delivery address. Candidates are
// computed fresh on every ranking call and never persisted.
type Candidate struct {
	RestaurantID   int64   `json:"restaurant_id"`
	RestaurantName string  `json:"restaurant_name"`
	DistanceKm     float64 `json:"distance_km"`
}

// Subject is the slice of an order the ranker needs.
type Subject struct {
	Address    string
	Delivered  bool
	Assigned   bool
	ProductIDs []int64
}

// Resolver yields coordinates for a free-text address.
type Resolver interface {
	Resolve(ctx context.Context, address string) (geocode.Point, error)
}

// Ranker produces the distance-ordered candidate list for an order.
type Ranker struct {
	resolver    Resolver
	concurrency int
	log         logrus.FieldLogger
}

// NewRanker builds a Ranker. concurrency bounds the number of geocoding
// requests in flight during the fan-out.
func NewRanker(resolver Resolver, concurrency int, log logrus.FieldLogger) *Ranker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Ranker{
		resolver:    resolver,
		concurrency: concurrency,
		log:         log,
	}
}

// Rank returns the feasible restaurants for ord sorted by ascending
// distance, ties broken by restaurant name. Delivered or already
// assigned orders get no candidates. A restaurant whose address cannot
// be geocoded is dropped rather than given a stand-in distance; if the
// delivery address itself cannot be geocoded the list is empty.
func (r *Ranker) Rank(
	ctx context.Context,
	ord Subject,
	restaurants []*restaurant.Restaurant,
	entries []menu.Entry,
) []Candidate {

	if ord.Delivered || ord.Assigned {
		return nil
	}

	byID := make(map[int64]*restaurant.Restaurant, len(restaurants))
	for _, res := range restaurants {
		byID[res.ID] = res
	}

	var feasible []*restaurant.Restaurant
	for _, id := range FeasibleRestaurants(ord.ProductIDs, entries) {
		if res, ok := byID[id]; ok {
			feasible = append(feasible, res)
		}
	}
	if len(feasible) == 0 {
		return []Candidate{}
	}

	origin, err := r.resolver.Resolve(ctx, ord.Address)
	if err != nil {
		r.log.WithError(err).WithField("address", ord.Address).
			Warn("delivery address failed to geocode, no candidates")
		return []Candidate{}
	}

	results := make([]*Candidate, len(feasible))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, res := range feasible {
		i, res := i, res
		g.Go(func() error {
			point, err := r.resolver.Resolve(gctx, res.Address)
			if err != nil {
				r.log.WithError(err).WithFields(logrus.Fields{
					"restaurant_id": res.ID,
					"address":       res.Address,
				}).Warn("restaurant address failed to geocode, dropping candidate")
				return nil
			}

			results[i] = &Candidate{
				RestaurantID:   res.ID,
				RestaurantName: res.Name,
				DistanceKm:     geocode.DistanceKm(origin, point),
			}
			return nil
		})
	}
	_ = g.Wait()

	candidates := make([]Candidate, 0, len(results))
	for _, c := range results {
		if c != nil {
			candidates = append(candidates, *c)
		}
	}

	// Numeric distance is the only sort key; names only break exact ties.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].DistanceKm != candidates[j].DistanceKm {
			return candidates[i].DistanceKm < candidates[j].DistanceKm
		}
		return candidates[i].RestaurantName < candidates[j].RestaurantName
	})

	return candidates
}
