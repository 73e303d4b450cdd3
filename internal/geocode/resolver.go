package geocode

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Resolver turns addresses into coordinates, filling the cache on miss.
// Concurrent resolutions of the same address share a single provider call.
type Resolver struct {
	cache  Cache
	client Client
	apiKey string
	group  singleflight.Group
	log    logrus.FieldLogger
}

func NewResolver(cache Cache, client Client, apiKey string, log logrus.FieldLogger) *Resolver {
	return &Resolver{
		cache:  cache,
		client: client,
		apiKey: apiKey,
		log:    log,
	}
}

// Resolve returns the coordinates for address. A cache hit never touches
// the provider. On failure the error wraps ErrUnavailable; a failed
// resolution is never reported as a zero-distance coordinate.
func (r *Resolver) Resolve(ctx context.Context, address string) (Point, error) {
	cached, err := r.cache.Lookup(ctx, address)
	if err != nil {
		r.log.WithError(err).WithField("address", address).Warn("geocode cache lookup failed")
	}
	if cached != nil {
		return *cached, nil
	}

	value, err, _ := r.group.Do(address, func() (interface{}, error) {
		return r.resolveUncached(ctx, address)
	})
	if err != nil {
		return Point{}, err
	}

	return value.(Point), nil
}

func (r *Resolver) resolveUncached(ctx context.Context, address string) (Point, error) {
	// Re-check under the flight: a previous flight for this address may
	// have filled the cache between our lookup and now.
	if cached, err := r.cache.Lookup(ctx, address); err == nil && cached != nil {
		return *cached, nil
	}

	point, err := r.client.Geocode(ctx, r.apiKey, address)
	if err != nil {
		if !errors.Is(err, ErrUnavailable) {
			err = errors.Join(ErrUnavailable, err)
		}
		return Point{}, err
	}

	if err := r.cache.Store(ctx, address, point); err != nil {
		if errors.Is(err, ErrConflict) {
			// Another writer got there first with different coordinates.
			// Keep the stored value for consistency with later lookups.
			r.log.WithField("address", address).Warn("geocode cache conflict, keeping first-stored value")

			stored, lookupErr := r.cache.Lookup(ctx, address)
			if lookupErr == nil && stored != nil {
				return *stored, nil
			}
		} else {
			r.log.WithError(err).WithField("address", address).Warn("geocode cache store failed")
		}
	}

	return point, nil
}
