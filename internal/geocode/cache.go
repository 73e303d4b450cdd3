package geocode

import (
	"context"
	"errors"
)

// Point is a geographic coordinate pair.
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

var (
	// ErrConflict is returned by Store when the address already has
	// different coordinates persisted. The first-stored value wins.
	ErrConflict = errors.New("geocode: conflicting coordinates for address")

	// ErrUnavailable is returned when an address cannot be resolved:
	// provider error, network failure, timeout, or unknown address.
	ErrUnavailable = errors.New("geocode: address unavailable")
)

// Cache is a persistent address -> coordinates mapping. Entries are
// created lazily on first lookup and never expire or change.
type Cache interface {
	// Lookup returns the cached point for address, or nil on a miss.
	// The address is matched exactly as given, case and whitespace included.
	Lookup(ctx context.Context, address string) (*Point, error)

	// Store persists the point for address. Storing identical
	// coordinates for an existing address is a no-op; storing
	// different coordinates returns ErrConflict.
	Store(ctx context.Context, address string, point Point) error
}
