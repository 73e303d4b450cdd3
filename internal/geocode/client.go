package geocode

import "context"

// Client resolves a free-text address into coordinates through an
// external provider. Implementations must report every failure mode
// (transport error, provider error, unknown address) as ErrUnavailable.
type Client interface {
	Geocode(ctx context.Context, apiKey, address string) (Point, error)
}
