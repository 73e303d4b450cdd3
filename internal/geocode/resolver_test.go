package geocode

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
)

// --------------------------------------------------
// Fake client
// --------------------------------------------------

type fakeClient struct {
	mu     sync.Mutex
	points map[string]Point
	calls  map[string]int
}

func newFakeClient(points map[string]Point) *fakeClient {
	return &fakeClient{
		points: points,
		calls:  make(map[string]int),
	}
}

func (f *fakeClient) Geocode(ctx context.Context, apiKey, address string) (Point, error) {
	f.mu.Lock()
	f.calls[address]++
	f.mu.Unlock()

	point, ok := f.points[address]
	if !ok {
		return Point{}, ErrUnavailable
	}
	return point, nil
}

func (f *fakeClient) callCount(address string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[address]
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// --------------------------------------------------
// Tests
// --------------------------------------------------

func TestResolve_CacheFillOnMiss(t *testing.T) {
	point := Point{Lon: 37.6, Lat: 55.7}
	client := newFakeClient(map[string]Point{"addr": point})
	cache := NewInMemoryCache()

	resolver := NewResolver(cache, client, "key", testLogger())
	ctx := context.Background()

	first, err := resolver.Resolve(ctx, "addr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != point {
		t.Fatalf("expected %v, got %v", point, first)
	}

	// Second resolution is served from the cache.
	second, err := resolver.Resolve(ctx, "addr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second != first {
		t.Fatalf("expected identical coordinates, got %v then %v", first, second)
	}

	if got := client.callCount("addr"); got != 1 {
		t.Fatalf("expected exactly one provider call, got %d", got)
	}
}

func TestResolve_SharedAcrossCallers(t *testing.T) {
	// Two different "orders" asking for the same address hit the
	// provider once.
	point := Point{Lon: 37.6, Lat: 55.7}
	client := newFakeClient(map[string]Point{"Unknown St 999": point})
	resolver := NewResolver(NewInMemoryCache(), client, "key", testLogger())

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := resolver.Resolve(ctx, "Unknown St 999"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := client.callCount("Unknown St 999"); got != 1 {
		t.Fatalf("expected exactly one provider call, got %d", got)
	}
}

func TestResolve_ProviderFailure(t *testing.T) {
	client := newFakeClient(nil)
	resolver := NewResolver(NewInMemoryCache(), client, "key", testLogger())

	_, err := resolver.Resolve(context.Background(), "nowhere")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

// --------------------------------------------------
// Conflicting concurrent store
// --------------------------------------------------

// conflictCache misses on Lookup until Store has been rejected once,
// simulating a concurrent writer that won the race with different
// coordinates.
type conflictCache struct {
	stored   Point
	rejected bool
}

func (c *conflictCache) Lookup(ctx context.Context, address string) (*Point, error) {
	if c.rejected {
		point := c.stored
		return &point, nil
	}
	return nil, nil
}

func (c *conflictCache) Store(ctx context.Context, address string, point Point) error {
	c.rejected = true
	return ErrConflict
}

func TestResolve_ConflictKeepsFirstStored(t *testing.T) {
	stored := Point{Lon: 30.3, Lat: 59.9}
	client := newFakeClient(map[string]Point{"addr": {Lon: 37.6, Lat: 55.7}})

	resolver := NewResolver(&conflictCache{stored: stored}, client, "key", testLogger())

	got, err := resolver.Resolve(context.Background(), "addr")
	if err != nil {
		t.Fatalf("conflict must not be fatal, got %v", err)
	}
	if got != stored {
		t.Fatalf("expected first-stored value %v, got %v", stored, got)
	}
}

func TestResolve_ConcurrentSameAddress(t *testing.T) {
	point := Point{Lon: 37.6, Lat: 55.7}
	client := newFakeClient(map[string]Point{"addr": point})
	resolver := NewResolver(NewInMemoryCache(), client, "key", testLogger())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := resolver.Resolve(context.Background(), "addr")
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if got != point {
				t.Errorf("expected %v, got %v", point, got)
			}
		}()
	}
	wg.Wait()

	// Best-effort de-duplication: in-flight calls collapse to one.
	if got := client.callCount("addr"); got != 1 {
		t.Fatalf("expected one provider call for concurrent resolves, got %d", got)
	}
}
