package geocode

import (
	"context"
	"errors"
	"testing"
)

func TestInMemoryCache_MissReturnsNil(t *testing.T) {
	cache := NewInMemoryCache()

	point, err := cache.Lookup(context.Background(), "nowhere")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if point != nil {
		t.Fatalf("expected nil on miss, got %v", point)
	}
}

func TestInMemoryCache_StoreIdempotent(t *testing.T) {
	cache := NewInMemoryCache()
	ctx := context.Background()
	point := Point{Lon: 37.6, Lat: 55.7}

	if err := cache.Store(ctx, "addr", point); err != nil {
		t.Fatalf("first store failed: %v", err)
	}
	if err := cache.Store(ctx, "addr", point); err != nil {
		t.Fatalf("identical re-store must be a no-op, got %v", err)
	}

	got, err := cache.Lookup(ctx, "addr")
	if err != nil || got == nil {
		t.Fatalf("lookup failed: %v %v", got, err)
	}
	if *got != point {
		t.Fatalf("expected %v, got %v", point, *got)
	}
}

func TestInMemoryCache_StoreConflict(t *testing.T) {
	cache := NewInMemoryCache()
	ctx := context.Background()
	first := Point{Lon: 37.6, Lat: 55.7}

	if err := cache.Store(ctx, "addr", first); err != nil {
		t.Fatalf("first store failed: %v", err)
	}

	err := cache.Store(ctx, "addr", Point{Lon: 30.3, Lat: 59.9})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// First-stored value must survive.
	got, _ := cache.Lookup(ctx, "addr")
	if got == nil || *got != first {
		t.Fatalf("expected first-stored value kept, got %v", got)
	}
}
