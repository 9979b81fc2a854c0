package cache

import (
	"context"
	"fleet-route-service/internal/ports"
	"sync"
	"testing"
)

func TestDistanceCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewDistanceCache()

	err := c.PutMany(ctx, "HUB", map[string]ports.DistanceResult{
		"A": {DistanceKm: 1.5, DurationSeconds: 120},
		"B": {DistanceKm: 3, DurationSeconds: 240},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := c.GetMany(ctx, "HUB", []string{"A", " B ", "C", ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 hits, got %d: %+v", len(got), got)
	}
	if got["B"].DurationSeconds != 240 {
		t.Fatalf("B duration = %d, want 240", got["B"].DurationSeconds)
	}
	if _, ok := got["C"]; ok {
		t.Fatalf("C should be a miss")
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
}

func TestDistanceCacheRejectsEmptyKeys(t *testing.T) {
	ctx := context.Background()
	c := NewDistanceCache()

	if _, err := c.GetMany(ctx, "", []string{"A"}); err == nil {
		t.Fatal("expected error for empty origin")
	}
	if err := c.PutMany(ctx, "HUB", map[string]ports.DistanceResult{" ": {}}); err == nil {
		t.Fatal("expected error for empty destination")
	}
	if c.Len() != 0 {
		t.Fatalf("rejected write must not be stored, Len = %d", c.Len())
	}
}

func TestDistanceCacheConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	c := NewDistanceCache()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			origin := string(rune('a' + i))
			_ = c.PutMany(ctx, origin, map[string]ports.DistanceResult{"X": {DistanceKm: float64(i)}})
			_, _ = c.GetMany(ctx, origin, []string{"X"})
		}(i)
	}
	wg.Wait()

	if c.Len() != 8 {
		t.Fatalf("Len = %d, want 8", c.Len())
	}
}
