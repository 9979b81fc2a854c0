package cache

import (
	"context"
	"errors"
	"fleet-route-service/internal/platform/obs"
	"fleet-route-service/internal/ports"
	"strings"
	"sync"
)

// DistanceCache is an in-memory memo of origin->destination distance results.
// Keys are expected to be consistent (e.g., already normalized) by the caller.
// It is safe for concurrent use.
type DistanceCache struct {
	mu      sync.RWMutex
	entries map[string]map[string]ports.DistanceResult
}

func NewDistanceCache() *DistanceCache {
	return &DistanceCache{entries: make(map[string]map[string]ports.DistanceResult)}
}

// Fetch cached distances for one origin and multiple destinations.
// Destinations without an entry are absent from the result.
func (c *DistanceCache) GetMany(
	ctx context.Context,
	origin string,
	destinations []string,
) (_ map[string]ports.DistanceResult, err error) {
	defer obs.Time(ctx, "distance.cache.GetMany")(&err)

	if origin == "" {
		return nil, errors.New("get distance cache: origin must not be empty")
	}

	out := make(map[string]ports.DistanceResult, len(destinations))
	if len(destinations) == 0 {
		return out, nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	row := c.entries[origin]
	for _, d := range destinations {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if r, ok := row[d]; ok {
			out[d] = r
		}
	}

	return out, nil
}

// Store many distance results for a single origin.
func (c *DistanceCache) PutMany(
	ctx context.Context,
	origin string,
	results map[string]ports.DistanceResult,
) error {
	if origin == "" {
		return errors.New("insert distance cache: origin must not be empty")
	}

	if len(results) == 0 {
		return nil
	}

	for dest := range results {
		if strings.TrimSpace(dest) == "" {
			return errors.New("insert distance cache: empty destination key")
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	row, ok := c.entries[origin]
	if !ok {
		row = make(map[string]ports.DistanceResult, len(results))
		c.entries[origin] = row
	}
	for dest, r := range results {
		row[dest] = r
	}

	return nil
}

// Len reports the number of cached pairs.
func (c *DistanceCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, row := range c.entries {
		n += len(row)
	}
	return n
}
