package distance

import (
	"context"
	"fleet-route-service/internal/ports"
	"fmt"
)

type MockPair struct {
	From, To string
	Km       float64
	Seconds  int
}

// MockDistanceProvider serves fixed pairs and counts lookups.
type MockDistanceProvider struct {
	m     map[string]ports.DistanceResult
	Calls int
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[string]ports.DistanceResult, len(pairs))
	for _, p := range pairs {
		m[p.From+"|"+p.To] = ports.DistanceResult{DistanceKm: p.Km, DurationSeconds: p.Seconds}
	}
	return &MockDistanceProvider{m: m}
}

func (p *MockDistanceProvider) GetDistance(ctx context.Context, origin, destination string) (ports.DistanceResult, error) {
	p.Calls++
	r, ok := p.m[origin+"|"+destination]
	if !ok {
		return ports.DistanceResult{}, fmt.Errorf("missing pair %q -> %q", origin, destination)
	}

	return r, nil
}
