package simulate

import (
	"context"
	"errors"
	"fleet-route-service/internal/domain"
	"sync"
	"time"
)

const DefaultInterval = 5 * time.Second

// Feed holds marker positions and drifts them one jitter step per tick.
// Steps accumulate, so markers wander from their starting points.
type Feed struct {
	mu      sync.Mutex
	jitter  *Jitter
	markers []domain.LiveVehicle
}

func NewFeed(initial []domain.LiveVehicle, j *Jitter) *Feed {
	if j == nil {
		j = NewJitter(DefaultAmplitude, nil)
	}
	return &Feed{
		jitter:  j,
		markers: append([]domain.LiveVehicle(nil), initial...),
	}
}

// Snapshot returns a copy of the current positions.
func (f *Feed) Snapshot() []domain.LiveVehicle {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.LiveVehicle(nil), f.markers...)
}

// Step advances every marker once and returns the new positions.
func (f *Feed) Step() []domain.LiveVehicle {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markers = f.jitter.Apply(f.markers)
	return append([]domain.LiveVehicle(nil), f.markers...)
}

// Run emits the current snapshot, then a new step every interval, until ctx
// is done or emit fails. A non-positive interval uses DefaultInterval.
func (f *Feed) Run(ctx context.Context, interval time.Duration, emit func([]domain.LiveVehicle) error) error {
	if emit == nil {
		return errors.New("run feed: emit must be non-nil")
	}
	if interval <= 0 {
		interval = DefaultInterval
	}

	if err := emit(f.Snapshot()); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := emit(f.Step()); err != nil {
				return err
			}
		}
	}
}
