// Package simulate moves live vehicle markers for display when no GPS feed exists.
package simulate

import (
	"fleet-route-service/internal/domain"
	"math/rand/v2"
)

// DefaultAmplitude is the full width, in degrees, of one jitter step.
const DefaultAmplitude = 0.002

// Jitter displaces markers by a uniform offset in [-Amplitude/2, Amplitude/2)
// on each axis. It is not safe for concurrent use.
type Jitter struct {
	Amplitude float64
	rng       *rand.Rand
}

// NewJitter returns a Jitter drawing from rng. A nil rng uses a random seed.
func NewJitter(amplitude float64, rng *rand.Rand) *Jitter {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Jitter{Amplitude: amplitude, rng: rng}
}

// Apply returns a displaced copy of markers.
func (j *Jitter) Apply(markers []domain.LiveVehicle) []domain.LiveVehicle {
	out := make([]domain.LiveVehicle, len(markers))
	for i, m := range markers {
		m.Lat += (j.rng.Float64() - 0.5) * j.Amplitude
		m.Lon += (j.rng.Float64() - 0.5) * j.Amplitude
		out[i] = m
	}
	return out
}
