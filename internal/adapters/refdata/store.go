package refdata

import (
	"fleet-route-service/internal/costmodel"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/ports"
	"fmt"
	"strings"
	"time"
)

// Store is a read-only, in-memory view over a Dataset.
// It implements ports.ReferenceData and is safe for concurrent reads.
type Store struct {
	ds        Dataset
	locations map[string]domain.Location
}

var _ ports.ReferenceData = (*Store)(nil)

func NewStore(ds *Dataset) *Store {
	s := &Store{
		ds:        *ds,
		locations: make(map[string]domain.Location, len(ds.Locations)),
	}
	for _, l := range ds.Locations {
		s.locations[locationKey(l.Name)] = l
	}
	return s
}

// Locate resolves a free-text location name, ignoring case and extra spaces.
func (s *Store) Locate(name string) (domain.Location, error) {
	l, ok := s.locations[locationKey(name)]
	if !ok {
		return domain.Location{}, fmt.Errorf("locate %q: %w", name, domain.ErrUnknownLocation)
	}
	return l, nil
}

// Vehicles returns vehicles matching filter, in dataset order.
// Query is a case-insensitive substring match on the vehicle name.
func (s *Store) Vehicles(filter ports.VehicleFilter) []domain.Vehicle {
	q := strings.ToLower(strings.TrimSpace(filter.Query))

	out := make([]domain.Vehicle, 0, len(s.ds.Vehicles))
	for _, v := range s.ds.Vehicles {
		if filter.Status != "" && v.Status != filter.Status {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(v.Name), q) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func (s *Store) Vehicle(id int) (domain.Vehicle, error) {
	for _, v := range s.ds.Vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Vehicle{}, fmt.Errorf("vehicle %d: %w", id, domain.ErrNotFound)
}

func (s *Store) Routes() []domain.Route {
	return append([]domain.Route(nil), s.ds.Routes...)
}

func (s *Store) Route(id int) (domain.Route, error) {
	for _, r := range s.ds.Routes {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Route{}, fmt.Errorf("route %d: %w", id, domain.ErrNotFound)
}

func (s *Store) PriorityOptions() []domain.PriorityOption {
	return append([]domain.PriorityOption(nil), s.ds.Priorities...)
}

// DefaultParameters returns a copy; callers may modify it freely.
func (s *Store) DefaultParameters() domain.OptimizationParameters {
	p := s.ds.DefaultParameters
	p.Destinations = append([]string(nil), p.Destinations...)
	return p
}

func (s *Store) LiveVehicles() []domain.LiveVehicle {
	return append([]domain.LiveVehicle(nil), s.ds.LiveVehicles...)
}

func (s *Store) EmissionFactors() costmodel.EmissionFactors {
	out := make(costmodel.EmissionFactors, len(s.ds.EmissionFactors))
	for k, v := range s.ds.EmissionFactors {
		out[k] = v
	}
	return out
}

func (s *Store) FleetStats() domain.FleetStats {
	var st domain.FleetStats
	var utilSum float64
	for _, v := range s.ds.Vehicles {
		st.Total++
		utilSum += v.Utilization()
		switch v.Status {
		case domain.StatusActive:
			st.Active++
		case domain.StatusMaintenance:
			st.Maintenance++
		}
		if v.IsElectric() {
			st.Electric++
		}
	}
	if st.Total > 0 {
		st.AverageUtilization = utilSum / float64(st.Total)
	}
	return st
}

// Drivers returns drivers matching filter, in dataset order.
// Query is a case-insensitive substring match on the name or employee id.
func (s *Store) Drivers(filter ports.DriverFilter) []domain.Driver {
	q := strings.ToLower(strings.TrimSpace(filter.Query))

	out := make([]domain.Driver, 0, len(s.ds.Drivers))
	for _, d := range s.ds.Drivers {
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(d.Name), q) &&
			!strings.Contains(strings.ToLower(d.EmployeeID), q) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func (s *Store) Driver(id int) (domain.Driver, error) {
	for _, d := range s.ds.Drivers {
		if d.ID == id {
			return d, nil
		}
	}
	return domain.Driver{}, fmt.Errorf("driver %d: %w", id, domain.ErrNotFound)
}

func (s *Store) DriverStats(now time.Time) domain.DriverStats {
	return domain.SummarizeDrivers(s.ds.Drivers, now)
}

func (s *Store) SafetyThresholds() domain.SafetyThresholds {
	return s.ds.SafetyThresholds
}
