package domain

import "sort"

// Represents an ordered stop on a route.
// Order defines the sequence of the route path; waypoints are immutable
// once loaded from reference data.
type Waypoint struct {
	Coordinates `yaml:",inline"`
	Name        string `json:"name" yaml:"name"`
	Order       int    `json:"order" yaml:"order"`
}

// Published figures shown next to a route on the dashboard.
// They are display data and are never fed back into the cost model.
type RouteReference struct {
	DistanceKm      float64 `json:"distance" yaml:"distance"`
	FuelLiters      float64 `json:"fuelConsumption" yaml:"fuelConsumption"`
	CO2Kg           float64 `json:"co2" yaml:"co2"`
	TimeMinutes     float64 `json:"time" yaml:"time"`
	AreaKm2         float64 `json:"areaCovered" yaml:"areaCovered"`
	LoadUtilization float64 `json:"loadUtilization" yaml:"loadUtilization"`
}

// Represents a named sample route with its waypoint sequence.
type Route struct {
	ID        int            `json:"id" yaml:"id"`
	Name      string         `json:"name" yaml:"name"`
	Waypoints []Waypoint     `json:"waypoints" yaml:"waypoints"`
	Reference RouteReference `json:"reference" yaml:"reference"`
}

// Coordinates returns the route path in waypoint order.
func (r Route) Coordinates() []Coordinates {
	wps := SortWaypoints(r.Waypoints)
	out := make([]Coordinates, 0, len(wps))
	for _, wp := range wps {
		out = append(out, wp.Coordinates)
	}
	return out
}

// SortWaypoints returns a copy of wps ordered by Order.
// Waypoints sharing an Order keep their input sequence.
func SortWaypoints(wps []Waypoint) []Waypoint {
	out := append([]Waypoint(nil), wps...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Kind of a known delivery location.
type LocationKind string

const (
	LocationWarehouse LocationKind = "warehouse"
	LocationDelivery  LocationKind = "delivery"
)

// A named place that free-text route parameters can be resolved against.
type Location struct {
	Coordinates `yaml:",inline"`
	Name        string       `json:"name" yaml:"name"`
	Kind        LocationKind `json:"type" yaml:"type"`
}
