package domain

// Immutable geographic coordinates in decimal degrees.
// Range is not validated; callers supply fixture data.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lng" yaml:"lng"`
}

// Return coordinates as [lon, lat] for map/GeoJSON compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }
