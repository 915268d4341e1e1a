package domain

// Immutable geographic coordinates (longitude, latitude).
type Coordinates struct {
	Lon float64
	Lat float64
}

// Bounds is a latitude/longitude bounding box, e.g. the approximate NYC
// city limits used to validate trip endpoints.
type Bounds struct {
	North float64
	South float64
	East  float64
	West  float64
}

// Contains reports whether c falls inside the box (edges inclusive).
func (b Bounds) Contains(c Coordinates) bool {
	return b.South <= c.Lat && c.Lat <= b.North &&
		b.West <= c.Lon && c.Lon <= b.East
}
