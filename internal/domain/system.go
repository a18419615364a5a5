package domain

import "math"

// System is one star system in the catalogue: a unique case-sensitive name
// plus Cartesian coordinates in light-years. Immutable once loaded.
type System struct {
	Name string
	X    float64
	Y    float64
	Z    float64
}

// DistanceTo returns the Euclidean distance to another system in light-years.
func (s *System) DistanceTo(other *System) float64 {
	dx := s.X - other.X
	dy := s.Y - other.Y
	dz := s.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
