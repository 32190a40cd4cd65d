// Package geo answers "which known points lie within R km of P".
// Distances are great-circle (haversine) on a sphere of radius 6371 km.
package geo

import (
	"math"

	"geoalert/internal/domain"
	"geoalert/pkg/e"
)

const EarthRadiusKm = 6371.0

// DefaultRadiusKm is the broadcast radius used when none is configured.
const DefaultRadiusKm = 10.0

type Candidate struct {
	ID    string       `json:"id"`
	Point domain.Point `json:"point"`
}

// DistanceKm is symmetric and returns 0 for identical points.
func DistanceKm(a, b domain.Point) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	// rounding can push h a hair past 1 for antipodal points
	h = math.Min(1, math.Max(0, h))
	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// WithinRadius keeps the candidates whose distance d from center satisfies
// 0 < d <= radiusKm, in input order. A point never counts as its own
// neighbour. Candidates with invalid coordinates are skipped; an invalid
// center fails the whole call.
func WithinRadius(center domain.Point, candidates []Candidate, radiusKm float64) ([]Candidate, error) {
	if err := center.Validate(); err != nil {
		return nil, err
	}
	if radiusKm < 0 || math.IsNaN(radiusKm) {
		return nil, e.Validation("radius_km", "must not be negative")
	}

	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Point.Validate() != nil {
			continue
		}
		d := DistanceKm(center, c.Point)
		if d > 0 && d <= radiusKm {
			out = append(out, c)
		}
	}
	return out, nil
}

func NearbyCount(center domain.Point, candidates []Candidate, radiusKm float64) (int, error) {
	nearby, err := WithinRadius(center, candidates, radiusKm)
	if err != nil {
		return 0, err
	}
	return len(nearby), nil
}

// Nearest returns the closest valid candidate and its distance. Unlike
// WithinRadius it accepts a candidate at distance 0.
func Nearest(center domain.Point, candidates []Candidate) (Candidate, float64, error) {
	if err := center.Validate(); err != nil {
		return Candidate{}, 0, err
	}

	best, bestDist, found := Candidate{}, math.Inf(1), false
	for _, c := range candidates {
		if c.Point.Validate() != nil {
			continue
		}
		if d := DistanceKm(center, c.Point); d < bestDist {
			best, bestDist, found = c, d, true
		}
	}
	if !found {
		return Candidate{}, 0, e.ErrNotFound
	}
	return best, bestDist, nil
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
