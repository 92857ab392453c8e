// Package geo provides the geospatial primitives of the listing search:
// great-circle distance and city-name geocoding.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const earthRadiusKm = 6371.0

// Distance calculates the great-circle distance between two points in
// kilometers using the Haversine formula. Points are (lon, lat) in degrees.
func Distance(p1, p2 orb.Point) float64 {
	lat1Rad := p1[1] * math.Pi / 180
	lng1Rad := p1[0] * math.Pi / 180
	lat2Rad := p2[1] * math.Pi / 180
	lng2Rad := p2[0] * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
