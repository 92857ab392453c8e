package geo

import (
	"strings"

	"homefinder/internal/domain/service"

	"github.com/paulmach/orb"
)

// cityCoordinates is a coarse city -> (lon, lat) lookup table standing in for
// a real geocoding service. Keys are lower-case city names.
var cityCoordinates = map[string]orb.Point{
	"hyderabad":     {78.4867, 17.3850},
	"mumbai":        {72.8777, 19.0760},
	"delhi":         {77.1025, 28.7041},
	"bangalore":     {77.5946, 12.9716},
	"chennai":       {80.2707, 13.0827},
	"kolkata":       {88.3639, 22.5726},
	"pune":          {73.8567, 18.5204},
	"vadlamudi":     {80.4364, 16.5062},
	"guntur":        {80.4365, 16.3067},
	"vijayawada":    {80.6480, 16.5062},
	"visakhapatnam": {83.2185, 17.6869},
	"tirupati":      {79.4192, 13.6288},
}

// staticGeocoder implements service.Geocoder over the fixed lookup table.
type staticGeocoder struct{}

// NewStaticGeocoder is the constructor for staticGeocoder.
func NewStaticGeocoder() service.Geocoder {
	return &staticGeocoder{}
}

// ResolveCity normalizes the city name (trim, case-fold) and looks it up in
// the table. Unknown or empty input resolves to the (0, 0) sentinel.
func (g *staticGeocoder) ResolveCity(name string) orb.Point {
	point, ok := cityCoordinates[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return orb.Point{0, 0}
	}

	return point
}
