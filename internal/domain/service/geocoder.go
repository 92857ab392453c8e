// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "github.com/paulmach/orb"

// Geocoder resolves a free-text city name to approximate coordinates.
// Unknown or empty input resolves to the (0, 0) sentinel, never an error.
// The narrow interface keeps the static lookup table replaceable by a real
// geocoding API without touching the search engine or listing update logic.
type Geocoder interface {
	// ResolveCity maps a city name to a (lon, lat) point.
	ResolveCity(name string) orb.Point
}
