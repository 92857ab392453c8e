package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestStaticGeocoder_ResolveCity_Normalization(t *testing.T) {
	geocoder := NewStaticGeocoder()

	expected := orb.Point{78.4867, 17.3850}
	assert.Equal(t, expected, geocoder.ResolveCity("Hyderabad"))
	assert.Equal(t, expected, geocoder.ResolveCity("  hyderabad  "))
	assert.Equal(t, expected, geocoder.ResolveCity("HYDERABAD"))
}

func TestStaticGeocoder_ResolveCity_UnknownYieldsSentinel(t *testing.T) {
	geocoder := NewStaticGeocoder()

	assert.Equal(t, orb.Point{0, 0}, geocoder.ResolveCity("Nowhereville"))
	assert.Equal(t, orb.Point{0, 0}, geocoder.ResolveCity(""))
	assert.Equal(t, orb.Point{0, 0}, geocoder.ResolveCity("   "))
}

func TestStaticGeocoder_ResolveCity_Guntur(t *testing.T) {
	geocoder := NewStaticGeocoder()

	assert.Equal(t, orb.Point{80.4365, 16.3067}, geocoder.ResolveCity("Guntur"))
}
