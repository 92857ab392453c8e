package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistance_IdenticalPoints(t *testing.T) {
	p := orb.Point{78.4867, 17.3850}

	assert.Zero(t, Distance(p, p))
}

func TestDistance_Symmetric(t *testing.T) {
	hyderabad := orb.Point{78.4867, 17.3850}
	mumbai := orb.Point{72.8777, 19.0760}

	assert.Equal(t, Distance(hyderabad, mumbai), Distance(mumbai, hyderabad))
}

func TestDistance_KnownDistances(t *testing.T) {
	tests := []struct {
		name        string
		p1, p2      orb.Point
		expectedKm  float64
		toleranceKm float64
	}{
		{
			name:        "hyderabad to mumbai",
			p1:          orb.Point{78.4867, 17.3850},
			p2:          orb.Point{72.8777, 19.0760},
			expectedKm:  623,
			toleranceKm: 10,
		},
		{
			name:        "guntur to nearby tenant point",
			p1:          orb.Point{80.4365, 16.3067},
			p2:          orb.Point{80.43, 16.31},
			expectedKm:  0.8,
			toleranceKm: 0.8,
		},
		{
			name:        "guntur to hyderabad exceeds any search radius",
			p1:          orb.Point{80.4365, 16.3067},
			p2:          orb.Point{78.4867, 17.3850},
			expectedKm:  238,
			toleranceKm: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expectedKm, Distance(tt.p1, tt.p2), tt.toleranceKm)
		})
	}
}

func TestDistance_QuarterMeridian(t *testing.T) {
	equator := orb.Point{0, 0}
	pole := orb.Point{0, 90}

	// A quarter of the great circle on a 6371 km sphere.
	assert.InDelta(t, 6371.0*3.14159265358979/2, Distance(equator, pole), 0.01)
}
