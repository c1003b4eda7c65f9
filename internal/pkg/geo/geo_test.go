package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoordinates_Valid(t *testing.T) {
	cases := []struct {
		name   string
		coords Coordinates
		want   bool
	}{
		{"nairobi", Coordinates{Latitude: -1.2921, Longitude: 36.8219}, true},
		{"poles", Coordinates{Latitude: 90, Longitude: -180}, true},
		{"latitude too high", Coordinates{Latitude: 90.5, Longitude: 0}, false},
		{"latitude too low", Coordinates{Latitude: -91, Longitude: 0}, false},
		{"longitude too high", Coordinates{Latitude: 0, Longitude: 180.1}, false},
		{"longitude too low", Coordinates{Latitude: 0, Longitude: -181}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.coords.Valid())
		})
	}
}

func TestViewport_Contains(t *testing.T) {
	// A box around central Nairobi.
	vp := Viewport{LatMin: -1.35, LatMax: -1.20, LngMin: 36.75, LngMax: 36.90}

	require.True(t, vp.Contains(Coordinates{Latitude: -1.2921, Longitude: 36.8219}))
	require.False(t, vp.Contains(Coordinates{Latitude: -1.10, Longitude: 36.8219}))
	require.False(t, vp.Contains(Coordinates{Latitude: -1.2921, Longitude: 37.0}))
}

func TestViewport_CrossesAntimeridian(t *testing.T) {
	// Fiji-area box spanning the 180 meridian.
	vp := Viewport{LatMin: -20, LatMax: -15, LngMin: 177, LngMax: -178}

	require.True(t, vp.Contains(Coordinates{Latitude: -18, Longitude: 179.5}))
	require.True(t, vp.Contains(Coordinates{Latitude: -18, Longitude: -179}))
	require.False(t, vp.Contains(Coordinates{Latitude: -18, Longitude: 170}))
}
