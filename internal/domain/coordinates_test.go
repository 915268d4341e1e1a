package domain

import "testing"

func TestBoundsContains(t *testing.T) {
	nyc := Bounds{North: 40.9176, South: 40.4774, East: -73.7004, West: -74.2591}

	cases := []struct {
		name string
		c    Coordinates
		want bool
	}{
		{"midtown", Coordinates{Lon: -73.9857, Lat: 40.7484}, true},
		{"northern edge", Coordinates{Lon: -73.9, Lat: 40.9176}, true},
		{"western edge", Coordinates{Lon: -74.2591, Lat: 40.6}, true},
		{"albany", Coordinates{Lon: -73.75, Lat: 42.65}, false},
		{"philadelphia", Coordinates{Lon: -75.16, Lat: 39.95}, false},
		{"just east of bounds", Coordinates{Lon: -73.7003, Lat: 40.7}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := nyc.Contains(tc.c); got != tc.want {
				t.Errorf("Contains(%+v) = %v, want %v", tc.c, got, tc.want)
			}
		})
	}
}
