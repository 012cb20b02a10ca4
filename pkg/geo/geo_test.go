// Copyright (c) 2026 Kalauz. All rights reserved.
// Author: balint.elekes.dev@gmail.com

package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/pkg/geo"
)

var budapest = geo.Coordinate{Lat: 47.4979, Lng: 19.0402}

/*
TestDistanceKm_Symmetry verifies that the haversine distance is symmetric
and zero for identical points.
*/
func TestDistanceKm_Symmetry(t *testing.T) {
	tests := []struct {
		name string
		a    geo.Coordinate
		b    geo.Coordinate
	}{
		{"budapest_szeged", budapest, geo.Coordinate{Lat: 46.2530, Lng: 20.1414}},
		{"equator_pair", geo.Coordinate{Lat: 0, Lng: 0}, geo.Coordinate{Lat: 0, Lng: 1}},
		{"antimeridian", geo.Coordinate{Lat: 10, Lng: 179.9}, geo.Coordinate{Lat: 10, Lng: -179.9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, geo.DistanceKm(tt.a, tt.b), geo.DistanceKm(tt.b, tt.a), 1e-9)
		})
	}

	assert.Less(t, geo.DistanceKm(budapest, budapest), 1e-6)
}

/*
TestDistanceKm_KnownValues checks the formula against reference distances.
*/
func TestDistanceKm_KnownValues(t *testing.T) {
	// One degree of longitude on the equator is ~111.19 km.
	equatorDegree := geo.DistanceKm(geo.Coordinate{Lat: 0, Lng: 0}, geo.Coordinate{Lat: 0, Lng: 1})
	assert.InDelta(t, 111.19, equatorDegree, 0.5)

	// Budapest to Eger is roughly 106 km as the crow flies.
	eger := geo.Coordinate{Lat: 47.9025, Lng: 20.3772}
	assert.InDelta(t, 106, geo.DistanceKm(budapest, eger), 5)
}

/*
TestEstimateTravelMinutes covers the speed tiers and the 1-minute floor.
*/
func TestEstimateTravelMinutes(t *testing.T) {
	tests := []struct {
		name    string
		km      float64
		minutes int
	}{
		{"zero", 0, 0},
		{"negative", -2, 0},
		{"short_trip_city_speed", 2, 3},   // 2 km @ 35 km/h = 3.4 -> 3
		{"boundary_open_road", 3, 4},      // 3 km @ 50 km/h = 3.6 -> 4
		{"long_trip", 50, 60},             // 50 km @ 50 km/h
		{"tiny_positive_floored", 0.1, 1}, // rounds to 0, floored to 1
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.minutes, geo.EstimateTravelMinutes(tt.km))
		})
	}
}

/*
TestFormatDistance verifies the meter/kilometer display switch.
*/
func TestFormatDistance(t *testing.T) {
	tests := []struct {
		km    float64
		label string
	}{
		{0.5, "500 m"},
		{0.075, "75 m"},
		{1.0, "1.0 km"},
		{2.345, "2.3 km"},
		{12.96, "13.0 km"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.label, geo.FormatDistance(tt.km))
	}
}

/*
TestFormatTravelTime verifies the minute and hour+minute renderings.
*/
func TestFormatTravelTime(t *testing.T) {
	assert.Equal(t, "~1 perc", geo.FormatTravelTime(1))
	assert.Equal(t, "~59 perc", geo.FormatTravelTime(59))
	assert.Equal(t, "1 óra 0 perc", geo.FormatTravelTime(60))
	assert.Equal(t, "2 óra 15 perc", geo.FormatTravelTime(135))
}
