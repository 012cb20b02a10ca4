// Copyright (c) 2026 Kalauz. All rights reserved.
// Author: balint.elekes.dev@gmail.com

/*
Package geo provides the geographic math used by place discovery.

It covers great-circle distance, travel-time estimation for short urban
trips, and the human-readable labels shown on place cards. The numeric
functions are pure and deterministic so the discovery ranking built on
top of them is reproducible for identical inputs.
*/
package geo

import (
	"fmt"
	"math"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Average speeds for the travel-time estimate. Short hops are dominated
// by city traffic, longer legs assume open road.
const (
	shortTripThresholdKm = 3.0
	shortTripSpeedKmh    = 35.0
	longTripSpeedKmh     = 50.0
)

// Coordinate is a WGS84 latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DistanceKm returns the great-circle distance between two coordinates
// in kilometers using the haversine formula.
//
// The result is symmetric: DistanceKm(a, b) == DistanceKm(b, a).
func DistanceKm(a, b Coordinate) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	deltaLat := radians(b.Lat - a.Lat)
	deltaLng := radians(b.Lng - a.Lng)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// EstimateTravelMinutes converts a distance into an estimated driving
// time in whole minutes.
//
// Distances under 3 km use a 35 km/h average, everything else 50 km/h.
// The result is rounded to the nearest minute and floored at 1 minute
// for any positive distance; non-positive input yields 0.
func EstimateTravelMinutes(km float64) int {
	if km <= 0 {
		return 0
	}

	speed := longTripSpeedKmh
	if km < shortTripThresholdKm {
		speed = shortTripSpeedKmh
	}

	minutes := int(math.Round(km / speed * 60))
	if minutes < 1 {
		minutes = 1
	}

	return minutes
}

// FormatDistance renders a distance for display: meters under one
// kilometer, otherwise kilometers with a single decimal.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%.0f m", km*1000)
	}
	return fmt.Sprintf("%.1f km", km)
}

// FormatTravelTime renders an estimated travel time for display.
// Under an hour the label is approximate ("~12 perc"), longer trips
// are split into hours and minutes.
func FormatTravelTime(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("~%d perc", minutes)
	}
	return fmt.Sprintf("%d óra %d perc", minutes/60, minutes%60)
}

// radians converts decimal degrees to radians.
func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
