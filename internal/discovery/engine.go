package discovery

import (
	"sort"
	"strings"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/catalog/place"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/pkg/geo"
)

// Filter is the full set of discovery constraints. All predicates are
// conjunctive: a place must satisfy every set constraint to appear.
type Filter struct {
	// CategorySlug selects candidates from a single category.
	CategorySlug string
	// FacetGroupSlug selects candidates from every category in a facet group.
	// Ignored when CategorySlug is set.
	FacetGroupSlug string

	// Query matches name and description case-insensitively.
	Query string

	// Origin is the visitor's position. When set, results carry distance and
	// travel estimates and are ordered by proximity.
	Origin *geo.Coordinate
	// MaxDistanceKm drops places farther than the given distance from Origin.
	// A zero value keeps only places at the origin itself. Ignored without Origin.
	MaxDistanceKm *float64

	// MaxPriceLevel keeps places at or below the given price level (1-4).
	MaxPriceLevel *int
	// OpenOnly keeps currently open places.
	OpenOnly bool
	// MinRating keeps places whose display rating reaches the threshold.
	MinRating *float64
}

// Result is one ranked discovery hit: a place summary extended with the
// origin-relative distance and travel estimates when an origin was given.
type Result struct {
	ID          string         `json:"id"`
	CategoryID  string         `json:"category_id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Settlement  string         `json:"settlement"`
	Address     *string        `json:"address"`
	Coordinate  geo.Coordinate `json:"coordinate"`
	ImageURL    *string        `json:"image_url"`
	Rating      float64        `json:"rating"`
	RatingCount int            `json:"rating_count"`
	IsOpen      bool           `json:"is_open"`
	IsPremium   bool           `json:"is_premium"`
	PriceLevel  int            `json:"price_level"`

	DistanceKm    *float64 `json:"distance_km,omitempty"`
	TravelMinutes *int     `json:"travel_minutes,omitempty"`
	DistanceLabel *string  `json:"distance_label,omitempty"`
	TravelLabel   *string  `json:"travel_label,omitempty"`
}

/*
Rank filters and orders candidate places.

Ordering is deterministic:
 1. premium places before the rest
 2. distance ascending when an origin is present, display rating
    descending otherwise
 3. rating count descending
 4. place identifier ascending as the final tie-break

The function is pure: it never touches storage and never fails.
*/
func Rank(candidates []*place.Place, filter Filter) []Result {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	results := make([]Result, 0, len(candidates))
	for _, candidate := range candidates {
		if !matches(candidate, filter, query) {
			continue
		}

		result := Result{
			ID:          candidate.ID,
			CategoryID:  candidate.CategoryID,
			Name:        candidate.Name,
			Slug:        candidate.Slug,
			Settlement:  candidate.Settlement,
			Address:     candidate.Address,
			Coordinate:  candidate.Coordinate,
			ImageURL:    candidate.ImageURL,
			Rating:      candidate.DisplayRating(),
			RatingCount: candidate.RatingCount,
			IsOpen:      candidate.IsOpen,
			IsPremium:   candidate.IsPremium,
			PriceLevel:  candidate.PriceLevel,
		}

		if filter.Origin != nil {
			distance := geo.DistanceKm(*filter.Origin, candidate.Coordinate)
			minutes := geo.EstimateTravelMinutes(distance)
			distanceLabel := geo.FormatDistance(distance)
			travelLabel := geo.FormatTravelTime(minutes)

			result.DistanceKm = &distance
			result.TravelMinutes = &minutes
			result.DistanceLabel = &distanceLabel
			result.TravelLabel = &travelLabel
		}

		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]

		if a.IsPremium != b.IsPremium {
			return a.IsPremium
		}
		if filter.Origin != nil {
			if *a.DistanceKm != *b.DistanceKm {
				return *a.DistanceKm < *b.DistanceKm
			}
		} else if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if a.RatingCount != b.RatingCount {
			return a.RatingCount > b.RatingCount
		}
		return a.ID < b.ID
	})

	return results
}

func matches(candidate *place.Place, filter Filter, query string) bool {
	if filter.OpenOnly && !candidate.IsOpen {
		return false
	}

	if filter.MaxPriceLevel != nil && candidate.PriceLevel > *filter.MaxPriceLevel {
		return false
	}

	if filter.MinRating != nil && candidate.DisplayRating() < *filter.MinRating {
		return false
	}

	if query != "" {
		name := strings.ToLower(candidate.Name)
		description := ""
		if candidate.Description != nil {
			description = strings.ToLower(*candidate.Description)
		}
		if !strings.Contains(name, query) && !strings.Contains(description, query) {
			return false
		}
	}

	if filter.MaxDistanceKm != nil && filter.Origin != nil {
		if geo.DistanceKm(*filter.Origin, candidate.Coordinate) > *filter.MaxDistanceKm {
			return false
		}
	}

	return true
}
