package discovery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/catalog/place"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/discovery"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/pkg/geo"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/pkg/pointer"
)

var budapest = geo.Coordinate{Lat: 47.4979, Lng: 19.0402}

func testPlace(id, name string, modifiers ...func(*place.Place)) *place.Place {
	p := &place.Place{
		ID:          id,
		Name:        name,
		Slug:        id,
		Settlement:  "Eger",
		Coordinate:  geo.Coordinate{Lat: 47.9025, Lng: 20.3772},
		Rating:      4.0,
		RatingCount: 10,
		IsOpen:      true,
		PriceLevel:  2,
		IsActive:    true,
	}
	for _, modify := range modifiers {
		modify(p)
	}
	return p
}

func resultIDs(results []discovery.Result) []string {
	ids := make([]string, len(results))
	for i, result := range results {
		ids[i] = result.ID
	}
	return ids
}

/*
TestRank_PremiumFirst verifies that premium places precede every
non-premium place regardless of rating or distance.
*/
func TestRank_PremiumFirst(t *testing.T) {
	candidates := []*place.Place{
		testPlace("a", "Fenyo Etterem", func(p *place.Place) { p.Rating = 5.0; p.RatingCount = 200 }),
		testPlace("b", "Varkert Bisztro", func(p *place.Place) { p.IsPremium = true; p.Rating = 3.2 }),
	}

	results := discovery.Rank(candidates, discovery.Filter{})
	require.Len(t, results, 2)
	assert.Equal(t, []string{"b", "a"}, resultIDs(results))
}

/*
TestRank_DistanceOrderingWithOrigin verifies proximity ordering when the
visitor shared a position, and that distance fields are populated.
*/
func TestRank_DistanceOrderingWithOrigin(t *testing.T) {
	candidates := []*place.Place{
		testPlace("far", "Tavoli Hely", func(p *place.Place) {
			p.Coordinate = geo.Coordinate{Lat: 46.2530, Lng: 20.1414} // Szeged
		}),
		testPlace("near", "Kozeli Hely", func(p *place.Place) {
			p.Coordinate = geo.Coordinate{Lat: 47.5000, Lng: 19.0500}
		}),
	}

	results := discovery.Rank(candidates, discovery.Filter{Origin: &budapest})
	require.Len(t, results, 2)
	assert.Equal(t, []string{"near", "far"}, resultIDs(results))

	require.NotNil(t, results[0].DistanceKm)
	require.NotNil(t, results[0].TravelMinutes)
	require.NotNil(t, results[0].DistanceLabel)
	assert.Less(t, *results[0].DistanceKm, *results[1].DistanceKm)
}

/*
TestRank_RatingOrderingWithoutOrigin verifies the fallback ordering by
display rating, with rating count and identifier as tie-breaks.
*/
func TestRank_RatingOrderingWithoutOrigin(t *testing.T) {
	candidates := []*place.Place{
		testPlace("c", "Harmadik", func(p *place.Place) { p.Rating = 4.0; p.RatingCount = 5 }),
		testPlace("a", "Elso", func(p *place.Place) { p.Rating = 4.8 }),
		testPlace("b", "Masodik", func(p *place.Place) { p.Rating = 4.0; p.RatingCount = 50 }),
	}

	results := discovery.Rank(candidates, discovery.Filter{})
	assert.Equal(t, []string{"a", "b", "c"}, resultIDs(results))
}

/*
TestRank_DeterministicTieBreak verifies that fully tied places always come
back in identifier order.
*/
func TestRank_DeterministicTieBreak(t *testing.T) {
	candidates := []*place.Place{
		testPlace("z", "Zeta"),
		testPlace("a", "Alfa"),
		testPlace("m", "Mu"),
	}

	results := discovery.Rank(candidates, discovery.Filter{})
	assert.Equal(t, []string{"a", "m", "z"}, resultIDs(results))
}

/*
TestRank_MaxDistanceZero verifies the degenerate radius: only places at the
origin itself survive a zero-kilometre cutoff.
*/
func TestRank_MaxDistanceZero(t *testing.T) {
	candidates := []*place.Place{
		testPlace("here", "Itt", func(p *place.Place) { p.Coordinate = budapest }),
		testPlace("there", "Ott", func(p *place.Place) {
			p.Coordinate = geo.Coordinate{Lat: 47.4980, Lng: 19.0410}
		}),
	}

	results := discovery.Rank(candidates, discovery.Filter{
		Origin:        &budapest,
		MaxDistanceKm: pointer.To(0.0),
	})
	require.Len(t, results, 1)
	assert.Equal(t, "here", results[0].ID)
}

/*
TestRank_ConjunctiveFilters verifies that adding constraints never grows
the result set, and that every predicate actually excludes.
*/
func TestRank_ConjunctiveFilters(t *testing.T) {
	candidates := []*place.Place{
		testPlace("open-cheap", "Kis Kifozde", func(p *place.Place) { p.PriceLevel = 1 }),
		testPlace("closed", "Zarva Levo", func(p *place.Place) { p.IsOpen = false }),
		testPlace("pricey", "Luxus Etterem", func(p *place.Place) { p.PriceLevel = 4 }),
		testPlace("low-rated", "Gyenge Hely", func(p *place.Place) { p.Rating = 2.1 }),
	}

	unfiltered := discovery.Rank(candidates, discovery.Filter{})
	filtered := discovery.Rank(candidates, discovery.Filter{
		OpenOnly:      true,
		MaxPriceLevel: pointer.To(2),
		MinRating:     pointer.To(3.5),
	})

	assert.Len(t, unfiltered, 4)
	require.Len(t, filtered, 1)
	assert.Equal(t, "open-cheap", filtered[0].ID)
	assert.LessOrEqual(t, len(filtered), len(unfiltered))
}

/*
TestRank_QueryMatchesNameAndDescription verifies the case-insensitive text
predicate over both searchable fields.
*/
func TestRank_QueryMatchesNameAndDescription(t *testing.T) {
	candidates := []*place.Place{
		testPlace("by-name", "Dobo Cukraszda"),
		testPlace("by-description", "Minaret Kavezo", func(p *place.Place) {
			p.Description = pointer.To("Hazi cukraszda jellegu sutemenyek")
		}),
		testPlace("unrelated", "Termalfurdo"),
	}

	results := discovery.Rank(candidates, discovery.Filter{Query: "CUKRASZDA"})
	assert.ElementsMatch(t, []string{"by-name", "by-description"}, resultIDs(results))
}

/*
TestRank_UnratedPlacesGetDefaultRating verifies that a place without
reviews is presented with the default display rating instead of zero.
*/
func TestRank_UnratedPlacesGetDefaultRating(t *testing.T) {
	candidates := []*place.Place{
		testPlace("new", "Uj Hely", func(p *place.Place) { p.Rating = 0; p.RatingCount = 0 }),
	}

	results := discovery.Rank(candidates, discovery.Filter{})
	require.Len(t, results, 1)
	assert.Equal(t, place.DefaultDisplayRating, results[0].Rating)
}
