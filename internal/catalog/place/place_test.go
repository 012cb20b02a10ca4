package place_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/catalog/place"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/pkg/geo"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/pkg/pointer"
)

const testCategoryID = "0190b1c2-d3e4-7f5a-8b9c-0d1e2f3a4b5c"

type fakeRepository struct {
	created []*place.Place
}

func (repo *fakeRepository) ListPlaces(_ context.Context, _ place.Filter, _, _ int) ([]*place.Place, int, error) {
	return nil, 0, nil
}

func (repo *fakeRepository) GetPlace(_ context.Context, _ string) (*place.Place, error) {
	return nil, nil
}

func (repo *fakeRepository) GetPlaceBySlug(_ context.Context, _ string) (*place.Place, error) {
	return nil, nil
}

func (repo *fakeRepository) FindByCategory(_ context.Context, _ string) ([]*place.Place, error) {
	return nil, nil
}

func (repo *fakeRepository) FindByIDs(_ context.Context, _ []string) ([]*place.Place, error) {
	return nil, nil
}

func (repo *fakeRepository) CreatePlace(_ context.Context, p *place.Place) error {
	repo.created = append(repo.created, p)
	return nil
}

func (repo *fakeRepository) UpdatePlace(_ context.Context, _ *place.Place) error { return nil }

func (repo *fakeRepository) DeletePlace(_ context.Context, _ string) error { return nil }

func validPlace() *place.Place {
	return &place.Place{
		CategoryID:  testCategoryID,
		Name:        "Kék Duna Étterem",
		Settlement:  "Esztergom",
		Coordinate:  geo.Coordinate{Lat: 47.7928, Lng: 18.7404},
		Rating:      4.2,
		RatingCount: 17,
		PriceLevel:  2,
	}
}

/*
TestDisplayRating verifies the visitor-facing rating: places without any
reviews show the default instead of their stored zero average.
*/
func TestDisplayRating(t *testing.T) {
	t.Parallel()

	rated := validPlace()
	assert.InDelta(t, 4.2, rated.DisplayRating(), 0.001)

	unrated := validPlace()
	unrated.Rating = 0
	unrated.RatingCount = 0
	assert.InDelta(t, place.DefaultDisplayRating, unrated.DisplayRating(), 0.001)
}

/*
TestCreatePlace_DerivesSlug verifies that a missing slug is derived from the
name with diacritics folded away.
*/
func TestCreatePlace_DerivesSlug(t *testing.T) {
	t.Parallel()

	repo := &fakeRepository{}
	service := place.NewService(repo, slog.Default())

	candidate := validPlace()
	require.NoError(t, service.CreatePlace(context.Background(), candidate))

	require.Len(t, repo.created, 1)
	assert.Equal(t, "kek-duna-etterem", repo.created[0].Slug)
}

/*
TestCreatePlace_RejectsInvalidInput runs the validation table: each case
mutates one field of an otherwise valid place and must fail without
reaching the store.
*/
func TestCreatePlace_RejectsInvalidInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(p *place.Place)
	}{
		{"missing name", func(p *place.Place) { p.Name = "   " }},
		{"category id not a uuid", func(p *place.Place) { p.CategoryID = "vendeglatas" }},
		{"missing settlement", func(p *place.Place) { p.Settlement = "" }},
		{"latitude out of range", func(p *place.Place) { p.Coordinate.Lat = 91 }},
		{"longitude out of range", func(p *place.Place) { p.Coordinate.Lng = -200 }},
		{"rating above scale", func(p *place.Place) { p.Rating = 5.5 }},
		{"price level below range", func(p *place.Place) { p.PriceLevel = 0 }},
		{"malformed website", func(p *place.Place) { p.Website = pointer.To("not a url") }},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			repo := &fakeRepository{}
			service := place.NewService(repo, slog.Default())

			candidate := validPlace()
			testCase.mutate(candidate)

			err := service.CreatePlace(context.Background(), candidate)
			require.Error(t, err)
			assert.Empty(t, repo.created)
		})
	}
}
