package discovery_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/catalog/category"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/catalog/facet"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/catalog/place"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/discovery"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/platform/dberr"
	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/stats"
)

type fakeCatalog struct {
	categories map[string]*category.Category
	groups     map[string][]*facet.CategorySummary
	places     map[string][]*place.Place

	recordedEvents []stats.EventType
}

func (f *fakeCatalog) GetCategoryBySlug(_ context.Context, slug string) (*category.Category, error) {
	resolved, ok := f.categories[slug]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return resolved, nil
}

func (f *fakeCatalog) CategoriesForGroup(_ context.Context, groupSlug string) ([]*facet.CategorySummary, error) {
	return f.groups[groupSlug], nil
}

func (f *fakeCatalog) FindByCategory(_ context.Context, categoryID string) ([]*place.Place, error) {
	return f.places[categoryID], nil
}

func (f *fakeCatalog) RecordEvent(_ context.Context, eventType stats.EventType, _, _ *string) {
	f.recordedEvents = append(f.recordedEvents, eventType)
}

func newDiscoveryService(catalog *fakeCatalog) *discovery.Service {
	return discovery.NewService(catalog, catalog, catalog, catalog, slog.Default())
}

/*
TestService_Discover_UnknownSlugYieldsEmpty verifies that a category or
group slug that resolves to nothing produces an empty page, never an error.
*/
func TestService_Discover_UnknownSlugYieldsEmpty(t *testing.T) {
	catalog := &fakeCatalog{}
	service := newDiscoveryService(catalog)

	testCases := []struct {
		name   string
		filter discovery.Filter
	}{
		{name: "unknown category", filter: discovery.Filter{CategorySlug: "nincs-ilyen"}},
		{name: "unknown group", filter: discovery.Filter{FacetGroupSlug: "nincs-ilyen"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			results, err := service.Discover(context.Background(), testCase.filter)
			require.NoError(t, err)
			assert.Empty(t, results)
		})
	}
}

/*
TestService_Discover_GroupUnionDeduplicates verifies that a facet group
spanning several categories pools their places exactly once each.
*/
func TestService_Discover_GroupUnionDeduplicates(t *testing.T) {
	catalog := &fakeCatalog{
		groups: map[string][]*facet.CategorySummary{
			"latnivalok": {
				{ID: "cat-1", Name: "Muzeumok", Slug: "muzeumok"},
				{ID: "cat-2", Name: "Varak", Slug: "varak"},
			},
		},
		places: map[string][]*place.Place{
			"cat-1": {testPlace("p1", "Egri Var")},
			"cat-2": {testPlace("p1", "Egri Var"), testPlace("p2", "Dobo Bastya")},
		},
	}
	service := newDiscoveryService(catalog)

	results, err := service.Discover(context.Background(), discovery.Filter{FacetGroupSlug: "latnivalok"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p1", "p2"}, resultIDs(results))
}

/*
TestService_Discover_RecordsPageView verifies usage accounting fires for a
successful discovery request.
*/
func TestService_Discover_RecordsPageView(t *testing.T) {
	catalog := &fakeCatalog{
		categories: map[string]*category.Category{
			"ettermek": {ID: "cat-1", Name: "Ettermek", Slug: "ettermek"},
		},
		places: map[string][]*place.Place{
			"cat-1": {testPlace("p1", "Fenyo Etterem")},
		},
	}
	service := newDiscoveryService(catalog)

	_, err := service.Discover(context.Background(), discovery.Filter{CategorySlug: "ettermek"})
	require.NoError(t, err)
	assert.Equal(t, []stats.EventType{stats.EventPageView}, catalog.recordedEvents)
}

/*
TestService_Discover_RequiresScope verifies that a request naming neither a
category nor a facet group is rejected as invalid.
*/
func TestService_Discover_RequiresScope(t *testing.T) {
	service := newDiscoveryService(&fakeCatalog{})

	_, err := service.Discover(context.Background(), discovery.Filter{})
	require.Error(t, err)
}
