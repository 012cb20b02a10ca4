package facet_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elekesbalint/hortiadrianwebsite-sub001/internal/catalog/facet"
)

// fakeRepository keeps memberships in memory and records what Replace
// actually persisted, so tests can assert on the deduplicated set.
type fakeRepository struct {
	memberships map[string][]string
	replaceErr  error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{memberships: make(map[string][]string)}
}

func (f *fakeRepository) ListGroups(_ context.Context) ([]*facet.FacetGroup, error) {
	return nil, nil
}

func (f *fakeRepository) GetGroup(_ context.Context, _ string) (*facet.FacetGroup, error) {
	return nil, nil
}

func (f *fakeRepository) CreateGroup(_ context.Context, _ *facet.FacetGroup) error {
	return nil
}

func (f *fakeRepository) DeleteGroup(_ context.Context, _ string) error {
	return nil
}

func (f *fakeRepository) GroupsForCategory(_ context.Context, _ string) ([]*facet.FacetGroup, error) {
	return nil, nil
}

func (f *fakeRepository) CategoriesForGroup(_ context.Context, _ string) ([]*facet.CategorySummary, error) {
	return nil, nil
}

func (f *fakeRepository) AllCategoryGroups(_ context.Context) (map[string][]string, error) {
	return f.memberships, nil
}

func (f *fakeRepository) ReplaceCategoryGroups(_ context.Context, categoryID string, groupSlugs []string) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.memberships[categoryID] = groupSlugs
	return nil
}

const testCategoryID = "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b"

/*
TestService_Replace_Deduplicates verifies that a membership set containing
repeated slugs is collapsed before hitting the store, preserving first
occurrence order.
*/
func TestService_Replace_Deduplicates(t *testing.T) {
	repo := newFakeRepository()
	service := facet.NewService(repo, slog.Default())

	err := service.Replace(context.Background(), testCategoryID, []string{"kedvencek", "latnivalok", "kedvencek"})
	require.NoError(t, err)

	assert.Equal(t, []string{"kedvencek", "latnivalok"}, repo.memberships[testCategoryID])
}

/*
TestService_Replace_EmptySetClears verifies that replacing with an empty
set removes every membership without raising an error.
*/
func TestService_Replace_EmptySetClears(t *testing.T) {
	repo := newFakeRepository()
	repo.memberships[testCategoryID] = []string{"kedvencek"}
	service := facet.NewService(repo, slog.Default())

	err := service.Replace(context.Background(), testCategoryID, []string{})
	require.NoError(t, err)

	assert.Empty(t, repo.memberships[testCategoryID])
}

/*
TestService_Replace_SurfacesStoreFailure verifies that a failed rewrite is
returned to the caller instead of being swallowed.
*/
func TestService_Replace_SurfacesStoreFailure(t *testing.T) {
	repo := newFakeRepository()
	repo.replaceErr = errors.New("connection reset")
	service := facet.NewService(repo, slog.Default())

	err := service.Replace(context.Background(), testCategoryID, []string{"kedvencek"})
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.replaceErr)
}

/*
TestService_Replace_RejectsInvalidInput verifies validation of the category
identifier and the slug shape of every group.
*/
func TestService_Replace_RejectsInvalidInput(t *testing.T) {
	testCases := []struct {
		name       string
		categoryID string
		groupSlugs []string
	}{
		{name: "malformed category id", categoryID: "not-a-uuid", groupSlugs: []string{"kedvencek"}},
		{name: "malformed group slug", categoryID: testCategoryID, groupSlugs: []string{"Nem Slug!"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			repo := newFakeRepository()
			service := facet.NewService(repo, slog.Default())

			err := service.Replace(context.Background(), testCase.categoryID, testCase.groupSlugs)
			require.Error(t, err)
			assert.Empty(t, repo.memberships)
		})
	}
}
